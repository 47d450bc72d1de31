package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeRename  Type = "rename"
	TypeProject Type = "project"
	TypeNew     Type = "new"
	TypeDone    Type = "done"
	TypeCancel  Type = "cancel"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type TextArgs struct {
	Text string
}

type Command struct {
	Type Type
	Raw  string
	Args TextArgs
}

// Parse reads a palette line such as ":add buy milk". The leading colon is
// optional and the text argument is trimmed.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	text := strings.TrimSpace(rest)

	switch t := Type(strings.ToLower(head)); t {
	case TypeAdd, TypeRename, TypeProject, TypeNew:
		// Empty text is allowed, as it is for titles typed in entry mode.
		return Command{Type: t, Raw: input, Args: TextArgs{Text: text}}, nil
	case TypeDone, TypeCancel:
		if text != "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", t)}
		}
		return Command{Type: t, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}
