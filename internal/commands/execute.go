package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(TextArgs) (Result, error)
	Rename  func(TextArgs) (Result, error)
	Project func(TextArgs) (Result, error)
	New     func(TextArgs) (Result, error)
	Done    func() (Result, error)
	Cancel  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(cmd.Args)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Rename(cmd.Args)
	case TypeProject:
		if handlers.Project == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Project(cmd.Args)
	case TypeNew:
		if handlers.New == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.New(cmd.Args)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Done()
	case TypeCancel:
		if handlers.Cancel == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Cancel()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
