package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/sandeepkv93/tuido/internal/model"
)

type EditorData struct {
	Before string
	After  string
	Width  int
}

type HeaderData struct {
	ProjectName string
	Position    int
	Total       int
	// Editor replaces the project name while it is being renamed.
	Editor *EditorData
}

type TaskListData struct {
	Tasks     []model.Task
	CurrentID uint32
	// RenamingID is the task whose title is replaced by Editor.
	RenamingID uint32
	Adding     bool
	Editor     EditorData
	Width      int
}

type StatsData struct {
	Todo      int
	Completed int
	Canceled  int
}

type FooterData struct {
	Mode  string
	Stats StatsData
}

type KeyHelp struct {
	Keys   string
	Action string
}

func RenderHeader(data HeaderData) string {
	name := headerStyle.Render(data.ProjectName)
	if data.Editor != nil {
		name = RenderEditorLine(*data.Editor)
	}
	return fmt.Sprintf("%s %s %s %s",
		headerStyle.Render("<"), name, headerStyle.Render(">"),
		positionStyle.Render(fmt.Sprintf("(%d/%d)", data.Position, data.Total)))
}

func StateMarker(state model.TaskState) string {
	switch state {
	case model.TaskStateCompleted:
		return "[x]"
	case model.TaskStateCanceled:
		return "[-]"
	default:
		return "[ ]"
	}
}

func RenderTaskList(data TaskListData) string {
	if len(data.Tasks) == 0 && !data.Adding {
		return footerStyle.Render("no tasks, press a to add one")
	}

	lines := make([]string, 0, len(data.Tasks)+1)
	for _, task := range data.Tasks {
		lines = append(lines, renderTaskRow(task, data))
	}
	if data.Adding {
		ed := data.Editor
		ed.Width = titleWidth(data.Width)
		lines = append(lines, "+ "+StateMarker(model.TaskStateTodo)+" "+RenderEditorLine(ed))
	}
	return strings.Join(lines, "\n")
}

func renderTaskRow(task model.Task, data TaskListData) string {
	cursor := "  "
	if task.ID == data.CurrentID {
		cursor = "> "
	}
	marker := StateMarker(task.State)

	if data.RenamingID != 0 && task.ID == data.RenamingID {
		ed := data.Editor
		ed.Width = titleWidth(data.Width)
		return cursor + marker + " " + RenderEditorLine(ed)
	}

	title := task.Title
	if w := titleWidth(data.Width); w > 0 {
		title = runewidth.Truncate(title, w, "…")
	}
	row := cursor + marker + " " + title

	switch {
	case task.ID == data.CurrentID:
		return selectedStyle.Render(row)
	case task.State == model.TaskStateCanceled:
		return canceledStyle.Render(row)
	case task.State == model.TaskStateCompleted:
		return doneStyle.Render(row)
	default:
		return row
	}
}

// titleWidth is the room left for a title after the cursor and marker
// columns. Zero means unbounded.
func titleWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return max(width-6, 1)
}

// RenderEditorLine draws the text with the character under the caret in
// reverse video. With a positive width the line scrolls so the caret stays
// visible.
func RenderEditorLine(data EditorData) string {
	caret := " "
	after := data.After
	if r, size := utf8.DecodeRuneInString(after); size > 0 {
		caret = string(r)
		after = after[size:]
	}

	before := data.Before
	if data.Width > 0 {
		caretWidth := runewidth.StringWidth(caret)
		before = trimLeftToWidth(before, data.Width-caretWidth)
		rest := data.Width - caretWidth - runewidth.StringWidth(before)
		after = runewidth.Truncate(after, max(rest, 0), "")
	}
	return before + caretStyle.Render(caret) + after
}

func trimLeftToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	for len(runes) > 0 && runewidth.StringWidth(string(runes)) > width {
		runes = runes[1:]
	}
	return string(runes)
}

func RenderEntryPrompt(label string) string {
	return promptStyle.Render(label)
}

func RenderDeletePrompt(title string) string {
	return promptStyle.Render(fmt.Sprintf("delete %q? [y]es / [n]o", title))
}

func RenderFooter(data FooterData) string {
	return fmt.Sprintf("mode: %s | todo %d  done %d  canceled %d | total %d",
		data.Mode, data.Stats.Todo, data.Stats.Completed, data.Stats.Canceled,
		data.Stats.Todo+data.Stats.Completed+data.Stats.Canceled)
}

func helpMarkdown(title string, bindings []KeyHelp) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString("| key | action |\n| --- | --- |\n")
	for _, kb := range bindings {
		fmt.Fprintf(&b, "| `%s` | %s |\n", kb.Keys, kb.Action)
	}
	return b.String()
}

func RenderHelpSheet(title string, bindings []KeyHelp) string {
	if len(bindings) == 0 {
		return ""
	}
	return RenderMarkdown(helpMarkdown(title, bindings))
}
