package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Body       string
	Prompt     string
	StatusLine string
	StatusErr  bool
	Help       string
	Footer     string
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	canceledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	caretStyle    = lipgloss.NewStyle().Reverse(true)
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// RenderApp stacks the screen sections top to bottom. Empty sections are
// skipped.
func RenderApp(data AppData) string {
	lines := []string{data.Header, panelStyle.Render(data.Body)}
	if data.Prompt != "" {
		lines = append(lines, data.Prompt)
	}
	if data.StatusLine != "" {
		if data.StatusErr {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Help != "" {
		lines = append(lines, data.Help)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
