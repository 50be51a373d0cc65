package board

import "github.com/charmbracelet/lipgloss"

// Styles holds the board's lipgloss styles.
type Styles struct {
	Header       lipgloss.Style
	FilterTab    lipgloss.Style
	FilterActive lipgloss.Style
	Task         lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	Description  lipgloss.Style
	FormLabel    lipgloss.Style
	Confirm      lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() Styles {
	return Styles{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		FilterTab:    lipgloss.NewStyle().Faint(true).Padding(0, 1),
		FilterActive: lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1),
		Task:         lipgloss.NewStyle(),
		TaskSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		TaskDone:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Description:  lipgloss.NewStyle().Faint(true).PaddingLeft(6),
		FormLabel:    lipgloss.NewStyle().Bold(true),
		Confirm:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:         lipgloss.NewStyle().Faint(true),
	}
}
