package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
	Caret    lipgloss.Style
}

func newStyles(w io.Writer, color bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header1:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Header2:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("105")),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("245")),
		Error:    lr.NewStyle().Foreground(lipgloss.Color("196")),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("214")),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("39")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("42")),
		FilePath: lr.NewStyle().Bold(true).Underline(true),
		Caret:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).TabWidth(lipgloss.NoTabConversion),
	}
}
