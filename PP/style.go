package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// labelFor styles strategy labels when w is a terminal and leaves them
// plain otherwise, so redirected reports stay greppable.
func labelFor(w io.Writer) func(string) string {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return func(s string) string { return labelStyle.Render(s) }
	}
	return func(s string) string { return s }
}
