package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	startStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	endStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize highlights markers in a rendered maze when stdout is a terminal.
func colorize(s string) string {
	if !isTerminal() {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case 'S':
			sb.WriteString(startStyle.Render("S"))
		case 'E':
			sb.WriteString(endStyle.Render("E"))
		case '@':
			sb.WriteString(playerStyle.Render("@"))
		case '.':
			sb.WriteString(pathStyle.Render("."))
		case '+', '-', '|':
			sb.WriteString(wallStyle.Render(string(r)))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// box frames a summary block when stdout is a terminal.
func box(lines ...string) string {
	text := strings.Join(lines, "\n")
	if !isTerminal() {
		return text
	}
	return boxStyle.Render(text)
}

// warnText colors a warning line when stdout is a terminal.
func warnText(s string) string {
	if !isTerminal() {
		return s
	}
	return errStyle.Render(s)
}
