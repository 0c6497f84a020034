package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Width(8)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// printer writes "label  value" lines, styled only on a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func (p printer) field(label, typ, val string) {
	if !p.styled {
		if typ != "" {
			fmt.Fprintf(p.w, "%-8s%s %s\n", label, typ, val)
		} else {
			fmt.Fprintf(p.w, "%-8s%s\n", label, val)
		}
		return
	}
	line := labelStyle.Render(label)
	if typ != "" {
		line += typeStyle.Render(typ) + " "
	}
	fmt.Fprintln(p.w, line+valueStyle.Render(val))
}
