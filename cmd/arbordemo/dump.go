package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/arbor"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	boundsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")).Strikethrough(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderTree formats the widget tree for a terminal.
func renderTree(root *arbor.Widget) string {
	var lines []string
	walkTree(root, "", true, true, &lines)
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func walkTree(w *arbor.Widget, prefix string, last, top bool, lines *[]string) {
	branch := ""
	childPrefix := prefix
	if !top {
		if last {
			branch = prefix + "└─ "
			childPrefix = prefix + "   "
		} else {
			branch = prefix + "├─ "
			childPrefix = prefix + "│  "
		}
	}

	name := nameStyle.Render(w.Name)
	if !w.Visible() {
		name = hiddenStyle.Render(w.Name)
	}
	line := fmt.Sprintf("%s%s %s", branch, name, boundsStyle.Render(fmt.Sprintf("[%v]", w.Bounds())))
	var flags []string
	if w.Opaque() {
		flags = append(flags, "opaque")
	}
	if w.Elevated() {
		flags = append(flags, "elevated")
	}
	if len(flags) > 0 {
		line += " " + flagStyle.Render(strings.Join(flags, ","))
	}
	*lines = append(*lines, line)

	n := w.NumChildren()
	for i := 0; i < n; i++ {
		walkTree(w.ChildAt(i), childPrefix, i == n-1, false, lines)
	}
}
