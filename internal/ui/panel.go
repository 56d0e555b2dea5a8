package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// PanelString frames lines with the current theme's border.
func PanelString(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Panel writes a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render("✔ "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}
