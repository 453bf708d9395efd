package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	previewSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	previewLink      = lipgloss.NewStyle().Underline(true)
)

// Preview writes lines for a terminal: directives are dropped, color= tints
// the text and href= underlines it.
func Preview(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, previewLine(l)); err != nil {
			return err
		}
	}
	return nil
}

func previewLine(l Line) string {
	if l.Text == Separator && len(l.Directives) == 0 {
		return previewSeparator.Render(strings.Repeat("─", 32))
	}
	style := lipgloss.NewStyle()
	if color, ok := l.Directive("color"); ok {
		style = style.Foreground(lipgloss.Color(color))
	}
	if _, ok := l.Directive("href"); ok {
		style = style.Inherit(previewLink)
	}
	return style.Render(l.Text)
}
