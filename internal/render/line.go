package render

import (
	"fmt"
	"io"
	"strings"
)

// Separator is the host's reserved menu separator line.
const Separator = "---"

// Directive is one key=value style annotation, e.g. color=#27ae60.
type Directive struct {
	Key   string
	Value string
}

// Line is a menu line with its directives in output order.
type Line struct {
	Text       string
	Directives []Directive
}

// Text returns a line without directives.
func Text(s string) Line { return Line{Text: s} }

// With returns a copy of l with the directive appended.
func (l Line) With(key, value string) Line {
	out := Line{Text: l.Text, Directives: make([]Directive, 0, len(l.Directives)+1)}
	out.Directives = append(out.Directives, l.Directives...)
	out.Directives = append(out.Directives, Directive{Key: key, Value: value})
	return out
}

// Directive returns the value for key and whether it is set.
func (l Line) Directive(key string) (string, bool) {
	for _, d := range l.Directives {
		if d.Key == key {
			return d.Value, true
		}
	}
	return "", false
}

// String renders "text | k=v k=v", or just text when there are no directives.
func (l Line) String() string {
	if len(l.Directives) == 0 {
		return l.Text
	}
	parts := make([]string, 0, len(l.Directives))
	for _, d := range l.Directives {
		parts = append(parts, d.Key+"="+d.Value)
	}
	return l.Text + " | " + strings.Join(parts, " ")
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}
