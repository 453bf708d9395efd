package render

import (
	"fmt"
	"strconv"
	"strings"

	"rescuetime-bar/internal/domain"
)

const (
	DashboardURL = "https://www.rescuetime.com/dashboard?src=bitbar"
	ManageKeyURL = "https://www.rescuetime.com/anapi/manage"
)

// Style holds the font directives applied to detail lines.
type Style struct {
	Font     string
	FontSize int
}

// DefaultStyle matches the menu font used by the RescueTime plugin.
var DefaultStyle = Style{Font: "Menlo", FontSize: 12}

const maxNotice = 240

// Plugin composes the menu lines for r. It fails if any activity or category
// carries a productivity level without a colour.
func Plugin(r domain.Report, style Style) ([]Line, error) {
	if style.Font == "" {
		style.Font = DefaultStyle.Font
	}
	if style.FontSize <= 0 {
		style.FontSize = DefaultStyle.FontSize
	}
	font := fmt.Sprintf("'%s'", style.Font)
	size := strconv.Itoa(style.FontSize)

	lines := make([]Line, 0, len(r.Notices)+len(r.Summary.Totals)+len(r.Summary.Top)+7)
	for _, n := range r.Notices {
		lines = append(lines, Text(truncate(singleLine(n), maxNotice)))
	}

	header := Text(FormatSeconds(r.Summary.ProductiveSeconds))
	if r.PulseColor != "" {
		header = header.With("color", r.PulseColor)
	}
	lines = append(lines,
		header,
		Text(Separator),
		Text("Rescue Time").With("href", DashboardURL),
		Text(Separator),
	)

	for _, ct := range r.Summary.Totals {
		color, err := ct.Category.Style.Color()
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", ct.Category.Name, err)
		}
		lines = append(lines, Text(fmt.Sprintf("%s: %s", ct.Category.Name, FormatSeconds(ct.Seconds))).
			With("font", font).
			With("size", size).
			With("color", color))
	}

	lines = append(lines, Text(Separator), Text("Activities"))
	for _, a := range r.Summary.Top {
		color, err := a.Productivity.Color()
		if err != nil {
			return nil, fmt.Errorf("activity %q: %w", a.Name, err)
		}
		lines = append(lines, Text(fmt.Sprintf("%5s %s", FormatSeconds(a.SecondsSpent), singleLine(a.Name))).
			With("font", font).
			With("size", size).
			With("trim", "false").
			With("color", color))
	}
	return lines, nil
}

// singleLine folds s onto one line and replaces '|', which the host reads as
// the start of the directive list.
func singleLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", "¦")
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n]) + "…"
	}
	return s
}

// MissingKey returns the fallback menu shown when no API key file exists.
func MissingKey(keyPath string) []Line {
	return []Line{
		Text("X"),
		Text(Separator),
		Text("Missing API Key"),
		Text("Generate an API key in RescueTime").With("href", ManageKeyURL),
		Text("and put it in " + keyPath),
	}
}
