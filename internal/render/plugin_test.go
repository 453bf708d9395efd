package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"rescuetime-bar/internal/domain"
)

func renderString(t *testing.T, lines []Line) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteLines(&buf, lines); err != nil {
		t.Fatalf("WriteLines returned error: %v", err)
	}
	return buf.String()
}

func TestPlugin_EndToEndScenario(t *testing.T) {
	acts := []domain.Activity{
		{Name: "A", SecondsSpent: 7200, Productivity: domain.VeryProductive},
		{Name: "B", SecondsSpent: 1800, Productivity: domain.Distracting},
	}
	lines, err := Plugin(domain.Report{
		Summary:    domain.Summarize(acts, 15, false),
		PulseColor: "#111111",
	}, DefaultStyle)
	if err != nil {
		t.Fatalf("Plugin returned error: %v", err)
	}

	want := strings.Join([]string{
		"2h 0m | color=#111111",
		"---",
		"Rescue Time | href=https://www.rescuetime.com/dashboard?src=bitbar",
		"---",
		"Productive: 2h 0m | font='Menlo' size=12 color=#27ae60",
		"Neutral: 0m | font='Menlo' size=12 color=#3498db",
		"Distracting: 30m | font='Menlo' size=12 color=#e74c3c",
		"---",
		"Activities",
		"2h 0m A | font='Menlo' size=12 trim=false color=#27ae60",
		"  30m B | font='Menlo' size=12 trim=false color=#e67e22",
	}, "\n") + "\n"

	if got := renderString(t, lines); got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlugin_NoticesAndMissingPulse(t *testing.T) {
	lines, err := Plugin(domain.Report{
		Notices: []string{"No data available"},
		Summary: domain.Summarize(nil, 15, false),
	}, Style{Font: "Monaco", FontSize: 14})
	if err != nil {
		t.Fatalf("Plugin returned error: %v", err)
	}
	got := strings.Split(strings.TrimSuffix(renderString(t, lines), "\n"), "\n")
	if got[0] != "No data available" {
		t.Fatalf("first line = %q, want notice", got[0])
	}
	if got[1] != "0m" {
		t.Fatalf("header = %q, want bare 0m", got[1])
	}
	if got[5] != "Productive: 0m | font='Monaco' size=14 color=#27ae60" {
		t.Fatalf("category line = %q", got[5])
	}
	if got[len(got)-1] != "Activities" {
		t.Fatalf("last line = %q, want Activities with no rows after", got[len(got)-1])
	}
}

func TestPlugin_InvalidProductivityIsAnError(t *testing.T) {
	s := domain.Summary{Top: []domain.Activity{{Name: "x", Productivity: domain.Productivity(7)}}}
	_, err := Plugin(domain.Report{Summary: s}, DefaultStyle)
	if !errors.Is(err, domain.ErrInvalidProductivity) {
		t.Fatalf("Plugin error = %v, want ErrInvalidProductivity", err)
	}
}

func TestMissingKey(t *testing.T) {
	got := renderString(t, MissingKey("~/Library/RescueTime.com/api.key"))
	want := "X\n---\nMissing API Key\n" +
		"Generate an API key in RescueTime | href=https://www.rescuetime.com/anapi/manage\n" +
		"and put it in ~/Library/RescueTime.com/api.key\n"
	if got != want {
		t.Fatalf("MissingKey output:\n%s\nwant:\n%s", got, want)
	}
}

func TestLine_WithDoesNotAlias(t *testing.T) {
	base := Text("x").With("a", "1")
	one := base.With("b", "2")
	two := base.With("c", "3")
	if one.String() != "x | a=1 b=2" || two.String() != "x | a=1 c=3" {
		t.Fatalf("With aliased directives: %q / %q", one.String(), two.String())
	}
}

func TestPreview_DropsDirectives(t *testing.T) {
	lines, err := Plugin(domain.Report{
		Summary: domain.Summarize([]domain.Activity{
			{Name: "Coding", SecondsSpent: 600, Productivity: domain.Productive},
		}, 15, false),
		PulseColor: "#123456",
	}, DefaultStyle)
	if err != nil {
		t.Fatalf("Plugin returned error: %v", err)
	}
	var buf bytes.Buffer
	if err := Preview(&buf, lines); err != nil {
		t.Fatalf("Preview returned error: %v", err)
	}
	out := buf.String()
	for _, bad := range []string{"color=", "href=", "font=", " | "} {
		if strings.Contains(out, bad) {
			t.Fatalf("preview contains %q:\n%s", bad, out)
		}
	}
	if !strings.Contains(out, "Coding") || !strings.Contains(out, "Rescue Time") {
		t.Fatalf("preview lost text:\n%s", out)
	}
	if strings.Count(out, "\n") != len(lines) {
		t.Fatalf("preview has %d lines, want %d", strings.Count(out, "\n"), len(lines))
	}
}

func TestPlugin_NoticesAndNamesStaySingleLine(t *testing.T) {
	lines, err := Plugin(domain.Report{
		Notices: []string{"Error fetching activities: <html>\n<h1>Bad Gateway</h1>\n---\n</html>"},
		Summary: domain.Summarize([]domain.Activity{
			{Name: "evil | color=#000000\n---", SecondsSpent: 60, Productivity: domain.Neutral},
		}, 15, false),
		PulseColor: "#111111",
	}, DefaultStyle)
	if err != nil {
		t.Fatalf("Plugin returned error: %v", err)
	}
	got := strings.Split(strings.TrimSuffix(renderString(t, lines), "\n"), "\n")
	if len(got) != 11 {
		t.Fatalf("got %d lines, want 11:\n%s", len(got), strings.Join(got, "\n"))
	}
	if got[0] != "Error fetching activities: <html> <h1>Bad Gateway</h1> --- </html>" {
		t.Fatalf("notice = %q", got[0])
	}
	if got[1] != "0m | color=#111111" {
		t.Fatalf("header = %q, want it right after the notice", got[1])
	}
	last := got[len(got)-1]
	if last != "   1m evil ¦ color=#000000 --- | font='Menlo' size=12 trim=false color=#3498db" {
		t.Fatalf("activity line = %q", last)
	}
}

func TestPlugin_LongNoticeIsCapped(t *testing.T) {
	lines, err := Plugin(domain.Report{Notices: []string{strings.Repeat("x", 1000)}}, DefaultStyle)
	if err != nil {
		t.Fatalf("Plugin returned error: %v", err)
	}
	if n := len([]rune(lines[0].Text)); n > maxNotice+1 {
		t.Fatalf("notice is %d runes, want at most %d", n, maxNotice+1)
	}
}
