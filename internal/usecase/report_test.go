package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"rescuetime-bar/internal/domain"
)

type fakeClient struct {
	activities []domain.Activity
	actErr     error
	pulse      domain.Pulse
	pulseErr   error
	gotDay     time.Time
}

func (f *fakeClient) ListActivities(ctx context.Context, day time.Time) ([]domain.Activity, error) {
	f.gotDay = day
	return f.activities, f.actErr
}

func (f *fakeClient) CurrentPulse(ctx context.Context) (domain.Pulse, error) {
	return f.pulse, f.pulseErr
}

func newUseCase(c *fakeClient) *ReportUseCase {
	return &ReportUseCase{
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Client: c,
		Top:    15,
		Now:    func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local) },
	}
}

func TestRun_AggregatesActivities(t *testing.T) {
	c := &fakeClient{
		activities: []domain.Activity{
			{Name: "A", SecondsSpent: 7200, Productivity: domain.VeryProductive},
			{Name: "B", SecondsSpent: 1800, Productivity: domain.Distracting},
		},
		pulse: domain.Pulse{Color: "#111111"},
	}
	r, err := newUseCase(c).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(r.Notices) != 0 {
		t.Fatalf("Notices = %v, want none", r.Notices)
	}
	if r.PulseColor != "#111111" {
		t.Fatalf("PulseColor = %q", r.PulseColor)
	}
	if r.Summary.ProductiveSeconds != 7200 || len(r.Summary.Top) != 2 {
		t.Fatalf("Summary = %#v", r.Summary)
	}
	if c.gotDay.Day() != 19 {
		t.Fatalf("requested day = %v, want the 19th", c.gotDay)
	}
}

func TestRun_FailuresBecomeNotices(t *testing.T) {
	tests := []struct {
		name       string
		actErr     error
		pulseErr   error
		wantNotice []string
	}{
		{"no data", domain.ErrNoData, nil, []string{NoDataNotice}},
		{"transport", errors.New("connection refused"), nil, []string{"Error fetching activities: connection refused", NoDataNotice}},
		{"invalid score", fmt.Errorf("row 0: %w", domain.ErrInvalidProductivity), nil, []string{"Invalid activity data:", NoDataNotice}},
		{"missing field", fmt.Errorf("row 2: field %q: %w", "Activity", domain.ErrInvalidData), nil, []string{"Invalid activity data: row 2", NoDataNotice}},
		{"both fail", domain.ErrNoData, errors.New("timeout"), []string{NoDataNotice, "Error fetching pulse: timeout"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeClient{
				activities: []domain.Activity{{Name: "ignored", SecondsSpent: 60, Productivity: domain.Productive}},
				actErr:     tt.actErr,
				pulse:      domain.Pulse{Color: "#222222"},
				pulseErr:   tt.pulseErr,
			}
			r, err := newUseCase(c).Run(context.Background())
			if err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if len(r.Notices) != len(tt.wantNotice) {
				t.Fatalf("Notices = %v, want %v", r.Notices, tt.wantNotice)
			}
			for i, want := range tt.wantNotice {
				if !strings.HasPrefix(r.Notices[i], want) {
					t.Fatalf("Notices[%d] = %q, want prefix %q", i, r.Notices[i], want)
				}
			}
			if r.Summary.ProductiveSeconds != 0 || len(r.Summary.Top) != 0 {
				t.Fatalf("Summary = %#v, want empty after activity failure", r.Summary)
			}
			if tt.pulseErr != nil && r.PulseColor != "" {
				t.Fatalf("PulseColor = %q, want empty after pulse failure", r.PulseColor)
			}
		})
	}
}

func TestRun_SortByTime(t *testing.T) {
	c := &fakeClient{
		activities: []domain.Activity{
			{Name: "small", SecondsSpent: 60},
			{Name: "big", SecondsSpent: 600},
		},
		pulse: domain.Pulse{Color: "#000000"},
	}
	uc := newUseCase(c)
	uc.SortByTime = true
	uc.Top = 1
	r, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(r.Summary.Top) != 1 || r.Summary.Top[0].Name != "big" {
		t.Fatalf("Top = %#v, want [big]", r.Summary.Top)
	}
}

func TestRun_RequiresClient(t *testing.T) {
	uc := &ReportUseCase{Log: slog.Default()}
	if _, err := uc.Run(context.Background()); err == nil {
		t.Fatalf("Run returned nil error without a client")
	}
}
