package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rescuetime-bar/internal/domain"
	"rescuetime-bar/internal/ports"
)

const NoDataNotice = "No data available"

// ReportUseCase fetches today's activities and pulse and folds them into a
// domain.Report. Fetch failures never abort the run: they become notices and
// the report is built over whatever data remains.
type ReportUseCase struct {
	Log        *slog.Logger
	Client     ports.ActivityClient
	Top        int
	SortByTime bool
	Now        func() time.Time
}

func (uc *ReportUseCase) Run(ctx context.Context) (domain.Report, error) {
	if uc.Client == nil {
		return domain.Report{}, errors.New("usecase not initialized: missing client")
	}
	now := time.Now
	if uc.Now != nil {
		now = uc.Now
	}
	day := now()

	var report domain.Report
	uc.Log.Debug("fetching activities", slog.String("date", day.Format("2006-01-02")))
	activities, err := uc.Client.ListActivities(ctx, day)
	switch {
	case errors.Is(err, domain.ErrNoData):
		report.Notices = append(report.Notices, NoDataNotice)
		activities = nil
	case err != nil:
		// A failed fetch is treated as an empty payload.
		uc.Log.Warn("activity fetch failed", slog.String("error", err.Error()))
		report.Notices = append(report.Notices, activityNotice(err), NoDataNotice)
		activities = nil
	}
	uc.Log.Debug("fetched activities", slog.Int("count", len(activities)))

	pulse, err := uc.Client.CurrentPulse(ctx)
	if err != nil {
		uc.Log.Warn("pulse fetch failed", slog.String("error", err.Error()))
		report.Notices = append(report.Notices, "Error fetching pulse: "+err.Error())
		pulse = domain.Pulse{}
	}
	report.PulseColor = pulse.Color

	report.Summary = domain.Summarize(activities, uc.Top, uc.SortByTime)
	return report, nil
}

func activityNotice(err error) string {
	if errors.Is(err, domain.ErrInvalidData) || errors.Is(err, domain.ErrInvalidProductivity) {
		return "Invalid activity data: " + err.Error()
	}
	return "Error fetching activities: " + err.Error()
}
