package ports

import (
	"context"
	"time"

	"rescuetime-bar/internal/domain"
)

// ActivityClient fetches a day's activities and the productivity pulse.
type ActivityClient interface {
	ListActivities(ctx context.Context, day time.Time) ([]domain.Activity, error)
	CurrentPulse(ctx context.Context) (domain.Pulse, error)
}
