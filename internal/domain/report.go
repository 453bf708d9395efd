package domain

import "errors"

var (
	// ErrNoData is returned when the activity response carries no rows.
	ErrNoData = errors.New("no data available")
	// ErrInvalidData marks an activity or pulse payload that is missing a
	// required field or holds a value of the wrong type.
	ErrInvalidData = errors.New("invalid activity data")
)

// Report is one run's output: diagnostic notices, the aggregated day and
// the pulse colour (empty when unknown).
type Report struct {
	Notices    []string
	Summary    Summary
	PulseColor string
}
