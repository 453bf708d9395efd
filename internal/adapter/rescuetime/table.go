package rescuetime

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"rescuetime-bar/internal/domain"
)

// Column names used by the activity endpoint.
const (
	ColRank         = "Rank"
	ColTimeSpent    = "Time Spent (seconds)"
	ColPeople       = "Number of People"
	ColActivity     = "Activity"
	ColCategory     = "Category"
	ColProductivity = "Productivity"
)

var errMissingField = errors.New("missing required field")

// Table mirrors the /anapi/data response: column headers once, then one
// value list per row.
type Table struct {
	Notes      string   `json:"notes"`
	RowHeaders []string `json:"row_headers"`
	Rows       [][]any  `json:"rows"`
	Error      string   `json:"error"`
}

// Record is one row keyed by column header.
type Record map[string]any

// FieldError reports a required field that is absent or has the wrong type.
type FieldError struct {
	Where string // e.g. "row 3" or "pulse"
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %v", e.Where, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Is reports every FieldError as domain.ErrInvalidData.
func (e *FieldError) Is(target error) bool { return target == domain.ErrInvalidData }

// Extract zips the headers against each row. A table without a rows field
// returns domain.ErrNoData. Rows keep their order; a row with fewer or more
// values than headers is zipped up to the shorter of the two.
func Extract(t Table) ([]Record, error) {
	if t.Rows == nil {
		return nil, domain.ErrNoData
	}
	out := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		n := min(len(row), len(t.RowHeaders))
		rec := make(Record, n)
		for i := 0; i < n; i++ {
			rec[t.RowHeaders[i]] = row[i]
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseActivities converts records into typed activities. Activity, Time
// Spent (seconds) and Productivity are required; the rest default to zero.
func ParseActivities(records []Record) ([]domain.Activity, error) {
	out := make([]domain.Activity, 0, len(records))
	for i, rec := range records {
		a, err := parseActivity(rec)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Where = fmt.Sprintf("row %d", i)
			}
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func parseActivity(rec Record) (domain.Activity, error) {
	var a domain.Activity

	name, ok := rec[ColActivity].(string)
	if !ok {
		return a, fieldErr(rec, ColActivity, "string")
	}
	a.Name = name

	secs, err := intField(rec, ColTimeSpent, true)
	if err != nil {
		return a, err
	}
	if secs < 0 {
		return a, &FieldError{Field: ColTimeSpent, Err: fmt.Errorf("negative value %d", secs)}
	}
	a.SecondsSpent = secs

	score, err := intField(rec, ColProductivity, true)
	if err != nil {
		return a, err
	}
	if a.Productivity, err = domain.ParseProductivity(score); err != nil {
		return a, &FieldError{Field: ColProductivity, Err: err}
	}

	rank, err := intField(rec, ColRank, false)
	if err != nil {
		return a, err
	}
	a.Rank = int(rank)
	people, err := intField(rec, ColPeople, false)
	if err != nil {
		return a, err
	}
	a.People = int(people)
	if cat, ok := rec[ColCategory].(string); ok {
		a.Category = cat
	}
	return a, nil
}

func fieldErr(rec Record, field, want string) error {
	v, ok := rec[field]
	if !ok {
		return &FieldError{Field: field, Err: errMissingField}
	}
	return &FieldError{Field: field, Err: fmt.Errorf("want %s, got %T", want, v)}
}

// intField reads an integral number. Values decoded with UseNumber arrive as
// json.Number; plain float64 and int are accepted for callers building
// records by hand.
func intField(rec Record, field string, required bool) (int64, error) {
	v, ok := rec[field]
	if !ok {
		if required {
			return 0, &FieldError{Field: field, Err: errMissingField}
		}
		return 0, nil
	}
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, &FieldError{Field: field, Err: fmt.Errorf("not an integer: %s", strings.TrimSpace(n.String()))}
		}
		return int64(f), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &FieldError{Field: field, Err: fmt.Errorf("not an integer: %v", n)}
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return 0, fieldErr(rec, field, "number")
}
