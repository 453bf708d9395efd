package render

import "fmt"

// FormatSeconds renders a non-negative duration as "2h 13m", or "13m" under
// an hour. Leftover seconds are dropped.
func FormatSeconds(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
