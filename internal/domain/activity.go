package domain

// Activity is one RescueTime activity row for a single day.
type Activity struct {
	Rank         int
	Name         string
	Category     string
	SecondsSpent int64
	People       int
	Productivity Productivity
}
