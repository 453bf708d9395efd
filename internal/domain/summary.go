package domain

import "slices"

// Category is a named bucket of activities selected by productivity sign.
type Category struct {
	Name  string
	Match func(Productivity) bool
	// Style is the level whose colour renders the category line.
	Style Productivity
}

// Categories lists the buckets in display order. Together they partition
// every valid productivity level.
var Categories = []Category{
	{Name: "Productive", Match: func(p Productivity) bool { return p > 0 }, Style: VeryProductive},
	{Name: "Neutral", Match: func(p Productivity) bool { return p == 0 }, Style: Neutral},
	{Name: "Distracting", Match: func(p Productivity) bool { return p < 0 }, Style: VeryDistracting},
}

// CategoryTotal is the time spent across one category.
type CategoryTotal struct {
	Category Category
	Seconds  int64
}

// Summary is the aggregated view of one day's activities.
type Summary struct {
	ProductiveSeconds int64
	Totals            []CategoryTotal
	Top               []Activity
}

// TotalBy sums seconds over activities whose productivity matches.
func TotalBy(activities []Activity, match func(Productivity) bool) int64 {
	var total int64
	for _, a := range activities {
		if match(a.Productivity) {
			total += a.SecondsSpent
		}
	}
	return total
}

// Top returns the first n activities. With sortByTime the activities are
// first ordered by descending time spent; ties keep their original order.
// The input slice is never modified.
func Top(activities []Activity, n int, sortByTime bool) []Activity {
	out := slices.Clone(activities)
	if sortByTime {
		slices.SortStableFunc(out, func(a, b Activity) int {
			switch {
			case a.SecondsSpent > b.SecondsSpent:
				return -1
			case a.SecondsSpent < b.SecondsSpent:
				return 1
			}
			return 0
		})
	}
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summarize computes productive time, category totals and the top-n list.
func Summarize(activities []Activity, n int, sortByTime bool) Summary {
	s := Summary{
		ProductiveSeconds: TotalBy(activities, func(p Productivity) bool { return p > 0 }),
		Totals:            make([]CategoryTotal, 0, len(Categories)),
		Top:               Top(activities, n, sortByTime),
	}
	for _, c := range Categories {
		s.Totals = append(s.Totals, CategoryTotal{Category: c, Seconds: TotalBy(activities, c.Match)})
	}
	return s
}
