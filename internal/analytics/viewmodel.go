// Package analytics derives chart-ready series from the server's
// analytics snapshot. Everything here is a pure transform: no mutation,
// no network, no retained state.
package analytics

import (
	"fmt"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

// Point is a single chart data point.
type Point struct {
	// Label is the x-axis display text.
	Label string

	// Value is the y-axis count.
	Value int
}

// TrendSeries produces one point per daily_completions entry, in the
// server's given order. The server is the source of truth for
// chronological order; the series is never re-sorted client-side.
func TrendSeries(snapshot model.AnalyticsSnapshot) []Point {
	points := make([]Point, 0, len(snapshot.DailyCompletions))
	for _, day := range snapshot.DailyCompletions {
		points = append(points, Point{
			Label: model.DisplayDate(day.Date),
			Value: day.Completed,
		})
	}
	return points
}

// PrioritySeries produces exactly four points in the fixed order low,
// medium, high, urgent. Priorities absent from the payload appear with a
// zero count rather than being omitted, so chart legends stay stable
// across renders.
func PrioritySeries(snapshot model.AnalyticsSnapshot) []Point {
	points := make([]Point, 0, len(model.Priorities))
	for _, priority := range model.Priorities {
		points = append(points, Point{
			Label: priority,
			Value: snapshot.PriorityDistribution[priority],
		})
	}
	return points
}

// CategoryPerformance holds the two parallel series for the category
// chart, aligned index-for-index with Labels.
type CategoryPerformance struct {
	Labels    []string
	Total     []int
	Completed []int
}

// CategorySeries builds the category-performance chart data. Both series
// are derived in a single pass over category_stats, so their lengths
// cannot diverge. An entry reporting more completions than total tasks
// is an inconsistent payload and is rejected outright instead of being
// rendered or silently clamped.
func CategorySeries(snapshot model.AnalyticsSnapshot) (CategoryPerformance, error) {
	perf := CategoryPerformance{
		Labels:    make([]string, 0, len(snapshot.CategoryStats)),
		Total:     make([]int, 0, len(snapshot.CategoryStats)),
		Completed: make([]int, 0, len(snapshot.CategoryStats)),
	}

	for i, stat := range snapshot.CategoryStats {
		if stat.Completed > stat.Total || stat.Total < 0 || stat.Completed < 0 {
			return CategoryPerformance{}, fmt.Errorf(
				"inconsistent category stats at index %d (%q): %d completed of %d total",
				i, stat.Name, stat.Completed, stat.Total,
			)
		}
		perf.Labels = append(perf.Labels, stat.Name)
		perf.Total = append(perf.Total, stat.Total)
		perf.Completed = append(perf.Completed, stat.Completed)
	}

	return perf, nil
}

// FormatCompletionRate renders the completion rate percentage to one
// decimal place. All other analytics numbers are integer counts and are
// displayed as-is.
func FormatCompletionRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}
