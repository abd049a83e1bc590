package model

// DailyCompletion is one day's completed-task count within the
// analytics trend window.
type DailyCompletion struct {
	// Date is the day in "2006-01-02" form.
	Date string `json:"date"`

	// Completed is the number of tasks completed on that day.
	Completed int `json:"completed"`
}

// CategoryStat summarizes task counts for a single category.
type CategoryStat struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// AnalyticsSnapshot is the read-only aggregate payload from
// GET /api/analytics. The client never mutates it, only re-fetches.
//
// Absent fields decode to their zero values so a partial payload still
// renders (as zeros) instead of failing.
type AnalyticsSnapshot struct {
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	TodoTasks       int `json:"todo_tasks"`

	// CompletionRate is a percentage in [0, 100].
	CompletionRate float64 `json:"completion_rate"`

	// ProductivityScore is the server-computed score in [0, 100].
	ProductivityScore int `json:"productivity_score"`

	// DailyCompletions is ordered by the server; that order is the
	// source of truth for the trend chart and must not be re-sorted.
	DailyCompletions []DailyCompletion `json:"daily_completions"`

	CategoryStats []CategoryStat `json:"category_stats"`

	// PriorityDistribution maps priority name to task count. Keys may
	// be missing; consumers default absent priorities to zero.
	PriorityDistribution map[string]int `json:"priority_distribution"`
}
