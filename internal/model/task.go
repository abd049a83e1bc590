package model

import "time"

// Task status constants as defined by the Taskify API.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task priority constants, ordered from least to most urgent.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Statuses lists the valid task statuses in display order.
var Statuses = []string{StatusTodo, StatusInProgress, StatusCompleted}

// Priorities lists the valid task priorities in display order.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Task is a work item owned by the server. The client only ever holds a
// transient cached copy from the latest response.
//
// Date fields cross the wire as ISO-8601 strings and stay strings on the
// client; they are parsed only to produce display text.
type Task struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"id"`

	// Title is the human-readable summary of the task.
	Title string `json:"title"`

	// Description is the optional body text.
	Description string `json:"description,omitempty"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Priority is one of the Priority* constants.
	Priority string `json:"priority"`

	// CategoryID references a Category. The reference is weak: the
	// category may have been deleted since the task was saved.
	CategoryID string `json:"category_id,omitempty"`

	// DueDate is the optional due instant as an ISO-8601 string.
	DueDate string `json:"due_date,omitempty"`

	// CompletedAt is set by the server when the task transitions
	// to completed.
	CompletedAt string `json:"completed_at,omitempty"`

	// CreatedAt is when the task was created on the server.
	CreatedAt string `json:"created_at,omitempty"`

	// UpdatedAt is when the task was last modified on the server.
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Completed reports whether the task has reached the completed status.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// DisplayDueDate formats the due date for terminal display.
// Returns an empty string when no due date is set.
func (t Task) DisplayDueDate() string {
	return DisplayDate(t.DueDate)
}

// dateLayouts are the wire formats accepted for display parsing. The
// server emits RFC 3339 or a fractional-seconds variant without zone.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02",
}

// DisplayDate converts an ISO-8601 instant or date-only string into a
// short human-readable form ("Jan 2"). Unparseable input is returned
// unchanged so a malformed payload never hides data.
func DisplayDate(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, iso); err == nil {
			return ts.Format("Jan 2")
		}
	}
	return iso
}

// ValidStatus reports whether s is one of the enumerated task statuses.
func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusCompleted
}

// ValidPriority reports whether p is one of the enumerated priorities.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium ||
		p == PriorityHigh || p == PriorityUrgent
}
