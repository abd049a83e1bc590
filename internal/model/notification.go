package model

// Notification type constants as emitted by the server.
const (
	NotificationDueReminder    = "due_reminder"
	NotificationTaskCompleted  = "task_completed"
	NotificationCategoryUpdate = "category_update"
)

// Notification is an alert surfaced to the user about task activity.
// Notifications are created server-side; the client only marks them
// read or deletes them.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// Type is one of the Notification* constants.
	Type string `json:"type"`

	// Title is the short headline text.
	Title string `json:"title"`

	// Message is the full human-readable notification text.
	Message string `json:"message"`

	// TaskID optionally links this notification to a task.
	TaskID string `json:"task_id,omitempty"`

	// Read indicates whether the user has seen this notification.
	Read bool `json:"read"`

	// CreatedAt is when this notification was generated (ISO-8601).
	CreatedAt string `json:"created_at,omitempty"`
}
