package taskstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

// Validation errors reported before any network call is made.
var (
	ErrTitleRequired        = errors.New("task title is required")
	ErrCategoryNameRequired = errors.New("category name is required")
)

// Mutator issues task and category writes against the server and
// reconciles the store afterwards. Every operation is safe to invoke
// exactly once: a failure never corrupts the local snapshot, it only
// surfaces an error so the user can retry with their input intact.
type Mutator struct {
	client *api.Client
	store  *Store
}

// NewMutator creates a Mutator writing through the given client and
// reconciling the given store.
func NewMutator(client *api.Client, store *Store) *Mutator {
	return &Mutator{client: client, store: store}
}

// CreateTask validates and submits a new task. A blank title is rejected
// locally, before any request is made. A date-only due date is widened
// to a full ISO-8601 instant at UTC midnight. On success the store
// refetches; on failure the caller's form state is untouched.
func (m *Mutator) CreateTask(ctx context.Context, input api.TaskCreate) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	input.DueDate = NormalizeDueDate(input.DueDate)

	task, err := m.client.CreateTask(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	m.store.Refetch()
	return task, nil
}

// UpdateTask sends only the provided fields. Used both for full-form
// edits and single-field status changes from inline controls. There is
// no optimistic apply: on failure the displayed value stays stale and
// the error is surfaced, which avoids ever showing a value the server
// rejected.
func (m *Mutator) UpdateTask(ctx context.Context, id string, partial api.TaskUpdate) (*model.Task, error) {
	if partial.DueDate != nil {
		normalized := NormalizeDueDate(*partial.DueDate)
		partial.DueDate = &normalized
	}

	task, err := m.client.UpdateTask(ctx, id, partial)
	if err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}

	m.store.Refetch()
	return task, nil
}

// SetStatus is the inline-control path: a single-field status update.
func (m *Mutator) SetStatus(ctx context.Context, id string, status string) (*model.Task, error) {
	return m.UpdateTask(ctx, id, api.TaskUpdate{Status: &status})
}

// DeleteTask permanently removes a task. The operation is destructive
// and irreversible, so callers must have obtained explicit user
// confirmation before invoking it. On failure the task remains listed.
func (m *Mutator) DeleteTask(ctx context.Context, id string) error {
	if err := m.client.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}

	m.store.Refetch()
	return nil
}

// CreateCategory validates and submits a new category, defaulting the
// color when unset, then refreshes the shared category list.
func (m *Mutator) CreateCategory(ctx context.Context, input api.CategoryCreate) (*model.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrCategoryNameRequired
	}
	if input.Color == "" {
		input.Color = model.DefaultCategoryColor
	}

	category, err := m.client.CreateCategory(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	if err := m.store.LoadCategories(ctx); err != nil {
		// The category exists server-side; a failed list refresh only
		// delays it becoming visible.
		return category, nil
	}
	return category, nil
}

// DeleteCategory removes a category. Tasks still referencing it are
// left alone by the server and render their category as "Unknown".
func (m *Mutator) DeleteCategory(ctx context.Context, id string) error {
	if err := m.client.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}

	if err := m.store.LoadCategories(ctx); err != nil {
		return nil
	}
	return nil
}

// NormalizeDueDate widens a date-only value ("2006-01-02") into a full
// ISO-8601 instant at UTC midnight. Values that are already instants, or
// that do not parse at all, pass through unchanged and are left for the
// server to validate.
func NormalizeDueDate(due string) string {
	if due == "" {
		return ""
	}
	if _, err := time.Parse(time.RFC3339, due); err == nil {
		return due
	}
	if day, err := time.Parse("2006-01-02", due); err == nil {
		return day.UTC().Format(time.RFC3339)
	}
	return due
}
