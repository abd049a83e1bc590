package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/taskstore"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui/dashboard"
)

// storeSnapshotMsg carries the next snapshot from the task store
// subscription into the Bubble Tea update loop.
type storeSnapshotMsg struct {
	snapshot taskstore.Snapshot
}

// loginResultMsg reports the outcome of a login or register attempt.
type loginResultMsg struct {
	err error
}

// categoriesLoadedMsg reports the outcome of the startup category load.
type categoriesLoadedMsg struct {
	err error
}

// mutationDoneMsg reports the outcome of a task or category write.
// action names the operation for the error notice.
type mutationDoneMsg struct {
	action string
	err    error
}

// notificationActionMsg reports the outcome of a mark-read or remove.
type notificationActionMsg struct {
	action string
	err    error
}

// waitForSnapshot blocks on the store subscription channel and forwards
// the next snapshot. Re-issued after each storeSnapshotMsg, in the same
// way the poller's result channel is drained.
func (m Model) waitForSnapshot() tea.Cmd {
	ch := m.subCh
	return func() tea.Msg {
		snapshot, ok := <-ch
		if !ok {
			return nil
		}
		return storeSnapshotMsg{snapshot: snapshot}
	}
}

// loadCategories performs the one-time category fetch for this session.
func (m Model) loadCategories() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		err := store.LoadCategories(context.Background())
		return categoriesLoadedMsg{err: err}
	}
}

// fetchAnalytics requests a fresh analytics snapshot for the dashboard.
func (m Model) fetchAnalytics() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		snapshot, err := client.GetAnalytics(context.Background())
		return dashboard.LoadedMsg{Snapshot: snapshot, Err: err}
	}
}

// doLogin authenticates with the entered credentials.
func (m Model) doLogin(email, password string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		err := sess.Login(context.Background(), email, password)
		return loginResultMsg{err: err}
	}
}

// doRegister creates a new account and signs it in.
func (m Model) doRegister(name, email, password string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		err := sess.Register(context.Background(), name, email, password)
		return loginResultMsg{err: err}
	}
}

// createTask submits a new task through the mutator.
func (m Model) createTask(input api.TaskCreate) tea.Cmd {
	mutator := m.mutator
	return func() tea.Msg {
		_, err := mutator.CreateTask(context.Background(), input)
		return mutationDoneMsg{action: "create task", err: err}
	}
}

// updateTask submits a partial task update through the mutator.
func (m Model) updateTask(id string, update api.TaskUpdate) tea.Cmd {
	mutator := m.mutator
	return func() tea.Msg {
		_, err := mutator.UpdateTask(context.Background(), id, update)
		return mutationDoneMsg{action: "update task", err: err}
	}
}

// cycleStatus advances the task to the next status in the
// todo, in progress, completed cycle.
func (m Model) cycleStatus(task model.Task) tea.Cmd {
	mutator := m.mutator
	next := nextStatus(task.Status)
	return func() tea.Msg {
		_, err := mutator.SetStatus(context.Background(), task.ID, next)
		return mutationDoneMsg{action: "update status", err: err}
	}
}

// deleteTask removes a confirmed task.
func (m Model) deleteTask(id string) tea.Cmd {
	mutator := m.mutator
	return func() tea.Msg {
		err := mutator.DeleteTask(context.Background(), id)
		return mutationDoneMsg{action: "delete task", err: err}
	}
}

// createCategory submits a new category through the mutator.
func (m Model) createCategory(input api.CategoryCreate) tea.Cmd {
	mutator := m.mutator
	return func() tea.Msg {
		_, err := mutator.CreateCategory(context.Background(), input)
		return mutationDoneMsg{action: "create category", err: err}
	}
}

// markRead marks one notification as read.
func (m Model) markRead(id string) tea.Cmd {
	center := m.center
	return func() tea.Msg {
		err := center.MarkAsRead(context.Background(), id)
		return notificationActionMsg{action: "mark as read", err: err}
	}
}

// removeNotification deletes one notification. Unlike markRead the
// removal only applies locally once the server confirms it.
func (m Model) removeNotification(id string) tea.Cmd {
	center := m.center
	return func() tea.Msg {
		err := center.Remove(context.Background(), id)
		return notificationActionMsg{action: "delete notification", err: err}
	}
}

// nextStatus returns the status after s in the inline cycle.
func nextStatus(s string) string {
	switch s {
	case model.StatusTodo:
		return model.StatusInProgress
	case model.StatusInProgress:
		return model.StatusCompleted
	default:
		return model.StatusTodo
	}
}

// cycleStatusFilter advances the status filter: off, then each status in
// order, then off again.
func cycleStatusFilter(f model.TaskFilter) model.TaskFilter {
	f.Status = cycleValue(f.Status, model.Statuses)
	return f
}

// cyclePriorityFilter advances the priority filter the same way.
func cyclePriorityFilter(f model.TaskFilter) model.TaskFilter {
	f.Priority = cycleValue(f.Priority, model.Priorities)
	return f
}

// cycleCategoryFilter advances the category filter through the known
// category ids.
func cycleCategoryFilter(f model.TaskFilter, categories []model.Category) model.TaskFilter {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	f.CategoryID = cycleValue(f.CategoryID, ids)
	return f
}

// cycleValue steps through nil, values..., nil.
func cycleValue(current *string, values []string) *string {
	if len(values) == 0 {
		return nil
	}
	if current == nil {
		v := values[0]
		return &v
	}
	for i, v := range values {
		if v == *current {
			if i+1 < len(values) {
				next := values[i+1]
				return &next
			}
			return nil
		}
	}
	v := values[0]
	return &v
}
