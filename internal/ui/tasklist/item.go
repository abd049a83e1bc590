package tasklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list. The
// category name is resolved against the snapshot at build time, so a
// deleted category shows as "Unknown" instead of breaking the render.
type TaskItem struct {
	Task         model.Task
	CategoryName string
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// Description returns a short summary line for the list.
func (i TaskItem) Description() string {
	parts := []string{i.Task.Status, i.Task.Priority}
	if i.CategoryName != "" {
		parts = append(parts, i.CategoryName)
	}
	return strings.Join(parts, " | ")
}

// ItemDelegate implements list.ItemDelegate for rendering task rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task row.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	taskItem, ok := item.(TaskItem)
	if !ok {
		return
	}

	task := taskItem.Task
	isSelected := index == m.Index()

	var prefix string
	if task.Completed() {
		prefix = "✓"
	} else {
		prefix = "○"
	}

	statusBadge := theme.StatusStyle(task.Status).Render(task.Status)
	priBadge := theme.PriorityStyle(task.Priority).Render(priorityLabel(task.Priority))

	categoryStr := ""
	if taskItem.CategoryName != "" {
		categoryStr = lipgloss.NewStyle().
			Foreground(theme.ColorBlue).
			Render(" [" + taskItem.CategoryName + "]")
	}

	dueStr := ""
	if due := task.DisplayDueDate(); due != "" {
		dueStr = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Render(" due " + due)
	}

	line := fmt.Sprintf(
		"%s %s %s %s%s%s",
		prefix, statusBadge, priBadge, task.Title, categoryStr, dueStr,
	)

	if task.Completed() {
		line = theme.DimmedStyle.Render(line)
	}

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// priorityLabel returns a short label for the given priority.
func priorityLabel(p string) string {
	switch p {
	case model.PriorityUrgent:
		return "P1"
	case model.PriorityHigh:
		return "P2"
	case model.PriorityMedium:
		return "P3"
	case model.PriorityLow:
		return "P4"
	default:
		return "P?"
	}
}
