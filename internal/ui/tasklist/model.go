package tasklist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/keys"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/taskstore"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// SnapshotMsg carries a fresh store snapshot into the list view.
type SnapshotMsg struct {
	Snapshot taskstore.Snapshot
}

// SelectedTaskMsg is sent when the user selects a task for editing.
type SelectedTaskMsg struct {
	Task model.Task
}

// Model is the task list view. It renders store snapshots and owns no
// business logic: filter changes and mutations are dispatched upward.
type Model struct {
	list     list.Model
	keys     *keys.KeyMap
	snapshot taskstore.Snapshot
	width    int
	height   int
}

// New creates a new task list model.
func New(k *keys.KeyMap, width, height int) Model {
	delegate := ItemDelegate{}
	l := list.New([]list.Item{}, delegate, width, height-2)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		items := make([]list.Item, len(msg.Snapshot.Tasks))
		for i, task := range msg.Snapshot.Tasks {
			items[i] = TaskItem{
				Task:         task,
				CategoryName: msg.Snapshot.CategoryName(task.CategoryID),
			}
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Select) {
			item, ok := m.list.SelectedItem().(TaskItem)
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return SelectedTaskMsg{Task: item.Task}
			}
		}
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn).
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SelectedTask returns the task under the cursor, if any.
func (m Model) SelectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// FilterSummary describes the active filter for the status bar. Empty
// when no filter is active.
func (m Model) FilterSummary() string {
	f := m.snapshot.Filter
	var parts []string
	if f.Status != nil {
		parts = append(parts, "status:"+*f.Status)
	}
	if f.Priority != nil {
		parts = append(parts, "priority:"+*f.Priority)
	}
	if f.CategoryID != nil {
		parts = append(parts, "category:"+m.snapshot.CategoryName(*f.CategoryID))
	}
	return strings.Join(parts, " ")
}

// View renders the task list view.
func (m Model) View() string {
	if m.snapshot.Loading && len(m.list.Items()) == 0 {
		return m.centered("Loading tasks...")
	}
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

// renderEmptyState shows guidance text when no tasks are available.
func (m Model) renderEmptyState() string {
	if !m.snapshot.Filter.IsZero() {
		return m.centered("No matching tasks.\nPress 0 to clear filters.")
	}
	return m.centered("No tasks yet.\n\nPress n to create your first task.")
}

func (m Model) centered(text string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray).
		Render(text)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}
