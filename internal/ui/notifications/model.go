package notifications

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/keys"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// Model is the notification list view.
type Model struct {
	keys    *keys.KeyMap
	items   []model.Notification
	cursor  int
	errText string
	width   int
	height  int
}

// New creates a new notifications view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetNotifications replaces the displayed list, keeping the cursor in
// bounds.
func (m *Model) SetNotifications(items []model.Notification) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetError shows a transient error notice above the list.
func (m *Model) SetError(text string) {
	m.errText = text
}

// ClearError removes the error notice.
func (m *Model) ClearError() {
	m.errText = ""
}

// Selected returns the notification under the cursor, if any.
func (m Model) Selected() (model.Notification, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return model.Notification{}, false
	}
	return m.items[m.cursor], true
}

// Update handles messages for the notifications view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(keyMsg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

// View renders the notification list.
func (m Model) View() string {
	if len(m.items) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No notifications.")
	}

	var rows []string
	if m.errText != "" {
		rows = append(rows, theme.ErrorStyle.Render(m.errText))
	}

	for i, n := range m.items {
		marker := "●"
		line := fmt.Sprintf(
			"%s %s — %s  %s",
			marker, n.Title, n.Message,
			lipgloss.NewStyle().Foreground(theme.ColorGray).Render(model.DisplayDate(n.CreatedAt)),
		)

		if n.Read {
			line = lipgloss.NewStyle().Foreground(theme.ColorGray).Render(line)
		}

		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		rows = append(rows, line)
	}

	return lipgloss.NewStyle().
		Padding(1, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
