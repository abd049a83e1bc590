package categoryform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// SubmittedMsg is dispatched when the category form completes.
type SubmittedMsg struct {
	Input api.CategoryCreate
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings keeps field values on the heap for huh.
type formBindings struct {
	name  string
	color string
}

// Model is the Bubble Tea model for the category creation form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new category form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes a fresh form.
func (m *Model) Start() tea.Cmd {
	m.fb.name = ""
	m.fb.color = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// Restart rebuilds the form after a rejected submit, keeping the typed
// values.
func (m *Model) Restart() tea.Cmd {
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&m.fb.name),
		huh.NewInput().
			Title("Color").
			Placeholder("#8B5CF6").
			Description("Hex color; leave blank for the default").
			Value(&m.fb.color),
	))
}

// Update handles messages for the category form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		fb := *m.fb
		return m, func() tea.Msg {
			return SubmittedMsg{Input: api.CategoryCreate{
				Name:  fb.name,
				Color: fb.color,
			}}
		}
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the category form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("New Category") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
