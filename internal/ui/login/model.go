package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// LoginSubmittedMsg is dispatched when the sign-in form completes.
type LoginSubmittedMsg struct {
	Email    string
	Password string
}

// RegisterSubmittedMsg is dispatched when the sign-up form completes.
type RegisterSubmittedMsg struct {
	Name     string
	Email    string
	Password string
}

// formBindings keeps field values on the heap for huh.
type formBindings struct {
	name     string
	email    string
	password string
}

// Model is the sign-in / sign-up view shown before a session exists.
type Model struct {
	form         *huh.Form
	fb           *formBindings
	registerMode bool
	errText      string
	width        int
	height       int
}

// New creates a new login model with the sign-in form ready.
func New(width, height int) Model {
	m := Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init starts the sign-in form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// SetError displays an authentication failure above the form. The typed
// email is kept so the user can retry.
func (m *Model) SetError(text string) tea.Cmd {
	m.errText = text
	m.fb.password = ""
	m.form = m.buildForm()
	return m.form.Init()
}

func (m *Model) buildForm() *huh.Form {
	var fields []huh.Field
	if m.registerMode {
		fields = append(fields, huh.NewInput().
			Title("Full name").
			Value(&m.fb.name))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Email").
			Value(&m.fb.email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&m.fb.password),
	)
	return huh.NewForm(huh.NewGroup(fields...))
}

// Update handles messages for the login view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+r" {
		// Toggle between sign in and sign up.
		m.registerMode = !m.registerMode
		m.errText = ""
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		fb := *m.fb
		if m.registerMode {
			return m, func() tea.Msg {
				return RegisterSubmittedMsg{
					Name:     fb.name,
					Email:    fb.email,
					Password: fb.password,
				}
			}
		}
		return m, func() tea.Msg {
			return LoginSubmittedMsg{
				Email:    fb.email,
				Password: fb.password,
			}
		}
	}

	return m, cmd
}

// View renders the login view.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorPurple).
		MarginBottom(1)

	title := "Sign in to Taskify"
	hint := "ctrl+r to create an account instead"
	if m.registerMode {
		title = "Create your Taskify account"
		hint = "ctrl+r to sign in instead"
	}

	parts := []string{titleStyle.Render(title)}
	if m.errText != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.errText))
	}
	if m.form != nil {
		parts = append(parts, m.form.View())
	}
	parts = append(parts, theme.HelpStyle.Render(hint))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.PanelStyle.Render(content))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
