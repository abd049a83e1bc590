package taskform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// CreateSubmittedMsg is dispatched when the create form completes.
type CreateSubmittedMsg struct {
	Input api.TaskCreate
}

// EditSubmittedMsg is dispatched when the edit form completes. Update
// carries only the fields that differ from the original task.
type EditSubmittedMsg struct {
	TaskID string
	Update api.TaskUpdate
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	status      string
	priority    string
	categoryID  string
	dueDate     string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form       *huh.Form
	fb         *formBindings
	editMode   bool
	original   model.Task
	categories []model.Category
	width      int
	height     int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{priority: model.PriorityMedium, status: model.StatusTodo},
		width:  width,
		height: height,
	}
}

// SetCategories sets the selectable categories.
func (m *Model) SetCategories(categories []model.Category) {
	m.categories = categories
}

// StartCreate initializes the form for creating a new task.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.original = model.Task{}
	m.fb.title = ""
	m.fb.description = ""
	m.fb.status = model.StatusTodo
	m.fb.priority = model.PriorityMedium
	m.fb.categoryID = ""
	m.fb.dueDate = ""
	m.form = m.buildForm(false)
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing task. The user
// edits the full form, but only changed fields are submitted.
func (m *Model) StartEdit(task model.Task) tea.Cmd {
	m.editMode = true
	m.original = task
	m.fb.title = task.Title
	m.fb.description = task.Description
	m.fb.status = task.Status
	m.fb.priority = task.Priority
	m.fb.categoryID = task.CategoryID
	m.fb.dueDate = task.DueDate
	m.form = m.buildForm(true)
	return m.form.Init()
}

// Restart rebuilds the form after a rejected submit, keeping every
// typed value so the user can correct and resubmit instead of retyping.
func (m *Model) Restart() tea.Cmd {
	m.form = m.buildForm(m.editMode)
	return m.form.Init()
}

// buildForm assembles the huh form. The status field only appears in
// edit mode; a new task always starts as todo.
func (m *Model) buildForm(edit bool) *huh.Form {
	categoryOptions := []huh.Option[string]{
		huh.NewOption("(none)", ""),
	}
	for _, c := range m.categories {
		categoryOptions = append(categoryOptions, huh.NewOption(c.Name, c.ID))
	}

	priorityOptions := make([]huh.Option[string], 0, len(model.Priorities))
	for _, p := range model.Priorities {
		priorityOptions = append(priorityOptions, huh.NewOption(p, p))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Value(&m.fb.title),
		huh.NewText().
			Title("Description").
			Lines(3).
			Value(&m.fb.description),
		huh.NewSelect[string]().
			Title("Priority").
			Options(priorityOptions...).
			Value(&m.fb.priority),
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOptions...).
			Value(&m.fb.categoryID),
		huh.NewInput().
			Title("Due date").
			Placeholder("2006-01-02").
			Value(&m.fb.dueDate),
	}

	if edit {
		statusOptions := make([]huh.Option[string], 0, len(model.Statuses))
		for _, s := range model.Statuses {
			statusOptions = append(statusOptions, huh.NewOption(s, s))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Status").
			Options(statusOptions...).
			Value(&m.fb.status))
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// handleSubmit converts the form bindings into the outgoing message.
func (m Model) handleSubmit() tea.Cmd {
	fb := *m.fb

	if !m.editMode {
		return func() tea.Msg {
			return CreateSubmittedMsg{Input: api.TaskCreate{
				Title:       fb.title,
				Description: fb.description,
				Priority:    fb.priority,
				CategoryID:  fb.categoryID,
				DueDate:     fb.dueDate,
			}}
		}
	}

	update := diffTask(m.original, fb)
	taskID := m.original.ID
	return func() tea.Msg {
		return EditSubmittedMsg{TaskID: taskID, Update: update}
	}
}

// diffTask builds a partial update containing only the changed fields.
func diffTask(original model.Task, fb formBindings) api.TaskUpdate {
	var update api.TaskUpdate
	if fb.title != original.Title {
		update.Title = &fb.title
	}
	if fb.description != original.Description {
		update.Description = &fb.description
	}
	if fb.status != original.Status {
		update.Status = &fb.status
	}
	if fb.priority != original.Priority {
		update.Priority = &fb.priority
	}
	if fb.categoryID != original.CategoryID {
		update.CategoryID = &fb.categoryID
	}
	if fb.dueDate != original.DueDate {
		update.DueDate = &fb.dueDate
	}
	return update
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.editMode {
		titleText = "Edit Task"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
