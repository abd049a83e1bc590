package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/keys"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/notify"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/session"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/taskstore"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui/categoryform"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui/dashboard"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui/login"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui/notifications"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui/taskform"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/ui/tasklist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewDashboard
	ViewTasks
	ViewNotifications
	ViewTaskCreate
	ViewTaskEdit
	ViewCategoryCreate
)

// Model is the root Bubble Tea model that manages view routing, layout,
// the session, and the store/mutator/notification-center wiring.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *keys.KeyMap

	client  *api.Client
	session *session.Session
	cfg     *model.AppConfig

	store   *taskstore.Store
	mutator *taskstore.Mutator
	center  *notify.Center
	poller  *notify.Poller

	subID int
	subCh <-chan taskstore.Snapshot

	loginView     login.Model
	taskList      tasklist.Model
	taskForm      taskform.Model
	categoryForm  categoryform.Model
	dashboardView dashboard.Model
	notifView     notifications.Model

	ready     bool
	badge     int
	errNotice string

	// pendingDelete holds the task awaiting destructive-action
	// confirmation, if any.
	pendingDelete *model.Task
}

// New creates the root application model. The session must already be
// constructed (and possibly resumed) by the caller.
func New(client *api.Client, sess *session.Session, cfg *model.AppConfig) Model {
	k := keys.DefaultKeyMap()

	m := Model{
		currentView:   ViewLogin,
		keys:          k,
		client:        client,
		session:       sess,
		cfg:           cfg,
		loginView:     login.New(80, 24),
		taskList:      tasklist.New(k, 80, 24),
		taskForm:      taskform.New(80, 24),
		categoryForm:  categoryform.New(80, 24),
		dashboardView: dashboard.New(80, 24),
		notifView:     notifications.New(k, 80, 24),
	}
	m.buildSessionState()

	if sess.IsAuthenticated() {
		m.currentView = ViewDashboard
	}
	return m
}

// buildSessionState constructs the per-session store, mutator, and
// notification center. Called at startup and again after logout so a
// new login starts from an empty cache.
func (m *Model) buildSessionState() {
	m.store = taskstore.New(m.client)
	m.mutator = taskstore.NewMutator(m.client, m.store)
	m.center = notify.NewCenter(m.client)
	m.poller = notify.NewPoller(
		m.center,
		time.Duration(m.cfg.NotificationPollSec)*time.Second,
	)
	m.subID, m.subCh = m.store.Subscribe()
	m.badge = 0
}

// Init starts the session views and, when already authenticated, the
// background machinery.
func (m Model) Init() tea.Cmd {
	if m.session.IsAuthenticated() {
		return m.startSession()
	}
	return m.loginView.Init()
}

// startSession kicks off everything a logged-in view needs: the
// category load, the first task fetch, the notification poller, and the
// snapshot subscription.
func (m Model) startSession() tea.Cmd {
	m.store.Refetch()
	return tea.Batch(
		m.loadCategories(),
		m.waitForSnapshot(),
		m.poller.Start(),
		m.fetchAnalytics(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.loginView.SetSize(contentWidth, contentHeight)
		m.taskList.SetSize(contentWidth, contentHeight)
		m.taskForm.SetSize(contentWidth, contentHeight)
		m.categoryForm.SetSize(contentWidth, contentHeight)
		m.dashboardView.SetSize(contentWidth, contentHeight)
		m.notifView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can lay out.
		return m.updateActiveView(msg)

	case storeSnapshotMsg:
		if msg.snapshot.Err != nil {
			m.errNotice = "Failed to load tasks: " + msg.snapshot.Err.Error()
		} else if !msg.snapshot.Loading {
			m.errNotice = ""
		}
		m.dashboardView.SetRecentTasks(msg.snapshot.Tasks)
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(tasklist.SnapshotMsg{Snapshot: msg.snapshot})
		return m, tea.Batch(cmd, m.waitForSnapshot())

	case notify.RefreshedMsg:
		if msg.Err == nil {
			m.badge = m.center.UnreadCount()
			m.notifView.SetNotifications(m.center.Notifications())
		}
		return m, m.poller.WaitForNextResult()

	case loginResultMsg:
		if msg.err != nil {
			return m, m.loginView.SetError(loginErrorText(msg.err))
		}
		m.currentView = ViewDashboard
		return m, m.startSession()

	case categoriesLoadedMsg:
		if msg.err != nil {
			m.errNotice = "Failed to load categories: " + msg.err.Error()
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			m.errNotice = mutationNotice(msg.action, msg.err)
			// A rejected submit reopens the form with the typed values
			// intact; only a confirmed write closes it.
			switch m.currentView {
			case ViewTaskCreate, ViewTaskEdit:
				return m, m.taskForm.Restart()
			case ViewCategoryCreate:
				return m, m.categoryForm.Restart()
			}
			return m, nil
		}
		m.errNotice = ""
		switch m.currentView {
		case ViewTaskCreate, ViewTaskEdit, ViewCategoryCreate:
			m.currentView = ViewTasks
		}
		// Mutations move the aggregate numbers too.
		return m, m.fetchAnalytics()

	case notificationActionMsg:
		if msg.err != nil {
			m.notifView.SetError(fmt.Sprintf("Failed to %s: %v", msg.action, msg.err))
		} else {
			m.notifView.ClearError()
			m.badge = m.center.UnreadCount()
			m.notifView.SetNotifications(m.center.Notifications())
		}
		return m, nil

	case dashboard.LoadedMsg:
		var cmd tea.Cmd
		m.dashboardView, cmd = m.dashboardView.Update(msg)
		return m, cmd

	case tasklist.SelectedTaskMsg:
		m.previousView = m.currentView
		m.currentView = ViewTaskEdit
		m.taskForm.SetCategories(m.store.Snapshot().Categories)
		return m, m.taskForm.StartEdit(msg.Task)

	case taskform.CreateSubmittedMsg:
		// The form view stays active until the mutation confirms, so a
		// rejection cannot lose the entered data.
		return m, m.createTask(msg.Input)

	case taskform.EditSubmittedMsg:
		return m, m.updateTask(msg.TaskID, msg.Update)

	case taskform.CancelMsg:
		m.currentView = ViewTasks
		return m, nil

	case categoryform.SubmittedMsg:
		return m, m.createCategory(msg.Input)

	case categoryform.CancelMsg:
		m.currentView = ViewTasks
		return m, nil

	case login.LoginSubmittedMsg:
		return m, m.doLogin(msg.Email, msg.Password)

	case login.RegisterSubmittedMsg:
		return m, m.doRegister(msg.Name, msg.Email, msg.Password)

	case tea.KeyMsg:
		if handled, next, cmd := m.handleGlobalKeys(msg); handled {
			return next, cmd
		}
	}

	// Delegate to active sub-view.
	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that work regardless of (or route
// between) views. Returns handled=false when the active view should see
// the key instead.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	// A pending delete confirmation swallows every key.
	if m.pendingDelete != nil {
		task := *m.pendingDelete
		m.pendingDelete = nil
		if msg.String() == "y" {
			return true, m, m.deleteTask(task.ID)
		}
		m.errNotice = ""
		return true, m, nil
	}

	// Forms and the login view own the keyboard while active.
	switch m.currentView {
	case ViewLogin:
		if msg.String() == "ctrl+c" {
			return true, m, m.quit()
		}
		return false, m, nil
	case ViewTaskCreate, ViewTaskEdit, ViewCategoryCreate:
		switch msg.String() {
		case "ctrl+c":
			return true, m, m.quit()
		case "esc":
			m.currentView = ViewTasks
			return true, m, nil
		}
		return false, m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return true, m, m.quit()

	case "1":
		m.currentView = ViewDashboard
		return true, m, m.fetchAnalytics()

	case "2":
		m.currentView = ViewTasks
		return true, m, nil

	case "3":
		m.currentView = ViewNotifications
		m.notifView.SetNotifications(m.center.Notifications())
		return true, m, nil

	case "r":
		m.store.Refetch()
		m.poller.Refresh()
		return true, m, m.fetchAnalytics()

	case "L":
		model, cmd := m.logout()
		return true, model, cmd
	}

	if m.currentView == ViewTasks {
		return m.handleTaskKeys(msg)
	}
	if m.currentView == ViewNotifications {
		return m.handleNotificationKeys(msg)
	}

	return false, m, nil
}

// handleTaskKeys processes task-view actions.
func (m Model) handleTaskKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.previousView = m.currentView
		m.currentView = ViewTaskCreate
		m.taskForm.SetCategories(m.store.Snapshot().Categories)
		return true, m, m.taskForm.StartCreate()

	case "e":
		task, ok := m.taskList.SelectedTask()
		if !ok {
			return true, m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewTaskEdit
		m.taskForm.SetCategories(m.store.Snapshot().Categories)
		return true, m, m.taskForm.StartEdit(task)

	case "d":
		task, ok := m.taskList.SelectedTask()
		if !ok {
			return true, m, nil
		}
		// Deletion is irreversible; require explicit confirmation.
		m.pendingDelete = &task
		m.errNotice = fmt.Sprintf("Delete %q? y to confirm, any other key to cancel", task.Title)
		return true, m, nil

	case "x":
		task, ok := m.taskList.SelectedTask()
		if !ok {
			return true, m, nil
		}
		return true, m, m.cycleStatus(task)

	case "c":
		m.previousView = m.currentView
		m.currentView = ViewCategoryCreate
		return true, m, m.categoryForm.Start()

	case "s":
		m.store.SetFilter(cycleStatusFilter(m.store.Filter()))
		return true, m, nil

	case "p":
		m.store.SetFilter(cyclePriorityFilter(m.store.Filter()))
		return true, m, nil

	case "f":
		m.store.SetFilter(cycleCategoryFilter(m.store.Filter(), m.store.Snapshot().Categories))
		return true, m, nil

	case "0":
		m.store.SetFilter(model.TaskFilter{})
		return true, m, nil
	}

	return false, m, nil
}

// handleNotificationKeys processes notification-view actions.
func (m Model) handleNotificationKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "m":
		n, ok := m.notifView.Selected()
		if !ok {
			return true, m, nil
		}
		return true, m, m.markRead(n.ID)

	case "d":
		n, ok := m.notifView.Selected()
		if !ok {
			return true, m, nil
		}
		return true, m, m.removeNotification(n.ID)
	}

	return false, m, nil
}

// quit stops the background machinery and exits.
func (m Model) quit() tea.Cmd {
	m.poller.Stop()
	m.store.Close()
	return tea.Quit
}

// logout discards the session and every cached snapshot, then returns
// to the login view with fresh per-session state.
func (m Model) logout() (tea.Model, tea.Cmd) {
	m.poller.Stop()
	m.store.Close()
	m.session.Logout()

	m.buildSessionState()
	m.notifView.SetNotifications(nil)
	m.dashboardView = dashboard.New(m.layout.ContentWidth(), m.layout.ContentHeight())
	m.loginView = login.New(m.layout.ContentWidth(), m.layout.ContentHeight())
	m.errNotice = ""
	m.currentView = ViewLogin
	return m, m.loginView.Init()
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case ViewNotifications:
		m.notifView, cmd = m.notifView.Update(msg)
	case ViewTaskCreate, ViewTaskEdit:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case ViewCategoryCreate:
		m.categoryForm, cmd = m.categoryForm.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.currentView == ViewLogin {
		return m.loginView.View()
	}

	userName := ""
	if user := m.session.CurrentUser(); user != nil {
		userName = user.Name
	}

	header := m.layout.RenderHeader("Taskify", m.badge, userName)
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTasks:
		return m.taskList.View()
	case ViewNotifications:
		return m.notifView.View()
	case ViewTaskCreate, ViewTaskEdit:
		return m.taskForm.View()
	case ViewCategoryCreate:
		return m.categoryForm.View()
	default:
		return ""
	}
}

// keyHints returns the status bar content: a transient error notice
// when one is pending, otherwise per-view keyboard hints.
func (m Model) keyHints() string {
	if m.errNotice != "" {
		return m.errNotice
	}

	switch m.currentView {
	case ViewDashboard:
		return "2 tasks | 3 notifications | r refresh | L logout | q quit"
	case ViewTasks:
		hints := "n new | e edit | d delete | x status | s/p/f filter | 0 clear | c category"
		if summary := m.taskList.FilterSummary(); summary != "" {
			return summary + " | " + hints
		}
		return hints
	case ViewNotifications:
		return "m mark read | d delete | r refresh | 1 dashboard | 2 tasks"
	case ViewTaskCreate, ViewTaskEdit, ViewCategoryCreate:
		return "enter submit | esc cancel"
	default:
		return ""
	}
}

// loginErrorText maps auth failures to a short, retryable message.
func loginErrorText(err error) string {
	if api.IsAuthError(err) {
		return "Invalid credentials"
	}
	return err.Error()
}

// mutationNotice formats a failed write for the status bar. Server
// rejections already carry a useful detail message; transport failures
// get a retry hint instead.
func mutationNotice(action string, err error) string {
	if api.IsAPIError(err) || api.IsAuthError(err) {
		return fmt.Sprintf("Failed to %s: %v", action, err)
	}
	return fmt.Sprintf("Failed to %s (check the connection and retry): %v", action, err)
}
