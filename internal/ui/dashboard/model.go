package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/analytics"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// LoadedMsg carries a freshly fetched analytics snapshot, or the error
// that prevented it. On error the previous snapshot stays on screen.
type LoadedMsg struct {
	Snapshot *model.AnalyticsSnapshot
	Err      error
}

// maxBarWidth bounds the chart bar length in cells.
const maxBarWidth = 30

// Model is the dashboard view: stats cards, the three analytics charts,
// and the most recent tasks. It renders derived data only; the fetch is
// issued by the app root.
type Model struct {
	snapshot *model.AnalyticsSnapshot
	recent   []model.Task
	errText  string
	width    int
	height   int
}

// New creates a new dashboard model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetRecentTasks sets the tasks shown in the recent list (first five of
// the current store snapshot; the server orders newest first).
func (m *Model) SetRecentTasks(tasks []model.Task) {
	limit := 5
	if len(tasks) < limit {
		limit = len(tasks)
	}
	m.recent = make([]model.Task, limit)
	copy(m.recent, tasks[:limit])
}

// Update handles messages for the dashboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if loaded, ok := msg.(LoadedMsg); ok {
		if loaded.Err != nil {
			m.errText = "Failed to load analytics: " + loaded.Err.Error()
			return m, nil
		}
		m.snapshot = loaded.Snapshot
		m.errText = ""
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.snapshot == nil {
		if m.errText != "" {
			return m.centered(m.errText)
		}
		return m.centered("Loading analytics...")
	}

	sections := []string{
		m.renderStatsCards(),
		m.renderTrend(),
		m.renderPriorities(),
		m.renderCategories(),
		m.renderRecent(),
	}
	if m.errText != "" {
		sections = append([]string{theme.ErrorStyle.Render(m.errText)}, sections...)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderStatsCards renders the four headline numbers plus the
// completion rate.
func (m Model) renderStatsCards() string {
	s := m.snapshot
	cards := []string{
		statCard("Total", fmt.Sprintf("%d", s.TotalTasks), theme.ColorBlue),
		statCard("Completed", fmt.Sprintf("%d", s.CompletedTasks), theme.ColorGreen),
		statCard("In Progress", fmt.Sprintf("%d", s.InProgressTasks), theme.ColorYellow),
		statCard("Productivity", fmt.Sprintf("%d%%", s.ProductivityScore), theme.ColorPurple),
		statCard("Completion", analytics.FormatCompletionRate(s.CompletionRate), theme.ColorOrange),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func statCard(label, value string, color lipgloss.AdaptiveColor) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBorder).
		Padding(0, 2).
		MarginRight(1).
		Render(lipgloss.JoinVertical(
			lipgloss.Center,
			labelStyle.Render(label),
			valueStyle.Render(value),
		))
}

// renderTrend renders the daily-completion trend, one row per day in
// the server's order.
func (m Model) renderTrend() string {
	points := analytics.TrendSeries(*m.snapshot)
	if len(points) == 0 {
		return sectionTitle("Completion Trend") + "\n" +
			theme.HelpStyle.Render("  no data yet")
	}

	max := 0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	var rows []string
	for _, p := range points {
		rows = append(rows, barRow(p.Label, p.Value, max,
			lipgloss.NewStyle().Foreground(theme.ColorGreen)))
	}

	return sectionTitle("Completion Trend") + "\n" +
		strings.Join(rows, "\n")
}

// renderPriorities renders the four fixed priority buckets.
func (m Model) renderPriorities() string {
	points := analytics.PrioritySeries(*m.snapshot)

	max := 0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	var rows []string
	for _, p := range points {
		rows = append(rows, barRow(p.Label, p.Value, max, theme.BarStyle(p.Label)))
	}

	return sectionTitle("Priority Distribution") + "\n" +
		strings.Join(rows, "\n")
}

// renderCategories renders the per-category totals and completions. An
// inconsistent payload is reported instead of rendered.
func (m Model) renderCategories() string {
	perf, err := analytics.CategorySeries(*m.snapshot)
	if err != nil {
		return sectionTitle("Category Performance") + "\n" +
			theme.ErrorStyle.Render("  "+err.Error())
	}
	if len(perf.Labels) == 0 {
		return sectionTitle("Category Performance") + "\n" +
			theme.HelpStyle.Render("  no categories yet")
	}

	var rows []string
	for i, label := range perf.Labels {
		rows = append(rows, fmt.Sprintf(
			"  %-16s %s %d/%d",
			truncate(label, 16),
			progressBar(perf.Completed[i], perf.Total[i]),
			perf.Completed[i],
			perf.Total[i],
		))
	}

	return sectionTitle("Category Performance") + "\n" +
		strings.Join(rows, "\n")
}

// renderRecent renders the five most recent tasks.
func (m Model) renderRecent() string {
	if len(m.recent) == 0 {
		return sectionTitle("Recent Tasks") + "\n" +
			theme.HelpStyle.Render("  No tasks yet. Create your first task!")
	}

	var rows []string
	for _, task := range m.recent {
		marker := "○"
		if task.Completed() {
			marker = "✓"
		}
		rows = append(rows, fmt.Sprintf(
			"  %s %s %s",
			marker,
			truncate(task.Title, 40),
			theme.PriorityStyle(task.Priority).Render(task.Priority),
		))
	}

	return sectionTitle("Recent Tasks") + "\n" + strings.Join(rows, "\n")
}

func sectionTitle(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginTop(1).
		Render(text)
}

// barRow renders one horizontal chart bar with its label and count.
func barRow(label string, value, max int, style lipgloss.Style) string {
	width := 0
	if max > 0 {
		width = value * maxBarWidth / max
	}
	if value > 0 && width == 0 {
		width = 1
	}

	bar := style.Render(strings.Repeat("█", width))

	return fmt.Sprintf("  %-10s %s %d", truncate(label, 10), bar, value)
}

// progressBar renders a completed-of-total bar.
func progressBar(completed, total int) string {
	if total <= 0 {
		return strings.Repeat("░", maxBarWidth)
	}
	filled := completed * maxBarWidth / total
	done := lipgloss.NewStyle().
		Foreground(theme.ColorGreen).
		Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().
		Foreground(theme.ColorSubtle).
		Render(strings.Repeat("░", maxBarWidth-filled))
	return done + rest
}

// truncate shortens s to max runes, not bytes, so multi-byte titles and
// category names never split mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

func (m Model) centered(text string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray).
		Render(text)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
