package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/notify"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/theme"
)

// Layout manages the terminal layout dimensions: a one-line header with
// the unread badge, the content area, and a one-line status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with the application title, an
// unread-notification badge (when unread > 0), and the user's name on
// the right edge. The unread count arrives uncapped; the cap is applied
// here, at render time.
func (l Layout) RenderHeader(title string, unread int, userName string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	badgeRendered := ""
	if unread > 0 {
		badgeRendered = theme.BadgeStyle.Render(formatBadge(unread))
	}

	userRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(userName)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(badgeRendered) -
		lipgloss.Width(userRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		badgeRendered,
		filler,
		userRendered,
	)
}

// formatBadge renders the badge text. Counts up to the cap show as-is;
// anything beyond shows the capped value with a "+", so exactly three
// unread renders "3", not "3+".
func formatBadge(unread int) string {
	if unread > notify.BadgeCap {
		return strconv.Itoa(notify.BadgeCap) + "+"
	}
	return strconv.Itoa(unread)
}

// RenderStatusBar renders the bottom status bar with keyboard hints or a
// transient error notice.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
