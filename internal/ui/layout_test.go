package ui

import (
	"strings"
	"testing"
)

func TestFormatBadge(t *testing.T) {
	tests := []struct {
		unread int
		want   string
	}{
		{1, "1"},
		{2, "2"},
		{3, "3"},
		{4, "3+"},
		{17, "3+"},
	}

	for _, tt := range tests {
		if got := formatBadge(tt.unread); got != tt.want {
			t.Errorf("formatBadge(%d) = %q, want %q", tt.unread, got, tt.want)
		}
	}
}

func TestRenderHeaderBadgeVisibility(t *testing.T) {
	layout := NewLayout(80, 24)

	if header := layout.RenderHeader("Taskify", 0, "Ada"); strings.Contains(header, "0") {
		t.Error("header shows a badge with zero unread")
	}
	if header := layout.RenderHeader("Taskify", 3, "Ada"); !strings.Contains(header, "3") {
		t.Error("header missing badge with three unread")
	}
	if header := layout.RenderHeader("Taskify", 3, "Ada"); strings.Contains(header, "3+") {
		t.Error(`exactly three unread rendered as "3+", want "3"`)
	}
}
