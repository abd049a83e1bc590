package app

import (
	"testing"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

func TestNextStatusCycle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{model.StatusTodo, model.StatusInProgress},
		{model.StatusInProgress, model.StatusCompleted},
		{model.StatusCompleted, model.StatusTodo},
		{"unknown", model.StatusTodo},
	}

	for _, tt := range tests {
		if got := nextStatus(tt.in); got != tt.want {
			t.Errorf("nextStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCycleStatusFilter(t *testing.T) {
	f := model.TaskFilter{}

	f = cycleStatusFilter(f)
	if f.Status == nil || *f.Status != model.StatusTodo {
		t.Fatalf("first cycle = %v, want todo", f.Status)
	}

	f = cycleStatusFilter(f)
	if f.Status == nil || *f.Status != model.StatusInProgress {
		t.Fatalf("second cycle = %v, want in_progress", f.Status)
	}

	f = cycleStatusFilter(f)
	if f.Status == nil || *f.Status != model.StatusCompleted {
		t.Fatalf("third cycle = %v, want completed", f.Status)
	}

	f = cycleStatusFilter(f)
	if f.Status != nil {
		t.Fatalf("fourth cycle = %v, want nil (filter off)", *f.Status)
	}
}

func TestCycleCategoryFilter(t *testing.T) {
	categories := []model.Category{
		{ID: "c1", Name: "Work"},
		{ID: "c2", Name: "Home"},
	}

	f := cycleCategoryFilter(model.TaskFilter{}, categories)
	if f.CategoryID == nil || *f.CategoryID != "c1" {
		t.Fatalf("first cycle = %v, want c1", f.CategoryID)
	}

	f = cycleCategoryFilter(f, categories)
	if f.CategoryID == nil || *f.CategoryID != "c2" {
		t.Fatalf("second cycle = %v, want c2", f.CategoryID)
	}

	f = cycleCategoryFilter(f, categories)
	if f.CategoryID != nil {
		t.Fatalf("third cycle = %v, want nil", *f.CategoryID)
	}

	// No categories: the filter stays off.
	f = cycleCategoryFilter(model.TaskFilter{}, nil)
	if f.CategoryID != nil {
		t.Error("cycle with no categories set a filter")
	}

	// A stale id (category deleted) restarts the cycle.
	stale := "gone"
	f = cycleCategoryFilter(model.TaskFilter{CategoryID: &stale}, categories)
	if f.CategoryID == nil || *f.CategoryID != "c1" {
		t.Errorf("cycle from stale id = %v, want c1", f.CategoryID)
	}
}

func TestCyclePriorityFilterOrder(t *testing.T) {
	f := model.TaskFilter{}
	var seen []string
	for i := 0; i < len(model.Priorities); i++ {
		f = cyclePriorityFilter(f)
		if f.Priority == nil {
			t.Fatalf("cycle %d = nil, want a priority", i)
		}
		seen = append(seen, *f.Priority)
	}

	for i, p := range model.Priorities {
		if seen[i] != p {
			t.Errorf("cycle order[%d] = %q, want %q", i, seen[i], p)
		}
	}

	f = cyclePriorityFilter(f)
	if f.Priority != nil {
		t.Error("cycle past last priority did not clear the filter")
	}
}
