package taskform

import (
	"testing"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

func TestRestartKeepsTypedValues(t *testing.T) {
	m := New(80, 24)
	m.StartCreate()

	// Simulate in-progress input, then a rejected submit.
	m.fb.title = ""
	m.fb.description = "notes typed before the rejection"
	m.fb.dueDate = "2025-06-01"

	if cmd := m.Restart(); cmd == nil {
		t.Fatal("Restart() returned nil cmd")
	}

	if m.fb.description != "notes typed before the rejection" {
		t.Errorf("description = %q, want preserved input", m.fb.description)
	}
	if m.fb.dueDate != "2025-06-01" {
		t.Errorf("dueDate = %q, want preserved input", m.fb.dueDate)
	}
	if m.form == nil {
		t.Error("form not rebuilt")
	}
}

func TestRestartKeepsEditMode(t *testing.T) {
	m := New(80, 24)
	m.StartEdit(model.Task{
		ID:     "t1",
		Title:  "original",
		Status: model.StatusTodo,
	})

	m.fb.title = "changed"
	m.Restart()

	if !m.editMode {
		t.Error("editMode lost on Restart")
	}
	if m.fb.title != "changed" {
		t.Errorf("title = %q, want changed", m.fb.title)
	}
	if m.original.ID != "t1" {
		t.Errorf("original task ID = %q, want t1", m.original.ID)
	}
}

func TestStartCreateResetsBindings(t *testing.T) {
	m := New(80, 24)
	m.StartCreate()
	m.fb.title = "leftover"
	m.fb.description = "leftover"

	m.StartCreate()

	if m.fb.title != "" || m.fb.description != "" {
		t.Errorf("bindings = %q/%q, want reset on a fresh create",
			m.fb.title, m.fb.description)
	}
	if m.fb.status != model.StatusTodo || m.fb.priority != model.PriorityMedium {
		t.Errorf("defaults = %q/%q, want todo/medium", m.fb.status, m.fb.priority)
	}
}
