package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

func TestCreateTaskRejectsBlankTitleLocally(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		json.NewEncoder(w).Encode(model.Task{})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, 0)
	mutator := NewMutator(client, New(client))

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := mutator.CreateTask(context.Background(), api.TaskCreate{Title: title})
		if !errors.Is(err, ErrTitleRequired) {
			t.Errorf("CreateTask(title=%q) error = %v, want ErrTitleRequired", title, err)
		}
	}

	if got := atomic.LoadInt32(&requests); got != 0 {
		t.Errorf("server received %d requests, want 0", got)
	}
}

func TestCreateTaskNormalizesDueDateAndRefetches(t *testing.T) {
	var gotDueDate string
	var listCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			var input api.TaskCreate
			json.NewDecoder(r.Body).Decode(&input)
			gotDueDate = input.DueDate
			json.NewEncoder(w).Encode(model.Task{ID: "t1", Title: input.Title})
		default:
			atomic.AddInt32(&listCalls, 1)
			json.NewEncoder(w).Encode([]model.Task{{ID: "t1"}})
		}
	}))
	defer server.Close()

	client := api.NewClient(server.URL, 0)
	store := New(client)
	defer store.Close()
	mutator := NewMutator(client, store)

	task, err := mutator.CreateTask(context.Background(), api.TaskCreate{
		Title:   "quarterly review",
		DueDate: "2025-03-15",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if task.ID != "t1" {
		t.Errorf("task ID = %q, want t1", task.ID)
	}
	if gotDueDate != "2025-03-15T00:00:00Z" {
		t.Errorf("due_date sent = %q, want 2025-03-15T00:00:00Z", gotDueDate)
	}

	// The create must trigger a list refetch.
	deadline := time.After(5 * time.Second)
	for atomic.LoadInt32(&listCalls) == 0 {
		select {
		case <-deadline:
			t.Fatal("no refetch observed after create")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestNormalizeDueDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2025-03-15", "2025-03-15T00:00:00Z"},
		{"2025-03-15T10:30:00Z", "2025-03-15T10:30:00Z"},
		{"2025-03-15T10:30:00+02:00", "2025-03-15T10:30:00+02:00"},
		{"not a date", "not a date"},
	}

	for _, tt := range tests {
		if got := NormalizeDueDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDueDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeleteTaskFailureLeavesListAlone(t *testing.T) {
	var listCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
		default:
			atomic.AddInt32(&listCalls, 1)
			json.NewEncoder(w).Encode([]model.Task{{ID: "t1"}})
		}
	}))
	defer server.Close()

	client := api.NewClient(server.URL, 0)
	store := New(client)
	defer store.Close()
	mutator := NewMutator(client, store)

	if err := mutator.DeleteTask(context.Background(), "t1"); err == nil {
		t.Fatal("DeleteTask() error = nil, want server failure")
	}

	// A failed delete must not refetch; the task stays listed as-is.
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt32(&listCalls); got != 0 {
		t.Errorf("list refetched %d times after failed delete, want 0", got)
	}
}

func TestCreateCategoryDefaultsColor(t *testing.T) {
	var gotColor string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var input api.CategoryCreate
			json.NewDecoder(r.Body).Decode(&input)
			gotColor = input.Color
			json.NewEncoder(w).Encode(model.Category{ID: "c1", Name: input.Name, Color: input.Color})
			return
		}
		json.NewEncoder(w).Encode([]model.Category{{ID: "c1"}})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, 0)
	store := New(client)
	defer store.Close()
	mutator := NewMutator(client, store)

	if _, err := mutator.CreateCategory(context.Background(), api.CategoryCreate{Name: "Work"}); err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	if gotColor != model.DefaultCategoryColor {
		t.Errorf("color sent = %q, want default %q", gotColor, model.DefaultCategoryColor)
	}

	_, err := mutator.CreateCategory(context.Background(), api.CategoryCreate{Name: "  "})
	if !errors.Is(err, ErrCategoryNameRequired) {
		t.Errorf("CreateCategory(blank) error = %v, want ErrCategoryNameRequired", err)
	}
}

func TestSetStatusSendsSingleField(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(model.Task{ID: "t1", Status: model.StatusCompleted})
			return
		}
		json.NewEncoder(w).Encode([]model.Task{})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, 0)
	store := New(client)
	defer store.Close()
	mutator := NewMutator(client, store)

	task, err := mutator.SetStatus(context.Background(), "t1", model.StatusCompleted)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if task.Status != model.StatusCompleted {
		t.Errorf("status = %q, want completed", task.Status)
	}
	if len(gotBody) != 1 || gotBody["status"] != model.StatusCompleted {
		t.Errorf("body = %v, want only status=completed", gotBody)
	}
}
