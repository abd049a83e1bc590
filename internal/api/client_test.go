package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

func strPtr(s string) *string { return &s }

func TestListTasksQueryParams(t *testing.T) {
	tests := []struct {
		name      string
		filter    model.TaskFilter
		wantQuery map[string]string
	}{
		{
			name:      "no filter",
			filter:    model.TaskFilter{},
			wantQuery: map[string]string{},
		},
		{
			name:   "status only",
			filter: model.TaskFilter{Status: strPtr("todo")},
			wantQuery: map[string]string{
				"status": "todo",
			},
		},
		{
			name: "all fields",
			filter: model.TaskFilter{
				Status:     strPtr("in_progress"),
				Priority:   strPtr("high"),
				CategoryID: strPtr("cat-1"),
			},
			wantQuery: map[string]string{
				"status":      "in_progress",
				"priority":    "high",
				"category_id": "cat-1",
			},
		},
		{
			name:      "empty string values omitted",
			filter:    model.TaskFilter{Status: strPtr(""), Priority: strPtr("low")},
			wantQuery: map[string]string{"priority": "low"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/tasks" {
					t.Errorf("path = %q, want /api/tasks", r.URL.Path)
				}
				gotQuery = r.URL.Query()
				json.NewEncoder(w).Encode([]model.Task{})
			}))
			defer server.Close()

			client := NewClient(server.URL, 0)
			if _, err := client.ListTasks(context.Background(), tt.filter); err != nil {
				t.Fatalf("ListTasks() error = %v", err)
			}

			if len(gotQuery) != len(tt.wantQuery) {
				t.Fatalf("query = %v, want %v", gotQuery, tt.wantQuery)
			}
			for key, want := range tt.wantQuery {
				if got := gotQuery[key]; len(got) != 1 || got[0] != want {
					t.Errorf("query[%q] = %v, want %q", key, got, want)
				}
			}
		})
	}
}

func TestDoSendsAuthHeader(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(model.User{ID: "u1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	client.SetToken("tok-123")

	if _, err := client.Me(context.Background()); err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestDoDecodesErrorDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Task not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	err := client.DeleteTask(context.Background(), "missing")
	if err == nil {
		t.Fatal("DeleteTask() error = nil, want *APIError")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not an APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "Task not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Task not found")
	}
}

func TestDoUnauthorizedIsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Me(context.Background())
	if err == nil {
		t.Fatal("Me() error = nil, want *AuthError")
	}
	if !IsAuthError(err) {
		t.Errorf("error %v is not an AuthError", err)
	}
}

func TestDoRetriesOn429(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode([]model.Category{{ID: "c1", Name: "Work"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	categories, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if len(categories) != 1 || categories[0].Name != "Work" {
		t.Errorf("categories = %v, want one named Work", categories)
	}
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.ListCategories(context.Background())
	if err == nil {
		t.Fatal("ListCategories() error = nil, want rate limit failure")
	}
}

func TestSetTokenConcurrentWithRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Notification{})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	client.SetToken("initial")

	// A logout can swap the token while poller and store requests are
	// still building headers; both sides must be safe under the race
	// detector.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.ListNotifications(context.Background()); err != nil {
				t.Errorf("ListNotifications() error = %v", err)
			}
		}()
	}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				client.SetToken("")
			} else {
				client.SetToken("rotated")
			}
		}(i)
	}
	wg.Wait()
}

func TestUpdateTaskSendsOnlySetFields(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		json.NewEncoder(w).Encode(model.Task{ID: "t1", Status: "completed"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	status := "completed"
	if _, err := client.UpdateTask(context.Background(), "t1", TaskUpdate{Status: &status}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	if len(gotBody) != 1 {
		t.Errorf("body has %d fields %v, want only status", len(gotBody), gotBody)
	}
	if gotBody["status"] != "completed" {
		t.Errorf("body[status] = %v, want completed", gotBody["status"])
	}
}
