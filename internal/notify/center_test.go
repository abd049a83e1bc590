package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

func unread(id string) model.Notification {
	return model.Notification{ID: id, Type: model.NotificationDueReminder, Title: id}
}

func newCenterWith(t *testing.T, handler http.HandlerFunc, load []model.Notification) (*Center, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	center := NewCenter(api.NewClient(server.URL, 0))
	center.mu.Lock()
	center.notifications = load
	center.mu.Unlock()
	return center, server
}

func TestUnreadCountUncapped(t *testing.T) {
	for _, count := range []int{0, 1, 3, 10} {
		var items []model.Notification
		for i := 0; i < count; i++ {
			items = append(items, unread(string(rune('a'+i))))
		}
		// One read item must never count.
		read := unread("z")
		read.Read = true
		items = append(items, read)

		center := NewCenter(nil)
		center.notifications = items

		if got := center.UnreadCount(); got != count {
			t.Errorf("UnreadCount() with %d unread = %d", count, got)
		}
	}
}

func TestMarkAsReadOptimisticAndIdempotent(t *testing.T) {
	var serverCalls int32
	center, _ := newCenterWith(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&serverCalls, 1)
		w.WriteHeader(http.StatusNoContent)
	}, []model.Notification{unread("n1")})

	if err := center.MarkAsRead(context.Background(), "n1"); err != nil {
		t.Fatalf("MarkAsRead() error = %v", err)
	}
	if got := center.Notifications(); !got[0].Read {
		t.Error("notification not marked read locally")
	}

	// Re-marking and marking an unknown id are local no-ops.
	if err := center.MarkAsRead(context.Background(), "n1"); err != nil {
		t.Fatalf("second MarkAsRead() error = %v", err)
	}
	if err := center.MarkAsRead(context.Background(), "ghost"); err != nil {
		t.Fatalf("MarkAsRead(unknown) error = %v", err)
	}

	if got := atomic.LoadInt32(&serverCalls); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}
}

func TestMarkAsReadSwallowsServerFailure(t *testing.T) {
	center, _ := newCenterWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, []model.Notification{unread("n1")})

	if err := center.MarkAsRead(context.Background(), "n1"); err != nil {
		t.Fatalf("MarkAsRead() error = %v, want nil despite server failure", err)
	}
	if got := center.Notifications(); !got[0].Read {
		t.Error("local read flag rolled back, want it kept")
	}
}

func TestRemoveServerFirst(t *testing.T) {
	center, _ := newCenterWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, []model.Notification{unread("n1"), unread("n2")})

	if err := center.Remove(context.Background(), "n1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got := center.Notifications()
	if len(got) != 1 || got[0].ID != "n2" {
		t.Errorf("notifications = %v, want only n2", got)
	}
}

func TestRemoveFailureKeepsItem(t *testing.T) {
	center, _ := newCenterWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
	}, []model.Notification{unread("n1")})

	if err := center.Remove(context.Background(), "n1"); err == nil {
		t.Fatal("Remove() error = nil, want server failure")
	}

	if got := center.Notifications(); len(got) != 1 {
		t.Errorf("notifications = %v, want item kept on failure", got)
	}
}

func TestLoadAllReplacesOnSuccessKeepsOnFailure(t *testing.T) {
	var fail atomic.Bool
	center, _ := newCenterWith(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]model.Notification{unread("fresh")})
	}, []model.Notification{unread("stale")})

	if err := center.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if got := center.Notifications(); len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("notifications = %v, want replaced with fresh", got)
	}

	fail.Store(true)
	if err := center.LoadAll(context.Background()); err == nil {
		t.Fatal("LoadAll() error = nil, want failure")
	}
	if got := center.Notifications(); len(got) != 1 || got[0].ID != "fresh" {
		t.Errorf("notifications = %v, want previous list kept on failure", got)
	}
}
