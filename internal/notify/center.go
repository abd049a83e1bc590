// Package notify maintains the client's notification list and unread
// badge, and polls the server for updates in the background.
package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

// BadgeCap bounds the number shown on the unread badge. The cap is a
// rendering rule applied by the header, not data loss: the unread count
// itself is tracked uncapped.
const BadgeCap = 3

// Center holds the cached notification list. Notifications move one way:
// unread to read (idempotent), and either state to deleted (terminal).
type Center struct {
	client *api.Client

	mu            sync.Mutex
	notifications []model.Notification
}

// NewCenter creates a Center bound to the given API client.
func NewCenter(client *api.Client) *Center {
	return &Center{client: client}
}

// LoadAll fetches the full notification list, replacing the cached copy.
// On failure the previous list is kept.
func (c *Center) LoadAll(ctx context.Context) error {
	notifications, err := c.client.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("loading notifications: %w", err)
	}

	c.mu.Lock()
	c.notifications = notifications
	c.mu.Unlock()
	return nil
}

// Notifications returns a copy of the cached list.
func (c *Center) Notifications() []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// UnreadCount returns the number of unread notifications, uncapped.
func (c *Center) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, n := range c.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead marks a notification read. This is the one optimistic
// mutation in the client: the local flag flips immediately and the
// server call follows, because a lost mark-read has no destructive
// consequence (worst case the badge briefly undercounts). Marking an
// already-read or unknown notification is a no-op success, and a server
// failure is deliberately not surfaced.
func (c *Center) MarkAsRead(ctx context.Context, id string) error {
	c.mu.Lock()
	index := -1
	for i, n := range c.notifications {
		if n.ID == id {
			index = i
			break
		}
	}
	if index < 0 || c.notifications[index].Read {
		c.mu.Unlock()
		return nil
	}
	c.notifications[index].Read = true
	c.mu.Unlock()

	_ = c.client.MarkNotificationRead(ctx, id)
	return nil
}

// Remove deletes a notification on the server first, then locally. There
// is no optimistic removal: a notification that wrongly disappears is a
// worse experience than one that lingers until retry, so on failure the
// item stays and the error is returned.
func (c *Center) Remove(ctx context.Context, id string) error {
	if err := c.client.DeleteNotification(ctx, id); err != nil {
		return fmt.Errorf("deleting notification %s: %w", id, err)
	}

	c.mu.Lock()
	for i, n := range c.notifications {
		if n.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	return nil
}
