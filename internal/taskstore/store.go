// Package taskstore holds the client's view of the task list: the active
// filter, the latest task and category snapshot from the server, and the
// mutation paths that write back to it.
//
// The store is the single owner of fetch ordering. A filter change
// supersedes any in-flight fetch for display purposes: the result of an
// older fetch is discarded rather than merged, so the visible list always
// corresponds to the most recently requested filter (last-filter-wins,
// not last-response-wins).
package taskstore

import (
	"context"
	"sync"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

// Snapshot is an immutable point-in-time copy of the store's state.
// Subscribers receive a fresh Snapshot after every change; they must not
// mutate its slices.
type Snapshot struct {
	// Tasks is the full task list for the active filter. It is always
	// replaced wholesale from a server response, never merged.
	Tasks []model.Task

	// Categories is the shared category list.
	Categories []model.Category

	// Filter is the filter the Tasks correspond to (or, while a fetch
	// is in flight, the filter last requested).
	Filter model.TaskFilter

	// Loading reports whether a fetch for Filter is still in flight.
	Loading bool

	// Err is the error from the most recent failed fetch, or nil. When
	// set, Tasks still holds the last-known-good list.
	Err error
}

// CategoryName resolves a task's category_id for display. An empty id is
// an uncategorized task and resolves to the empty string; an id that no
// longer matches any category resolves to "Unknown" (the category was
// deleted out from under the task).
func (s Snapshot) CategoryName(categoryID string) string {
	if categoryID == "" {
		return ""
	}
	for _, c := range s.Categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return model.UnknownCategoryName
}

// Category returns the category with the given id, if it still exists.
func (s Snapshot) Category(categoryID string) (model.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == categoryID {
			return c, true
		}
	}
	return model.Category{}, false
}

// subscriberBuffer sizes each subscriber channel. Sends never block: a
// subscriber that falls this far behind misses intermediate snapshots
// and catches up on the next one.
const subscriberBuffer = 16

// Store caches the filtered task list and category list for the current
// session and refetches them from the server on demand.
type Store struct {
	client *api.Client

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	filter     model.TaskFilter
	tasks      []model.Task
	categories []model.Category
	lastErr    error
	loading    bool

	// generation increments on every fetch request; a response is only
	// applied while its generation is still the latest.
	generation     uint64
	cancelInFlight context.CancelFunc

	subscribers map[int]chan Snapshot
	nextSubID   int
	closed      bool
}

// New creates a Store bound to the given API client. Fetches issued by
// the store are abandoned when Close is called.
func New(client *api.Client) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	return &Store{
		client:      client,
		ctx:         ctx,
		cancel:      cancel,
		subscribers: make(map[int]chan Snapshot),
	}
}

// Subscribe registers a new subscriber and returns its id along with the
// channel snapshots are delivered on. The current snapshot is delivered
// immediately. Callers must Unsubscribe when their view is torn down.
func (s *Store) Subscribe() (int, <-chan Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan Snapshot, subscriberBuffer)
	s.subscribers[id] = ch
	ch <- s.snapshotLocked()
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

// Snapshot returns the current state without subscribing.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Filter returns a copy of the active filter.
func (s *Store) Filter() model.TaskFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter replaces the active filter. A refetch is issued only when
// the filter actually changed; setting an identical filter is a no-op.
func (s *Store) SetFilter(f model.TaskFilter) {
	s.mu.Lock()
	if s.closed || s.filter.Equal(f) {
		s.mu.Unlock()
		return
	}
	s.filter = f
	s.mu.Unlock()

	s.Refetch()
}

// Refetch requests the task list for the active filter. The call returns
// immediately; the result (or error) is published to subscribers when it
// arrives. Any fetch still in flight is superseded: its context is
// cancelled and its result, should it still arrive, is discarded.
func (s *Store) Refetch() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.generation++
	generation := s.generation
	filter := s.filter
	s.loading = true

	if s.cancelInFlight != nil {
		s.cancelInFlight()
	}
	fetchCtx, cancel := context.WithCancel(s.ctx)
	s.cancelInFlight = cancel

	s.publishLocked()
	s.mu.Unlock()

	go s.fetch(fetchCtx, generation, filter)
}

// fetch performs one task-list request and applies the result if this
// fetch is still the latest.
func (s *Store) fetch(ctx context.Context, generation uint64, filter model.TaskFilter) {
	tasks, err := s.client.ListTasks(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation || s.closed {
		// A newer fetch was issued while this one was in flight; its
		// filter is what the user wants to see now.
		return
	}

	s.loading = false
	if err != nil {
		// Keep the previous snapshot visible; the error is recoverable
		// by retrying the user action.
		s.lastErr = err
	} else {
		s.tasks = tasks
		s.lastErr = nil
	}

	s.publishLocked()
}

// LoadCategories fetches the category list. It is called once at
// startup, and again after a category is created or deleted. Unlike
// task fetches, category loads are synchronous: callers decide how to
// surface the error.
func (s *Store) LoadCategories(ctx context.Context) error {
	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.categories = categories
	s.publishLocked()
	return nil
}

// Close abandons any in-flight fetch and closes all subscriber channels.
// The store holds no durable state; whatever was cached is gone.
func (s *Store) Close() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

// snapshotLocked builds an immutable snapshot of the current state.
// Caller must hold s.mu.
func (s *Store) snapshotLocked() Snapshot {
	tasks := make([]model.Task, len(s.tasks))
	copy(tasks, s.tasks)
	categories := make([]model.Category, len(s.categories))
	copy(categories, s.categories)

	return Snapshot{
		Tasks:      tasks,
		Categories: categories,
		Filter:     s.filter,
		Loading:    s.loading,
		Err:        s.lastErr,
	}
}

// publishLocked delivers the current snapshot to every subscriber
// without blocking. Caller must hold s.mu.
func (s *Store) publishLocked() {
	snapshot := s.snapshotLocked()
	for _, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Subscriber is behind; it will catch up on the next publish.
		}
	}
}
