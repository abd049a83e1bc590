package notify

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshedMsg is a tea.Msg sent after each background refresh of the
// notification list.
type RefreshedMsg struct {
	Unread int
	Err    error
}

// fetchTimeout bounds a single background refresh.
const fetchTimeout = 30 * time.Second

// Poller refreshes the notification center on an interval, independent
// of the task views. It runs one goroutine and reports results to the
// Bubble Tea runtime through a non-blocking channel.
type Poller struct {
	center   *Center
	interval time.Duration

	resultCh  chan RefreshedMsg
	triggerCh chan struct{}
	stopCh    chan struct{}

	mu      sync.Mutex
	running bool
}

// NewPoller creates a Poller refreshing the given center every interval.
func NewPoller(center *Center, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Poller{
		center:    center,
		interval:  interval,
		resultCh:  make(chan RefreshedMsg, 16),
		triggerCh: make(chan struct{}, 16),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the polling goroutine and returns a tea.Cmd that waits
// for the first result. Calling Start twice is a no-op.
func (p *Poller) Start() tea.Cmd {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = true
	p.mu.Unlock()

	go p.loop()
	return p.waitForResult()
}

// Stop halts the polling goroutine.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	close(p.stopCh)
	p.running = false
}

// Refresh triggers an immediate poll without waiting for the ticker.
func (p *Poller) Refresh() {
	select {
	case p.triggerCh <- struct{}{}:
	default:
	}
}

// WaitForNextResult returns a tea.Cmd that waits for the next refresh
// result. Call it after processing a RefreshedMsg to keep listening.
func (p *Poller) WaitForNextResult() tea.Cmd {
	return p.waitForResult()
}

func (p *Poller) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Initial fetch immediately.
	p.refreshOnce()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.refreshOnce()
		case <-p.triggerCh:
			p.refreshOnce()
		}
	}
}

func (p *Poller) refreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	err := p.center.LoadAll(ctx)
	p.sendResult(RefreshedMsg{
		Unread: p.center.UnreadCount(),
		Err:    err,
	})
}

// sendResult delivers a result without blocking the poller.
func (p *Poller) sendResult(msg RefreshedMsg) {
	select {
	case p.resultCh <- msg:
	default:
	}
}

func (p *Poller) waitForResult() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-p.resultCh
		if !ok {
			return nil
		}
		return result
	}
}
