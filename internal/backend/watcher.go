package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-input/internal/logging/events"
	"github.com/atomicstack/tmux-popup-input/internal/tmux"
)

// Event conveys an owner focus transition or a failed poll.
type Event struct {
	Focused bool
	Err     error
}

// DefaultInterval is used when NewWatcher receives a non-positive interval.
const DefaultInterval = 250 * time.Millisecond

var clientFocused = tmux.ClientFocused

// Watcher polls the owner tmux client's focus state at a fixed interval and
// publishes transitions.
type Watcher struct {
	socketPath string
	client     string
	interval   time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls client every interval.
func NewWatcher(socketPath, client string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		socketPath: socketPath,
		client:     client,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan Event, 16),
	}

	events.Watcher.Start(client, interval.Milliseconds())
	w.startFocusPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of focus events. It is closed once the watcher
// has stopped.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startFocusPoller() {
	throttle := newThrottle(w.interval / 2)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) (bool, error) {
		if err := throttle.wait(ctx); err != nil {
			return false, err
		}
		return clientFocused(w.socketPath, w.client)
	})
}

func (w *Watcher) poll(fetch func(context.Context) (bool, error)) {
	defer w.wg.Done()

	var (
		known bool
		last  bool
	)
	emit := func() bool {
		focused, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		if err != nil {
			events.Watcher.Error(err)
		} else if known && focused == last {
			return true
		} else {
			known = true
			last = focused
			events.Watcher.Transition(focused)
		}
		evt := Event{Focused: focused, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
