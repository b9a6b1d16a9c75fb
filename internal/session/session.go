// Package session holds the state shared between the popup's window-event
// callbacks and its per-frame render callback.
//
// A Controller owns one Session and hands out three capability handles:
//   - FocusHandle, the write-only side driven by window focus transitions;
//   - RenderHandle, the read-write side driven once per UI frame;
//   - CloseHandle, the read-only side that collects the final text.
//
// Every handle operation is a single critical section on the session mutex,
// so focus events, frames and the close request may arrive from different
// goroutines without further coordination.
package session

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultText is the value a freshly opened popup starts with.
const DefaultText = "default value"

var (
	// ErrPoisoned reports that an earlier callback panicked while holding the
	// session lock. The session state can no longer be trusted.
	ErrPoisoned = errors.New("popup session poisoned")
	// ErrClosed reports an operation on a session whose popup already closed.
	ErrClosed = errors.New("popup session closed")
)

// Phase names the reachable combinations of the two focus flags.
type Phase int

const (
	// PhaseBlurredArmed: pending=true, gained=false.
	PhaseBlurredArmed Phase = iota
	// PhaseFocusedConsuming: pending=false, gained=true. Collapses to
	// PhaseFocusedIdle on the next frame.
	PhaseFocusedConsuming
	// PhaseFocusedIdle: pending=false, gained=false.
	PhaseFocusedIdle
)

func (p Phase) String() string {
	switch p {
	case PhaseBlurredArmed:
		return "blurred-armed"
	case PhaseFocusedConsuming:
		return "focused-consuming"
	case PhaseFocusedIdle:
		return "focused-idle"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is a point-in-time copy of the session fields.
type State struct {
	Text                string
	PendingFocusRequest bool
	FocusJustGained     bool
}

// Phase classifies the focus flags of the snapshot.
func (s State) Phase() Phase {
	switch {
	case s.FocusJustGained:
		return PhaseFocusedConsuming
	case s.PendingFocusRequest:
		return PhaseBlurredArmed
	default:
		return PhaseFocusedIdle
	}
}

// Session is the popup's shared state. Use a Controller to obtain handles.
type Session struct {
	mu       sync.Mutex
	text     string
	pending  bool
	gained   Mailbox
	closed   bool
	poisoned bool
}

func newSession(text string) *Session {
	return &Session{text: text, pending: true}
}

// with runs fn while holding the lock. A panic inside fn poisons the session
// and is returned as ErrPoisoned instead of unwinding further.
func (s *Session) with(op string, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.poisoned {
		return fmt.Errorf("%s: %w", op, ErrPoisoned)
	}
	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			err = fmt.Errorf("%s: %w (panic: %v)", op, ErrPoisoned, r)
		}
	}()
	if ferr := fn(); ferr != nil {
		return fmt.Errorf("%s: %w", op, ferr)
	}
	return nil
}

func (s *Session) snapshotLocked() State {
	return State{
		Text:                s.text,
		PendingFocusRequest: s.pending,
		FocusJustGained:     s.gained.Peek(),
	}
}

// Controller owns a Session for the lifetime of one popup window.
type Controller struct {
	s *Session
}

// New creates a controller around a session seeded with DefaultText.
func New() *Controller {
	return NewWithText(DefaultText)
}

// NewWithText creates a controller around a session seeded with text.
func NewWithText(text string) *Controller {
	return &Controller{s: newSession(text)}
}

// Focus returns the handle the windowing layer drives on focus transitions.
func (c *Controller) Focus() FocusHandle {
	return FocusHandle{s: c.s}
}

// Render returns the handle the UI layer drives once per frame.
func (c *Controller) Render() RenderHandle {
	return RenderHandle{s: c.s}
}

// Closer returns the handle used when the popup window is asked to close.
func (c *Controller) Closer() CloseHandle {
	return CloseHandle{s: c.s}
}

// Snapshot returns a copy of the session state. It keeps working after the
// session closed so the final values stay observable.
func (c *Controller) Snapshot() (State, error) {
	var st State
	err := c.s.with("snapshot", func() error {
		st = c.s.snapshotLocked()
		return nil
	})
	return st, err
}

// Closed reports whether the close handler already ran.
func (c *Controller) Closed() bool {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.closed
}
