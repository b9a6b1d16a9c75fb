package session

import "github.com/atomicstack/tmux-popup-input/internal/logging/events"

// FocusHandle translates window focus transitions into the two focus flags.
type FocusHandle struct {
	s *Session
}

// FocusChanged records a focus transition of the popup window.
//
// Gaining focus while armed disarms and posts exactly one focus force.
// Losing focus always re-arms and drops an edge no frame has taken yet.
// Gaining focus while disarmed changes nothing.
func (h FocusHandle) FocusChanged(focused bool) error {
	var (
		phase  Phase
		posted bool
	)
	err := h.s.with("focus", func() error {
		if h.s.closed {
			return ErrClosed
		}
		switch {
		case focused && h.s.pending:
			h.s.pending = false
			h.s.gained.Post()
			posted = true
		case !focused:
			h.s.pending = true
			h.s.gained.Drop()
		}
		phase = h.s.snapshotLocked().Phase()
		return nil
	})
	if err != nil {
		events.Popup.Error("focus", err)
		return err
	}
	if focused {
		events.Popup.Focus(posted, phase.String())
	} else {
		events.Popup.Blur(phase.String())
	}
	return nil
}

// RenderHandle gives the per-frame callback access to the text and the
// pending focus force.
type RenderHandle struct {
	s *Session
}

// Frame runs one render pass. draw receives a pointer to the session text for
// in-place editing and whether the field must be force-focused during this
// frame. Taking the focus edge and running draw happen in one critical
// section, so a frame either sees a posted edge and consumes it or sees none.
func (h RenderHandle) Frame(draw func(text *string, focus bool)) error {
	var forced bool
	err := h.s.with("frame", func() error {
		if h.s.closed {
			return ErrClosed
		}
		forced = h.s.gained.Take()
		if draw != nil {
			draw(&h.s.text, forced)
		}
		return nil
	})
	if err != nil {
		events.Popup.Error("frame", err)
		return err
	}
	if forced {
		events.Popup.FocusForced()
	}
	return nil
}

// Text returns the current text.
func (h RenderHandle) Text() (string, error) {
	var text string
	err := h.s.with("text", func() error {
		text = h.s.text
		return nil
	})
	return text, err
}

// CloseHandle reads the final text when the popup window closes.
type CloseHandle struct {
	s *Session
}

// Close returns the text and ends the session. It never modifies the text or
// the focus flags. Only the first call succeeds; later calls return ErrClosed.
func (h CloseHandle) Close() (string, error) {
	var text string
	err := h.s.with("close", func() error {
		if h.s.closed {
			return ErrClosed
		}
		h.s.closed = true
		text = h.s.text
		return nil
	})
	if err != nil {
		events.Popup.Error("close", err)
		return "", err
	}
	events.Popup.Close(len(text))
	return text, nil
}
