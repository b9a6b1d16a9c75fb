package ui

import (
	"testing"

	"github.com/atomicstack/tmux-popup-input/internal/session"
	"github.com/atomicstack/tmux-popup-input/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (*Model, *session.Controller) {
	t.Helper()
	ctrl := session.New()
	m := NewModel(ctrl, Options{Spec: window.Default()})
	return m, ctrl
}

func mustSnapshot(t *testing.T, ctrl *session.Controller) session.State {
	t.Helper()
	st, err := ctrl.Snapshot()
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	return st
}

func TestNewModelSeedsFieldFromSession(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.input.Value(); got != session.DefaultText {
		t.Fatalf("expected field value %q, got %q", session.DefaultText, got)
	}
	if m.input.Focused() {
		t.Fatalf("expected field to start unfocused until the window reports focus")
	}
}

func TestInitGrabsFocusOnFirstFrame(t *testing.T) {
	m, ctrl := newTestModel(t)
	h := NewHarness(m)
	h.Init()
	if !h.Model().input.Focused() {
		t.Fatalf("expected field focused after initial focus report")
	}
	st := mustSnapshot(t, ctrl)
	if st.PendingFocusRequest || st.FocusJustGained {
		t.Fatalf("expected focused-idle after first frame, got %#v", st)
	}
}

func TestInitWithoutFocusOnCreate(t *testing.T) {
	spec := window.Default()
	spec.Focused = false
	m := NewModel(session.New(), Options{Spec: spec})
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("expected no init command when the window is created unfocused")
	}
}

func TestUpdateIgnoresMessagesAfterClose(t *testing.T) {
	m, _ := newTestModel(t)
	h := NewHarness(m)
	h.Init()
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.Quit() {
		t.Fatalf("expected quit after close request")
	}
	h.Type("more")
	text, err := h.Model().Result()
	if err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if text != session.DefaultText {
		t.Fatalf("expected %q, got %q", session.DefaultText, text)
	}
}

func TestHandlerForUnknownMessage(t *testing.T) {
	m, _ := newTestModel(t)
	type unknownMsg struct{}
	if handler := m.handlerFor(unknownMsg{}); handler != nil {
		t.Fatalf("expected no handler for unknown message")
	}
	if handler := m.handlerFor(&FocusRefreshMsg{}); handler == nil {
		t.Fatalf("expected pointer messages to resolve to their element handler")
	}
}

func TestWindowSizeResizesField(t *testing.T) {
	m, _ := newTestModel(t)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 45, Height: 12})
	if h.Model().width != 45 || h.Model().height != 12 {
		t.Fatalf("expected 45x12, got %dx%d", h.Model().width, h.Model().height)
	}
	if got := h.Model().input.Width; got != 45-fieldPadding-2-1 {
		t.Fatalf("unexpected field width %d", got)
	}
}

func TestFixedSizeIgnoresWindowSize(t *testing.T) {
	m := NewModel(session.New(), Options{Spec: window.Default(), Width: 30, Height: 8})
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 40})
	if h.Model().width != 30 || h.Model().height != 8 {
		t.Fatalf("expected fixed 30x8, got %dx%d", h.Model().width, h.Model().height)
	}
}
