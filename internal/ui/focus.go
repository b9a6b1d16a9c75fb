package ui

import (
	"github.com/atomicstack/tmux-popup-input/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// FocusRefreshMsg tells the model that another goroutine already reported a
// focus transition to the session, so only the widget needs to follow.
type FocusRefreshMsg struct {
	Focused bool
}

func (m *Model) handleFocusMsg(msg tea.Msg) tea.Cmd {
	m.windowFocused = true
	if err := m.focus.FocusChanged(true); err != nil {
		m.noteError(err)
	}
	return nil
}

func (m *Model) handleBlurMsg(msg tea.Msg) tea.Cmd {
	m.windowFocused = false
	m.input.Blur()
	if err := m.focus.FocusChanged(false); err != nil {
		m.noteError(err)
	}
	return nil
}

func (m *Model) handleFocusRefreshMsg(msg tea.Msg) tea.Cmd {
	refresh, ok := msg.(FocusRefreshMsg)
	if !ok {
		return nil
	}
	m.windowFocused = refresh.Focused
	if !refresh.Focused {
		m.input.Blur()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.Window.Resize(m.width, m.height)
	m.resizeField()
	return nil
}
