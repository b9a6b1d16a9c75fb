package ui

import (
	"github.com/atomicstack/tmux-popup-input/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter", "esc", "ctrl+c":
		return m.requestClose(key.String())
	}
	// an unfocused field does not take text, the same as a GUI text edit
	if !m.input.Focused() {
		return nil
	}
	return m.updateInput(key)
}

// requestClose hands the session text to the close handler and ends the
// program. The session is terminal afterwards, so no frame follows.
func (m *Model) requestClose(key string) tea.Cmd {
	events.Popup.CloseRequested(key)
	m.closing = true
	m.input.Blur()
	text, err := m.closer.Close()
	if err != nil {
		m.noteError(err)
		m.resultErr = err
		return tea.Quit
	}
	m.result = text
	return tea.Quit
}
