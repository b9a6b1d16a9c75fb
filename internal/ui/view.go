package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-popup-input/internal/window"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const footerText = "enter/esc close"

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // already styled; skip style wrapping
}

// fieldPadding is the horizontal padding of the Field style.
const fieldPadding = 2

// resizeField keeps the text input scrolling inside the visible width.
func (m *Model) resizeField() {
	if m.width <= 0 {
		m.input.Width = 0
		return
	}
	w := m.width - fieldPadding - ansi.StringWidth(m.input.Prompt) - 1
	if w < 1 {
		w = 1
	}
	m.input.Width = w
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.closing {
		return ""
	}
	lines := make([]styledLine, 0, 8)
	if m.spec.Decorations && m.spec.TitleBar == window.TitleBarOverlay {
		// the overlay title bar covers the first row of content
		lines = append(lines, styledLine{text: m.spec.Title, style: styles.Title})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.renderField(), raw: true})
	lines = append(lines, styledLine{})
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	} else {
		lines = append(lines, styledLine{text: m.statusText(), style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{text: footerText, style: styles.Help})
	}
	lines = limitHeight(lines, m.height)
	return renderLines(lines, m.width)
}

func (m *Model) statusText() string {
	switch {
	case m.input.Focused():
		return ""
	case m.windowFocused:
		return "(field not focused)"
	default:
		return "(window not focused)"
	}
}

// renderField draws the input across the full width on the field background.
func (m *Model) renderField() string {
	view := m.input.View()
	style := styles.Field
	if !m.input.Focused() && styles.FieldBlurred != nil {
		style = styles.FieldBlurred
	}
	if m.width > fieldPadding {
		inner := m.width - fieldPadding
		if gap := inner - ansi.StringWidth(view); gap > 0 {
			view += strings.Repeat(" ", gap)
		}
	}
	if style == nil {
		return view
	}
	return style.Render(view)
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[:height]
}

func renderLines(lines []styledLine, width int) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		text := line.text
		if width > 0 {
			if line.raw {
				text = ansi.Truncate(text, width, "")
			} else {
				text = truncate.StringWithTail(text, uint(width), "…")
			}
		}
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out = append(out, text)
	}
	return strings.Join(out, "\n")
}
