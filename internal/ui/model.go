package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-popup-input/internal/logging"
	"github.com/atomicstack/tmux-popup-input/internal/session"
	"github.com/atomicstack/tmux-popup-input/internal/theme"
	"github.com/atomicstack/tmux-popup-input/internal/window"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldPrompt      = "» "
	fieldPlaceholder = "(type a value)"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the popup model.
type Options struct {
	Spec        window.Spec
	Width       int
	Height      int
	ShowFooter  bool
	CursorBlink bool
}

// Model implements the Bubble Tea model for the popup window.
type Model struct {
	input textinput.Model

	focus  session.FocusHandle
	render session.RenderHandle
	closer session.CloseHandle

	spec          window.Spec
	width         int
	height        int
	fixedWidth    bool
	fixedHeight   bool
	showFooter    bool
	windowFocused bool
	errMsg        string

	closing   bool
	result    string
	resultErr error

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the popup model around ctrl's handles.
func NewModel(ctrl *session.Controller, opts Options) *Model {
	m := &Model{
		focus:      ctrl.Focus(),
		render:     ctrl.Render(),
		closer:     ctrl.Closer(),
		spec:       opts.Spec,
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	in := textinput.New()
	in.Prompt = fieldPrompt
	in.Placeholder = fieldPlaceholder
	if styles.FieldPrompt != nil {
		in.PromptStyle = styles.FieldPrompt.Copy()
	}
	if styles.Field != nil {
		in.TextStyle = styles.Field.Copy().UnsetPadding()
	}
	if styles.FieldPlaceholder != nil {
		in.PlaceholderStyle = styles.FieldPlaceholder.Copy()
	}
	if styles.Cursor != nil {
		in.Cursor.Style = styles.Cursor.Copy()
	}
	if opts.CursorBlink {
		in.Cursor.SetMode(cursor.CursorBlink)
	} else {
		in.Cursor.SetMode(cursor.CursorStatic)
	}
	text, err := m.render.Text()
	if err != nil {
		m.noteError(err)
	}
	in.SetValue(text)
	in.CursorEnd()
	m.input = in
	m.resizeField()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface. A popup created with focus gets
// an initial focus report so the field is grabbed on the first frame.
func (m *Model) Init() tea.Cmd {
	if !m.spec.Focused {
		return nil
	}
	return func() tea.Msg { return tea.FocusMsg{} }
}

// Update responds to Bubble Tea messages and finishes with one render frame.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closing {
		return m, nil
	}
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if cmd := m.updateInput(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if !m.closing {
		if cmd := m.frame(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(FocusRefreshMsg{}):   m.handleFocusRefreshMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// frame is the render pass: it writes the field value back into the session
// and force-focuses the field when a focus gain was posted.
func (m *Model) frame() tea.Cmd {
	var cmd tea.Cmd
	err := m.render.Frame(func(text *string, focus bool) {
		if value := m.input.Value(); value != *text {
			*text = value
		}
		if focus {
			cmd = m.input.Focus()
		}
	})
	if err != nil {
		m.noteError(err)
		return nil
	}
	return cmd
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) noteError(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	m.errMsg = err.Error()
}

// Result returns what the close handler produced. It is empty until the
// popup closed.
func (m *Model) Result() (string, error) {
	return m.result, m.resultErr
}

// Closed reports whether a close request was handled.
func (m *Model) Closed() bool {
	return m.closing
}
