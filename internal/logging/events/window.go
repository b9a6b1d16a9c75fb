package events

import "github.com/atomicstack/tmux-popup-input/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) Owner(client string) {
	logging.Trace("window.owner", map[string]interface{}{"client": client})
}

func (WindowTracer) Open(label string, cols, rows int, command []string) {
	logging.Trace("window.open", map[string]interface{}{
		"label":   label,
		"cols":    cols,
		"rows":    rows,
		"command": command,
	})
}

func (WindowTracer) OpenFailed(label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("window.open.error", map[string]interface{}{"label": label, "error": err.Error()})
}

func (WindowTracer) Resize(width, height int) {
	logging.Trace("window.resize", map[string]interface{}{"width": width, "height": height})
}
