package events

import "github.com/atomicstack/tmux-popup-input/internal/logging"

type PopupTracer struct{}

type WatcherTracer struct{}

var (
	Popup   = PopupTracer{}
	Watcher = WatcherTracer{}
)

func (PopupTracer) Focus(posted bool, phase string) {
	logging.Trace("popup.focus", map[string]interface{}{"posted": posted, "phase": phase})
}

func (PopupTracer) Blur(phase string) {
	logging.Trace("popup.blur", map[string]interface{}{"phase": phase})
}

func (PopupTracer) FocusForced() {
	logging.Trace("popup.focus.forced", nil)
}

func (PopupTracer) CloseRequested(key string) {
	logging.Trace("popup.close.request", map[string]interface{}{"key": key})
}

func (PopupTracer) Close(length int) {
	logging.Trace("popup.close", map[string]interface{}{"length": length})
}

func (PopupTracer) Emit(text string) {
	logging.Trace("popup.emit", map[string]interface{}{"text": text})
}

func (PopupTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("popup.error", map[string]interface{}{"op": op, "error": err.Error()})
}

func (WatcherTracer) Start(client string, intervalMillis int64) {
	logging.Trace("watcher.start", map[string]interface{}{"client": client, "interval_ms": intervalMillis})
}

func (WatcherTracer) Transition(focused bool) {
	logging.Trace("watcher.transition", map[string]interface{}{"focused": focused})
}

func (WatcherTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("watcher.error", map[string]interface{}{"error": err.Error()})
}
