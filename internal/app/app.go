package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atomicstack/tmux-popup-input/internal/backend"
	"github.com/atomicstack/tmux-popup-input/internal/logging"
	"github.com/atomicstack/tmux-popup-input/internal/logging/events"
	"github.com/atomicstack/tmux-popup-input/internal/session"
	"github.com/atomicstack/tmux-popup-input/internal/tmux"
	"github.com/atomicstack/tmux-popup-input/internal/ui"
	"github.com/atomicstack/tmux-popup-input/internal/window"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Client       string
	Width        int
	Height       int
	CellWidth    int
	CellHeight   int
	PollInterval time.Duration
	CursorBlink  bool
	ShowFooter   bool

	// Output receives the emitted line; nil only logs it.
	Output io.Writer `json:"-"`
}

// Spec returns the popup window spec.
func (c Config) Spec() window.Spec {
	return window.Default()
}

// focusSender is the part of *tea.Program the watcher forwarder needs.
type focusSender interface {
	Send(msg tea.Msg)
}

// Run executes the popup UI in the current terminal and returns the text the
// user left in the field when the popup closed.
func Run(ctx context.Context, cfg Config) (string, error) {
	spec := cfg.Spec()
	if err := spec.Validate(); err != nil {
		return "", fmt.Errorf("window spec: %w", err)
	}
	ctrl := session.New()
	model := ui.NewModel(ctrl, ui.Options{
		Spec:        spec,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		CursorBlink: cfg.CursorBlink,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	watcher := startWatcher(cfg)
	if watcher != nil {
		g.Go(func() error {
			forwardFocus(gctx, watcher.Events(), ctrl.Focus(), program)
			return nil
		})
	}
	var final tea.Model
	g.Go(func() error {
		defer func() {
			if watcher != nil {
				watcher.Stop()
			}
		}()
		var err error
		final, err = program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	done, ok := final.(*ui.Model)
	if !ok || !done.Closed() {
		return "", nil
	}
	text, err := done.Result()
	if err != nil {
		return "", err
	}
	Emit(cfg.Output, text)
	return text, nil
}

// Emit publishes the final text as the popup's single observable output.
func Emit(w io.Writer, text string) {
	events.Popup.Emit(text)
	line := FormatResult(text)
	logging.Info(line, map[string]interface{}{"length": len(text)})
	if w != nil {
		fmt.Fprintln(w, line)
	}
}

// Open shows the popup on the owner tmux client, running command inside it.
// The resolved client is appended as --client so the popup's focus watcher
// follows the same terminal.
func Open(cfg Config, command []string) error {
	if len(command) == 0 {
		return errors.New("popup command required")
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	opener := window.Opener{
		SocketPath: socketPath,
		Client:     cfg.Client,
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
	}
	client, err := opener.Owner()
	if err != nil {
		return err
	}
	argv := append(append([]string(nil), command...), "--client", client)
	return opener.OpenOn(cfg.Spec(), client, argv)
}

// FormatResult renders the emitted line.
func FormatResult(text string) string {
	return "Input value: " + text
}

// startWatcher returns nil when focus polling is disabled or no owner client
// can be found; terminal focus reports still drive the session then.
func startWatcher(cfg Config) *backend.Watcher {
	if cfg.PollInterval <= 0 || !tmux.InsideTmux() {
		return nil
	}
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		logging.Error(fmt.Errorf("resolve socket path: %w", err))
		return nil
	}
	client, err := tmux.OwnerClient(socketPath, cfg.Client)
	if err != nil {
		logging.Error(fmt.Errorf("resolve owner client: %w", err))
		return nil
	}
	events.Window.Owner(client)
	return backend.NewWatcher(socketPath, client, cfg.PollInterval)
}

// forwardFocus reports watcher transitions to the session from the watcher's
// goroutine, then wakes the UI so the next frame picks them up.
func forwardFocus(ctx context.Context, updates <-chan backend.Event, focus session.FocusHandle, program focusSender) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-updates:
			if !ok {
				return
			}
			if evt.Err != nil {
				logging.Error(evt.Err)
				continue
			}
			if err := focus.FocusChanged(evt.Focused); err != nil {
				logging.Error(err)
				continue
			}
			program.Send(ui.FocusRefreshMsg{Focused: evt.Focused})
		}
	}
}
