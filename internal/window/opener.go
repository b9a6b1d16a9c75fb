package window

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tmux-popup-input/internal/logging/events"
	"github.com/atomicstack/tmux-popup-input/internal/tmux"
)

var (
	// ErrNoOwnerWindow reports that the popup has no tmux client to attach to.
	ErrNoOwnerWindow = errors.New("owner window not available")
	// ErrNoPopupWindow reports that tmux refused to create the popup.
	ErrNoPopupWindow = errors.New("popup window could not be created")
)

var (
	ownerClient  = tmux.OwnerClient
	displayPopup = tmux.DisplayPopup
)

// Opener creates popup windows on the tmux client that owns the caller.
type Opener struct {
	SocketPath string
	Client     string
	CellWidth  int
	CellHeight int
}

// Options converts spec into display-popup options for client.
func (o Opener) Options(spec Spec, client string, command []string) tmux.PopupOptions {
	cols, rows := spec.Cells(o.CellWidth, o.CellHeight)
	return tmux.PopupOptions{
		Client:      client,
		Title:       spec.Title,
		Width:       cols,
		Height:      rows,
		Border:      spec.Decorations,
		CloseOnExit: spec.Closable,
		Command:     command,
	}
}

// Owner resolves the tmux client the popup will be attached to.
func (o Opener) Owner() (string, error) {
	client, err := ownerClient(o.SocketPath, o.Client)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoOwnerWindow, err)
	}
	events.Window.Owner(client)
	return client, nil
}

// Open shows spec as a popup running command on the owner client. It blocks
// until the popup closes when the spec is closable.
func (o Opener) Open(spec Spec, command []string) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrNoPopupWindow, err)
	}
	client, err := o.Owner()
	if err != nil {
		events.Window.OpenFailed(spec.Label, err)
		return err
	}
	return o.OpenOn(spec, client, command)
}

// OpenOn shows spec as a popup on an already resolved client.
func (o Opener) OpenOn(spec Spec, client string, command []string) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrNoPopupWindow, err)
	}
	opts := o.Options(spec, client, command)
	events.Window.Open(spec.Label, opts.Width, opts.Height, command)
	if err := displayPopup(o.SocketPath, opts); err != nil {
		events.Window.OpenFailed(spec.Label, err)
		return fmt.Errorf("%w: %w", ErrNoPopupWindow, err)
	}
	return nil
}
