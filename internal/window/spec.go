// Package window describes the popup window and creates it on the owner tmux
// client.
package window

import (
	"errors"
	"fmt"
	"strings"
)

// TitleBarStyle selects how the title bar relates to the window content.
type TitleBarStyle int

const (
	// TitleBarVisible draws the title bar above the content.
	TitleBarVisible TitleBarStyle = iota
	// TitleBarOverlay draws the title bar on top of the content area.
	TitleBarOverlay
)

func (s TitleBarStyle) String() string {
	switch s {
	case TitleBarVisible:
		return "visible"
	case TitleBarOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("titlebar(%d)", int(s))
	}
}

const (
	DefaultLabel  = "popup_input"
	DefaultWidth  = 360
	DefaultHeight = 185

	// Pixel size of one terminal cell used when converting geometry.
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Spec describes the popup window the core asks the windowing layer for.
// Width and Height are logical pixels.
type Spec struct {
	Label       string
	Title       string
	Width       int
	Height      int
	Resizable   bool
	Focused     bool
	Closable    bool
	Decorations bool
	TitleBar    TitleBarStyle
}

// Default returns the fixed popup geometry and chrome.
func Default() Spec {
	return Spec{
		Label:       DefaultLabel,
		Title:       "",
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Resizable:   false,
		Focused:     true,
		Closable:    true,
		Decorations: true,
		TitleBar:    TitleBarOverlay,
	}
}

// Validate reports configuration defects in the spec.
func (s Spec) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Label) == "" {
		errs = append(errs, errors.New("window label required"))
	}
	if s.Width <= 0 {
		errs = append(errs, fmt.Errorf("window width must be > 0 (got %d)", s.Width))
	}
	if s.Height <= 0 {
		errs = append(errs, fmt.Errorf("window height must be > 0 (got %d)", s.Height))
	}
	return errors.Join(errs...)
}

// Cells converts the pixel geometry to terminal cells, rounding up. Non-positive
// cell sizes fall back to the defaults.
func (s Spec) Cells(cellWidth, cellHeight int) (cols, rows int) {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	cols = ceilDiv(s.Width, cellWidth)
	rows = ceilDiv(s.Height, cellHeight)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
