package tmux

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayPopup opens a popup on the given client running opts.Command. With
// CloseOnExit the call returns once the command exits and the popup is gone.
func DisplayPopup(socketPath string, opts PopupOptions) error {
	args, err := popupArgs(socketPath, opts)
	if err != nil {
		return err
	}
	if err := runExecCommand("tmux", args...).Run(); err != nil {
		return fmt.Errorf("display-popup on %s: %w", opts.Client, err)
	}
	return nil
}

func popupArgs(socketPath string, opts PopupOptions) ([]string, error) {
	if strings.TrimSpace(opts.Client) == "" {
		return nil, fmt.Errorf("popup client required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("popup size must be positive (got %dx%d)", opts.Width, opts.Height)
	}
	if len(opts.Command) == 0 {
		return nil, fmt.Errorf("popup command required")
	}
	args := append(baseArgs(socketPath), "display-popup", "-c", opts.Client)
	if opts.CloseOnExit {
		args = append(args, "-E")
	}
	args = append(args, "-w", strconv.Itoa(opts.Width), "-h", strconv.Itoa(opts.Height))
	if opts.Border {
		args = append(args, "-T", opts.Title)
	} else {
		args = append(args, "-B")
	}
	args = append(args, opts.Command...)
	return args, nil
}
