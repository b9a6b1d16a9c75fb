package tmux

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoClient reports that no interactive tmux client is attached.
var ErrNoClient = errors.New("no attached tmux client")

// OwnerClient resolves the tmux client the popup belongs to. An explicit name
// wins; otherwise the client attached to the session of $TMUX_PANE is used,
// falling back to the first attached interactive client.
func OwnerClient(socketPath, explicit string) (string, error) {
	if name := strings.TrimSpace(explicit); name != "" {
		return name, nil
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return "", fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	clients, err := client.ListClients()
	if err != nil {
		return "", fmt.Errorf("list clients: %w", err)
	}
	session := ""
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			session = strings.TrimSpace(name)
		}
	}
	first := ""
	for _, c := range clients {
		// gotmuxcc's own control-mode connection shows up in the list too
		if c == nil || c.ControlMode || c.Name == "" {
			continue
		}
		if session != "" && c.Session == session {
			return c.Name, nil
		}
		if first == "" {
			first = c.Name
		}
	}
	if first == "" {
		return "", ErrNoClient
	}
	return first, nil
}

// ClientFocused reports whether the terminal hosting client currently has
// focus, as tracked by tmux in #{client_flags}.
func ClientFocused(socketPath, client string) (bool, error) {
	target := strings.TrimSpace(client)
	if target == "" {
		return false, fmt.Errorf("client name required")
	}
	args := append(baseArgs(socketPath), "display-message", "-p", "-c", target, "#{client_flags}")
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return false, fmt.Errorf("display-message -c %s: %w", target, err)
	}
	return hasFlag(string(output), "focused"), nil
}

func hasFlag(flags, want string) bool {
	for _, flag := range strings.Split(strings.TrimSpace(flags), ",") {
		if strings.TrimSpace(flag) == want {
			return true
		}
	}
	return false
}
