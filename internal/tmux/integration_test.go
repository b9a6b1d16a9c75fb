package tmux

import (
	"errors"
	"path/filepath"
	"testing"

	testutil "github.com/atomicstack/tmux-popup-input/internal/testutil"
)

func TestOwnerClientIntegrationDetachedServer(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, logDir := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Cleanup(func() {
		testutil.AssertNoServerCrash(t, logDir)
	})
	t.Setenv("TMUX_TMPDIR", filepath.Dir(socket))
	t.Setenv("TMUX_PANE", "")

	// the test server only has a detached session, so the sole client is the
	// control-mode connection used for the lookup itself
	_, err := OwnerClient(socket, "")
	if err == nil {
		t.Fatalf("expected an error without attached clients")
	}
	if !errors.Is(err, ErrNoClient) {
		t.Skipf("skipping: control client unavailable on this tmux (%v)", err)
	}
}

func TestClientFocusedIntegrationUnknownClient(t *testing.T) {
	testutil.RequireTmux(t)
	socket, cleanup, _ := testutil.StartTmuxServer(t)
	defer cleanup()
	t.Setenv("TMUX_TMPDIR", filepath.Dir(socket))

	if _, err := ClientFocused(socket, "/dev/does-not-exist"); err == nil {
		t.Fatalf("expected error querying an unknown client")
	}
}
