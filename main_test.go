package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/atomicstack/tmux-popup-input/internal/app"
	"github.com/atomicstack/tmux-popup-input/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			SocketPath: "socket-path",
			Client:     "/dev/pts/2",
			CellWidth:  8,
			CellHeight: 16,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "popup.toml",
		Flags: map[string]string{
			"socket":     "socket-path",
			"client":     "/dev/pts/2",
			"cell-width": "8",
			"footer":     "true",
		},
		Args: []string{"--socket", "socket-path"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["client"] != "/dev/pts/2" {
		t.Fatalf("expected client flag, got %v", flagsValue["client"])
	}
	if flagsValue["cell-width"] != "8" {
		t.Fatalf("expected cell width 8, got %v", flagsValue["cell-width"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["configFile"] != "popup.toml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}
	if payload["version"] != version {
		t.Fatalf("expected version %q, got %v", version, payload["version"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd(nil)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != version+"\n" {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	root := newRootCmd([]string{"TMUX_POPUP_INPUT_CELL_WIDTH=0"})
	root.SetArgs([]string{"run"})
	err := root.Execute()
	var cfgErr configError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	root := newRootCmd(nil)
	root.SetArgs([]string{"run", "extra"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for positional arguments")
	}
}

func TestExitCode(t *testing.T) {
	if code := exitCode(configError{err: errors.New("bad")}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if code := exitCode(errors.New("boom")); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
