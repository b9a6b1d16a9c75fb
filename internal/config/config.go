package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-popup-input/internal/app"
	"github.com/atomicstack/tmux-popup-input/internal/backend"
	"github.com/atomicstack/tmux-popup-input/internal/window"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "TMUX_POPUP_INPUT"

const (
	keySocket       = "socket"
	keyClient       = "client"
	keyWidth        = "width"
	keyHeight       = "height"
	keyFooter       = "footer"
	keyCellWidth    = "cell-width"
	keyCellHeight   = "cell-height"
	keyPollInterval = "poll-interval"
	keyBlink        = "blink"
	keyTrace        = "trace"
	keyLogFile      = "log-file"
	keyConfig       = "config"
)

// keys lists every setting in the order it is reported.
var keys = []string{
	keySocket, keyClient, keyWidth, keyHeight, keyFooter, keyCellWidth,
	keyCellHeight, keyPollInterval, keyBlink, keyTrace, keyLogFile,
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(keySocket, "", "path to the tmux socket (overrides environment detection)")
	fs.String(keyClient, "", "tmux client that owns the popup (defaults to the caller's client)")
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(keyFooter, false, "enable footer hint row (disabled by default)")
	fs.Int(keyCellWidth, window.DefaultCellWidth, "pixel width of one terminal cell")
	fs.Int(keyCellHeight, window.DefaultCellHeight, "pixel height of one terminal cell")
	fs.Duration(keyPollInterval, backend.DefaultInterval, "owner focus poll interval (0 disables polling)")
	fs.Bool(keyBlink, true, "blink the text cursor")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, "", "path to the log file")
	fs.String(keyConfig, "", "path to a configuration file (toml, yaml or json)")
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tmux-popup-input", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := Resolve(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// Resolve merges defaults, the optional config file, environment and the
// flags explicitly set on fs, in increasing order of precedence.
func Resolve(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()
	fs.VisitAll(func(f *pflag.Flag) {
		v.SetDefault(f.Name, f.DefValue)
	})

	file := lookup(fs, env, keyConfig)
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}
	for _, key := range keys {
		if value, ok := env[envName(key)]; ok && strings.TrimSpace(value) != "" {
			v.Set(key, value)
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		v.Set(f.Name, f.Value.String())
	})

	var errs []error
	intValue := func(key string) int {
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid integer %q", key, v.GetString(key)))
		}
		return n
	}
	boolValue := func(key string) bool {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid boolean %q", key, v.GetString(key)))
		}
		return b
	}
	interval, err := time.ParseDuration(strings.TrimSpace(v.GetString(keyPollInterval)))
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", keyPollInterval, err))
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   v.GetString(keySocket),
			Client:       v.GetString(keyClient),
			Width:        intValue(keyWidth),
			Height:       intValue(keyHeight),
			ShowFooter:   boolValue(keyFooter),
			CellWidth:    intValue(keyCellWidth),
			CellHeight:   intValue(keyCellHeight),
			PollInterval: interval,
			CursorBlink:  boolValue(keyBlink),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    boolValue(keyTrace),
		},
		File:  file,
		Flags: make(map[string]string, len(keys)),
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	for _, key := range keys {
		cfg.Flags[key] = v.GetString(key)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ForwardArgs renders the flags explicitly set on fs so a child process sees
// the same configuration.
func ForwardArgs(fs *pflag.FlagSet) []string {
	var args []string
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == keyClient {
			return
		}
		args = append(args, fmt.Sprintf("--%s=%s", f.Name, f.Value.String()))
	})
	return args
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if cfg.App.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("cell-width must be > 0 (got %d)", cfg.App.CellWidth))
	}
	if cfg.App.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell-height must be > 0 (got %d)", cfg.App.CellHeight))
	}
	if cfg.App.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("poll-interval must be >= 0 (got %s)", cfg.App.PollInterval))
	}
	return errors.Join(errs...)
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// lookup reads a setting that must be known before viper is populated.
func lookup(fs *pflag.FlagSet, env map[string]string, key string) string {
	if f := fs.Lookup(key); f != nil && f.Changed {
		return f.Value.String()
	}
	return env[envName(key)]
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}
