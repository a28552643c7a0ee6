package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-overlay/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envContent    = "POPUP_OVERLAY_CONTENT"
	envTitle      = "POPUP_OVERLAY_TITLE"
	envWidth      = "POPUP_OVERLAY_WIDTH"
	envHeight     = "POPUP_OVERLAY_HEIGHT"
	envShowFooter = "POPUP_OVERLAY_FOOTER"
	envWatch      = "POPUP_OVERLAY_WATCH"
	envTrace      = "POPUP_OVERLAY_TRACE"
	envLogFile    = "POPUP_OVERLAY_LOG_FILE"
)

// ErrContentRequired is returned by Validate when a mode needs a content file.
var ErrContentRequired = errors.New("a -content file is required")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-overlay", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	contentPath := fs.String("content", envOrDefault(env, envContent, ""), "path to a TOML pop-up definition (built-in demo when empty)")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "override the pop-up title")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint and diagnostics footer")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the pop-up when the content file changes")
	check := fs.Bool("check", false, "place the content without a terminal and report diagnostics")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			ContentPath: *contentPath,
			Title:       *title,
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Watch:       *watch,
			Check:       *check,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"content": *contentPath,
			"title":   *title,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"watch":   strconv.FormatBool(*watch),
			"check":   strconv.FormatBool(*check),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Watch && cfg.App.ContentPath == "" {
		return fmt.Errorf("-watch: %w", ErrContentRequired)
	}
	if cfg.App.Watch && cfg.App.Check {
		return errors.New("-watch and -check cannot be combined")
	}
	return nil
}
