package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/popup-overlay/internal/app"
	"github.com/atomicstack/popup-overlay/internal/config"
	"github.com/atomicstack/popup-overlay/internal/logging"
	"github.com/atomicstack/popup-overlay/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if !runtimeCfg.App.Check && probeTerminals().Detected == nil {
		fmt.Fprintln(os.Stderr, "Error: no terminal attached (use -check to validate content without one)")
		os.Exit(2)
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		if errors.Is(err, app.ErrDiagnostics) {
			os.Exit(1)
		}
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"logPath": logging.Path(),
		"tty":     probeTerminals(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}
