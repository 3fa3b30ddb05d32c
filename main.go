package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hnnsb/hecto/config"
	"github.com/hnnsb/hecto/editor"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	terminal := editor.NewTerminal()
	if err := terminal.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	// Ensure the terminal is restored on all exit paths
	defer terminal.Restore()

	e := editor.NewEditor(terminal, cfg, logger)
	if err := e.Init(); err != nil {
		terminal.Restore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-H = help")
	if len(args) >= 1 {
		if err := e.Open(args[0]); err != nil {
			e.ShowError("Could not open file: %v", err)
		}
	}

	err = e.Run()
	terminal.Clear()
	terminal.Restore()
	if errors.Is(err, editor.ErrQuit) {
		fmt.Println("Exiting HECTO editor")
		return 0
	}
	logger.Error("editor stopped", "err", err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// newLogger logs to cfg.LogFile, or nowhere when it is unset. The terminal
// is in raw mode while the editor runs, so stderr is not an option.
func newLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()})
	return slog.New(handler), f.Close, nil
}
