package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/fift2939-create/ather1/internal/cli"
	"github.com/fift2939-create/ather1/internal/llm"
	"github.com/fift2939-create/ather1/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	mode := os.Getenv("ATHAR_LOG_MODE")

	log, err := logger.New(mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	// The TUI owns the terminal, so it only logs when pointed at a file.
	tuiLog, err := logger.NewWithOutput(mode, os.Getenv("ATHAR_LOG_FILE"))
	if err != nil {
		return err
	}
	defer tuiLog.Sync()

	cfg, err := llm.LoadConfig("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		Config: cfg,
		Log:    log,
		TUILog: tuiLog,
	}

	// Detect interactive terminal for the TUI entrypoint and spinners.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
