package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IvanShishkin/filehound/internal/actions"
	"github.com/IvanShishkin/filehound/internal/config"
	"github.com/IvanShishkin/filehound/internal/core"
	"github.com/IvanShishkin/filehound/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errNoTerminal is returned when the interactive window cannot be drawn
var errNoTerminal = errors.New("the interactive window needs a terminal, use 'filehound search' instead")

// tuiCmd creates the tui command
func tuiCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui [path]",
		Short: "Search interactively and act on the results",
		Long: `Open a full screen window with the search form and a results table.
Selected files can be opened (enter/o), deleted (d), revealed (r) and inspected (i).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
				return errNoTerminal
			}

			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			if abs, err := filepath.Abs(root); err == nil {
				root = abs
			}

			// Anything on stderr would corrupt the screen
			logger = zap.NewNop()
			if verbose {
				var err error
				logger, err = fileLogger(logFile)
				if err != nil {
					return err
				}
			}
			defer logger.Sync()

			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return err
			}

			model := tui.New(
				core.NewScanner(logger),
				actions.New(actions.WithLogger(logger)),
				cfg, root, logger)

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("interactive window failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "filehound-tui.log", "Log file used with --verbose")

	return cmd
}

// fileLogger writes debug logs to path
func fileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
