package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IvanShishkin/filehound/internal/config"
	"github.com/IvanShishkin/filehound/internal/core"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version    = core.Version
	logger     *zap.Logger
	verbose    bool
	configFile string
)

// Console colors
var (
	accent = color.New(color.FgYellow, color.Bold)
	gray   = color.New(color.FgHiBlack)
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	bold   = color.New(color.Bold)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filehound",
		Short: "Filehound - find files by name, extension, size and content",
		Long: `Recursively search a directory for files whose name, extension, size and
text content match the given filters, then open, reveal or delete the results.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			printBanner()
			cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")

	// Add commands
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(removeCmd())
	rootCmd.AddCommand(revealCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(tuiCmd())

	return rootCmd
}

// initLogger builds the development logger under --verbose, otherwise an
// error-only JSON logger on stderr
func initLogger() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.Config{
			Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
			Encoding:         "json",
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
			EncoderConfig:    zap.NewProductionEncoderConfig(),
		}
		logger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// printBanner prints the main banner
func printBanner() {
	fmt.Println()
	accent.Println("┏━╸╻╻  ┏━╸╻ ╻┏━┓╻ ╻┏┓╻╺┳┓")
	accent.Println("┣╸ ┃┃  ┣╸ ┣━┫┃ ┃┃ ┃┃┗┫ ┃┃")
	accent.Println("╹  ╹┗━╸┗━╸╹ ╹┗━┛┗━┛╹ ╹╺┻┛")
	fmt.Println()
	gray.Printf("File Search v%s\n", version)
	fmt.Println()
}

// validateFlags validates CLI flag values
func validateFlags(reportFormat string) error {
	if reportFormat != "" && !config.IsValidFormat(strings.ToLower(reportFormat)) {
		return fmt.Errorf("--report must be one of: %s (got: %s)", strings.Join(config.ReportFormats, ", "), reportFormat)
	}
	return nil
}

// shownError marks an error already printed to the user
type shownError struct{ err error }

func (e shownError) Error() string { return e.err.Error() }
func (e shownError) Unwrap() error { return e.err }

// printInvalid reports a bad flag or query the way every command does
func printInvalid(err error) error {
	fmt.Fprintf(os.Stderr, "\n  %s %s\n\n", red.Sprint("✗ Invalid parameter:"), err.Error())
	return shownError{err}
}

// printError prints a command failure unless it was already shown
func printError(w io.Writer, err error) {
	var shown shownError
	if errors.As(err, &shown) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
