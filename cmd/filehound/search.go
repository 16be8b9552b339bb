package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/IvanShishkin/filehound/internal/config"
	"github.com/IvanShishkin/filehound/internal/core"
	"github.com/IvanShishkin/filehound/internal/filesystem"
	"github.com/IvanShishkin/filehound/internal/report"
	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// searchOptions holds the raw search flags
type searchOptions struct {
	name      string
	content   string
	extension string
	minSize   string
	maxSize   string
	queryFile string
	saveQuery string
}

// searchCmd creates the search command
func searchCmd() *cobra.Command {
	var (
		opts         searchOptions
		reportFormat string
		outputFile   string
		progress     bool
	)

	cmd := &cobra.Command{
		Use:   "search [path]",
		Short: "Search a directory for matching files",
		Long: `Recursively walk a directory and list every regular file whose name contains
--name, ends with --ext, whose size lies within --min-size and --max-size and
whose text content contains --content. Filters left empty are not applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags before doing anything
			if err := validateFlags(reportFormat); err != nil {
				return printInvalid(err)
			}

			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			q, err := buildQuery(root, opts, cmd.Flags().Changed)
			if err != nil {
				return printInvalid(err)
			}

			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			// Load configuration
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if reportFormat != "" {
				cfg.ReportFormat = config.NormalizeFormat(reportFormat)
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}
			if progress {
				cfg.ShowProgress = true
			}

			if opts.saveQuery != "" {
				if err := config.SaveQueryFile(opts.saveQuery, q); err != nil {
					return fmt.Errorf("failed to save query: %w", err)
				}
				logger.Info("Saved query", zap.String("path", opts.saveQuery))
			}

			if cfg.ReportFormat == config.FormatConsole {
				printSearchBanner(q)
			}

			var scanOpts []core.Option
			if cfg.ShowProgress && isatty.IsTerminal(os.Stderr.Fd()) {
				scanOpts = append(scanOpts, core.WithProgressCallback(printProgress))
			}
			scanner := core.NewScanner(logger, scanOpts...)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			results := scanner.Run(ctx, q)

			generator, err := report.NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			reportPath, err := generator.Generate(results)
			if err != nil {
				logger.Error("Report failed", zap.Error(err))
				return err
			}

			// Print report path if generated
			if reportPath != "" {
				fmt.Printf("  %s %d files found\n", gray.Sprint("Matches:"), results.Count())
				if results.Stats.Inaccessible > 0 {
					fmt.Printf("  %s %d inaccessible entries\n", gray.Sprint("Skipped:"), results.Stats.Inaccessible)
				}
				fmt.Printf("  %s  %s\n", gray.Sprint("Report:"), accent.Sprint(reportPath))
				fmt.Println()
			}

			if results.Canceled {
				return context.Canceled
			}
			return nil
		},
	}

	// Filter flags
	cmd.Flags().StringVar(&opts.name, "name", "", "File name must contain this text (case-sensitive)")
	cmd.Flags().StringVar(&opts.content, "content", "", "File content must contain this text (case-sensitive)")
	cmd.Flags().StringVar(&opts.extension, "ext", "", "File name must end with this suffix, e.g. .txt")
	cmd.Flags().StringVar(&opts.minSize, "min-size", "", "Minimum file size, e.g. 500, 10K, 2M")
	cmd.Flags().StringVar(&opts.maxSize, "max-size", "", "Maximum file size, e.g. 500, 10K, 2M")
	cmd.Flags().StringVar(&opts.queryFile, "query", "", "Load filters from a yaml query file")
	cmd.Flags().StringVar(&opts.saveQuery, "save-query", "", "Save the effective filters to a yaml query file")

	// Report flags
	cmd.Flags().StringVarP(&reportFormat, "report", "r", "", "Report format: console, text, json, yaml, md, html (default: console)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show progress while walking")

	return cmd
}

// buildQuery merges the query file, the path argument and the filter flags.
// Flags and the argument take precedence over the query file.
func buildQuery(root string, opts searchOptions, changed func(string) bool) (models.Query, error) {
	var q models.Query
	if opts.queryFile != "" {
		loaded, err := config.LoadQueryFile(opts.queryFile)
		if err != nil {
			return q, err
		}
		q = *loaded
	}

	if root != "" {
		q.Root = root
	}
	if q.Root == "" {
		q.Root = "."
	}

	if changed("name") {
		q.Name = opts.name
	}
	if changed("content") {
		q.Content = opts.content
	}
	if changed("ext") {
		q.Extension = opts.extension
	}
	if changed("min-size") {
		size, err := parseSizeFlag("--min-size", opts.minSize)
		if err != nil {
			return q, err
		}
		q.MinSize = size
	}
	if changed("max-size") {
		size, err := parseSizeFlag("--max-size", opts.maxSize)
		if err != nil {
			return q, err
		}
		q.MaxSize = size
	}

	if err := q.Validate(); err != nil {
		return q, err
	}
	return q, nil
}

// parseSizeFlag parses a size flag. An empty value clears the bound.
func parseSizeFlag(flag, value string) (*int64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	size, err := filesystem.ParseSize(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", flag, err)
	}
	return models.Bytes(size), nil
}

// printSearchBanner prints the startup banner
func printSearchBanner(q models.Query) {
	printBanner()
	fmt.Printf("  %s %s\n", gray.Sprint("Searching:"), q.Root)
	fmt.Println()
}

// printProgress redraws a single progress line on stderr
func printProgress(phase string, visited, matched int, path string) {
	switch phase {
	case "started":
		fmt.Fprintf(os.Stderr, "  %s\n", gray.Sprint("Starting search..."))
	case "walking":
		if len(path) > 50 {
			path = "..." + path[len(path)-47:]
		}
		fmt.Fprintf(os.Stderr, "\033[1A\033[K  %s %d visited, %d matched %s\n",
			gray.Sprint("Walking:"), visited, matched, gray.Sprint(path))
	case "complete":
		fmt.Fprintf(os.Stderr, "\033[1A\033[K  %s %d visited, %d matched\n",
			green.Sprint("✓ Done:"), visited, matched)
	}
}
