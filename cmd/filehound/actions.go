package main

import (
	"fmt"

	"github.com/IvanShishkin/filehound/internal/actions"
	"github.com/IvanShishkin/filehound/internal/filesystem"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// actionCmd builds a command that runs a row action on one path
func actionCmd(use, short string, run func(a *actions.Actions, path string) error, done string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			a := actions.New(actions.WithLogger(logger))
			if err := run(a, args[0]); err != nil {
				logger.Error("Action failed", zap.String("action", use), zap.Error(err))
				return err
			}
			if done != "" {
				fmt.Printf("  %s %s\n", green.Sprint(done), args[0])
			}
			return nil
		},
	}
}

// openCmd creates the open command
func openCmd() *cobra.Command {
	return actionCmd("open", "Open a file with the default application",
		func(a *actions.Actions, path string) error { return a.Open(path) }, "")
}

// removeCmd creates the rm command
func removeCmd() *cobra.Command {
	cmd := actionCmd("rm", "Delete a file permanently (no recycle bin)",
		func(a *actions.Actions, path string) error { return a.Remove(path) }, "✓ Deleted")
	cmd.Aliases = []string{"delete"}
	return cmd
}

// revealCmd creates the reveal command
func revealCmd() *cobra.Command {
	return actionCmd("reveal", "Show a file in the system file manager",
		func(a *actions.Actions, path string) error { return a.Reveal(path) }, "")
}

// infoCmd creates the info command
func infoCmd() *cobra.Command {
	return actionCmd("info", "Show size, permissions and detected type of a file",
		func(a *actions.Actions, path string) error {
			d, err := a.Inspect(path)
			if err != nil {
				return err
			}
			printDetails(d)
			return nil
		}, "")
}

func printDetails(d *actions.Details) {
	fmt.Println()
	fmt.Printf("  %s      %s\n", gray.Sprint("Path:"), bold.Sprint(d.Path))
	fmt.Printf("  %s      %s (%d bytes)\n", gray.Sprint("Size:"), filesystem.FormatSize(d.Size), d.Size)
	fmt.Printf("  %s      %s\n", gray.Sprint("Type:"), d.MIMEType)
	fmt.Printf("  %s      %s\n", gray.Sprint("Mode:"), d.Mode)
	fmt.Printf("  %s  %s\n", gray.Sprint("Modified:"), d.ModTime.Format("2006-01-02 15:04:05"))
	fmt.Println()
}
