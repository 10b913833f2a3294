package app

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textreport/internal/output"
	"github.com/blackwell-systems/textreport/internal/report"
	"github.com/blackwell-systems/textreport/internal/watcher"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch [input_path]",
		Short: "Print the report again every time the file changes",
		Long: `Print the report for a text file, then keep watching the file and print a
fresh report each time it is saved. Press Ctrl+C to stop.

Editors that save by replacing the file are supported. Rapid successive
writes are collapsed into a single report.

If the file becomes unreadable while watching, the error is logged and
watching continues.`,
		Example: `  # Watch the default document
  textreport watch

  # Watch a draft, waiting half a second after the last write
  textreport watch draft.txt --debounce 500ms`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period after the last write before reporting")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchDebounce <= 0 {
		return fmt.Errorf("invalid debounce: %s (must be positive)", watchDebounce)
	}

	s, err := resolveSettings(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	// Initial report; an unreadable file is fatal here, same as the root command.
	if err := runReport(ctx, out, s); err != nil {
		return err
	}

	w, err := watcher.New(s.path, func() error {
		r, err := report.Generate(ctx, s.path)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		return output.RenderReport(out, r, output.Options{Color: s.color.Enabled(out)})
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.Debounce = watchDebounce

	slog.Info("watching for changes", "path", w.Path())

	return w.Run(ctx)
}
