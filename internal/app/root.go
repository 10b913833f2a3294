package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textreport/internal/config"
	"github.com/blackwell-systems/textreport/internal/output"
)

var (
	configDir string
	verbose   bool
	colorFlag string
	inputPath string

	// RootCmd is the root command for textreport
	RootCmd = &cobra.Command{
		Use:   "textreport [input_path]",
		Short: "Word count and letter frequency report for a text file",
		Long: `textreport reads a text file and prints how many words it contains and how
often each letter occurs, most frequent letter first.

Letters are case-folded, so 'A' and 'a' are counted together. Digits,
punctuation and whitespace are ignored. Letters that occur equally often are
listed in the order they first appear in the document.

The document is chosen from, in order:
  1. the positional argument
  2. the --input flag
  3. input_path in the config file (~/.config/textreport/config)
  4. books/frankenstein.txt

Examples:
  # Report on the default document
  textreport

  # Report on a specific file
  textreport books/moby-dick.txt

  # Re-print the report whenever the file is saved
  textreport watch notes.txt`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
		RunE:              runRoot,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/textreport)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	RootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "colorize letters: auto, always or never (default from config, else auto)")
	RootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "path of the text file to analyze")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(watchCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(args)
	if err != nil {
		return err
	}
	return runReport(cmd.Context(), cmd.OutOrStdout(), s)
}

// setupLogging installs the default slog logger. Logs go to stderr so they
// never mix with the report on stdout.
func setupLogging(cmd *cobra.Command, args []string) error {
	newLogger(cmd.ErrOrStderr(), verbose)
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// settings are the effective options for one run after merging flags, the
// config file and defaults.
type settings struct {
	path  string
	color output.ColorMode
}

func resolveSettings(args []string) (settings, error) {
	dir := configDir
	if dir == "" {
		d, err := config.Dir()
		if err != nil {
			return settings{}, fmt.Errorf("failed to locate config directory: %w", err)
		}
		dir = d
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	var s settings

	switch {
	case len(args) > 0:
		s.path = args[0]
	case inputPath != "":
		s.path = inputPath
	default:
		s.path = cfg.InputPath
	}

	mode := cfg.Color
	if colorFlag != "" {
		mode = colorFlag
	}
	s.color, err = output.ParseColorMode(mode)
	if err != nil {
		return settings{}, err
	}

	slog.Debug("resolved settings", "config_dir", dir, "input_path", s.path, "color", s.color)
	return s, nil
}
