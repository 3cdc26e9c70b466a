package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/CuriousSingularity/ig-tools/internal/browser"
	"github.com/CuriousSingularity/ig-tools/internal/config"
	"github.com/CuriousSingularity/ig-tools/internal/detect"
	"github.com/CuriousSingularity/ig-tools/internal/log"
	"github.com/CuriousSingularity/ig-tools/internal/model"
	"github.com/CuriousSingularity/ig-tools/internal/report"
	"github.com/spf13/cobra"
)

// NewDetectCmd creates the detect command.
func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect accounts that do not follow back",
		Long: `Detect compares the followers and followings pages of an Instagram data
export and reports the accounts you follow that do not follow you back.

The comparison is purely textual: the two HTML files are diffed line by
line and profile links unique to the followers page are extracted from the
diff. The detected profiles are then opened in your default browser in
batches, with a pause between batches.

Examples:
  # Detect and open non-followers in batches of 5, 30s apart
  igtools detect -f followers.html -g followings.html

  # Open 10 tabs at a time with a 60 second pause
  igtools detect -f followers.html -g followings.html -t 10 -d 60

  # Report only, without opening a browser
  igtools detect -f followers.html -g followings.html --dry-run

  # Write a markdown report to a file
  igtools detect -f followers.html -g followings.html -n -m -o report.md

  # Use settings from a config file
  igtools detect -f followers.html -g followings.html -c .igtools`,
		RunE: runDetectCmd,
	}

	// Input files
	cmd.Flags().StringP("followers", "f", "",
		"Path to the followers HTML document")
	cmd.Flags().StringP("followings", "g", "",
		"Path to the followings HTML document")

	// Batch opening flags
	cmd.Flags().IntP("num-tabs", "t", config.DefaultNumTabs,
		"Number of tabs to open at once")
	cmd.Flags().IntP("duration", "d", int(config.DefaultPause/time.Second),
		"Time to wait between opening tabs (in seconds)")
	cmd.Flags().BoolP("dry-run", "n", false,
		"Report non-followers without opening a browser")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .igtools in current, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runDetectCmd executes the detect command.
func runDetectCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Missing input paths are not an error: print guidance and exit cleanly
	if cfg.FollowersPath == "" || cfg.FollowingsPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Please provide both followers and followings HTML files.")
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := newLogger(cmd, cfg)
	slog.SetDefault(logger)

	// Set up context with signal handling so an interrupt ends the
	// pause between batches immediately
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runDetect(ctx, cmd, cfg, logger)
}

// newLogger creates the run's logger in text or JSON form.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return log.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
}

// getPersistentBool retrieves a boolean flag defined on the command or
// inherited from its parent.
func getPersistentBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return value
}

// buildConfig creates a Config from cobra command flags, with config file
// values filling in for flags the user did not set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.FollowersPath, err = cmd.Flags().GetString("followers")
	if err != nil {
		return nil, err
	}

	cfg.FollowingsPath, err = cmd.Flags().GetString("followings")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Apply config file values before reading the batch flags so that a
	// flag the user set explicitly wins over the file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("num-tabs") || configPath == "" {
		cfg.NumTabs, err = cmd.Flags().GetInt("num-tabs")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("duration") || configPath == "" {
		seconds, err := cmd.Flags().GetInt("duration")
		if err != nil {
			return nil, err
		}
		cfg.Pause = time.Duration(seconds) * time.Second
	}

	cfg.DryRun, err = cmd.Flags().GetBool("dry-run")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getPersistentBool(cmd, "verbose")
	cfg.LogJSON = getPersistentBool(cmd, "log-json")

	return cfg, nil
}

// runDetect executes the detection pipeline.
func runDetect(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	followers, err := model.ReadDocument(cfg.FollowersPath)
	if err != nil {
		return err
	}

	followings, err := model.ReadDocument(cfg.FollowingsPath)
	if err != nil {
		return err
	}

	logger.Debug("documents loaded",
		"followers_bytes", len(followers.Content),
		"followings_bytes", len(followings.Content),
	)

	detector := detect.New(
		detect.WithDomainPrefix(cfg.DomainPrefix),
		detect.WithLogger(logger),
	)

	result, err := detector.Detect(followers, followings)
	if err != nil {
		return err
	}

	if err := writeReport(cmd, cfg, result); err != nil {
		return err
	}

	// A dry run stops at the report; the profile list was printed there.
	if result.IsEmpty() || cfg.DryRun {
		return nil
	}

	opener := newOpener(cmd, cfg, logger)
	return opener.Open(ctx, result.Links())
}

// writeReport writes the detection report to stdout or the configured file.
func writeReport(cmd *cobra.Command, cfg *config.Config, result *model.DetectReport) error {
	out := io.Writer(cmd.OutOrStdout())

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(out)
	default:
		// In a dry run the opener never prints the links, so the plain
		// report carries the profile list instead.
		w = report.NewSimpleWriter(out, report.WithProfileList(cfg.DryRun))
	}

	if _, err := w.Write(result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newOpener builds the batch opener for this run.
func newOpener(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) *browser.Opener {
	return browser.New(
		browser.WithBatchSize(cfg.NumTabs),
		browser.WithPause(cfg.Pause),
		browser.WithOutput(cmd.OutOrStdout()),
		browser.WithLogger(logger),
	)
}
