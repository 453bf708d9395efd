package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rescuetime-bar/internal/app"
	"rescuetime-bar/internal/config"
)

type options struct {
	configPath string
	keyFile    string
	top        int
	sort       bool
	preview    bool
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "rescuetime-bar",
		Short: "RescueTime activities for the menu bar",
		Long: `rescuetime-bar prints today's RescueTime activity summary in the
xbar/SwiftBar plugin format: productive time in the title, category totals
and the top activities in the dropdown.

The API key is read from ~/Library/RescueTime.com/api.key unless
--key-file, RESCUETIME_KEY_FILE or the config file say otherwise.
Generate a key at https://www.rescuetime.com/anapi/manage.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, stdout, stderr)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path (default "+config.DefaultConfigPath+")")
	cmd.Flags().StringVar(&opts.keyFile, "key-file", "", "API key file, overrides config")
	cmd.Flags().IntVar(&opts.top, "top", -1, "number of activities to list, overrides config")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "sort activities by time spent before picking the top ones")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "render for a terminal instead of the menu bar")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")
	return cmd
}

func run(cmd *cobra.Command, opts options, stdout, stderr io.Writer) error {
	// Logger. Stdout belongs to the status-bar host.
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.keyFile != "" {
		path, err := config.ExpandPath(opts.keyFile)
		if err != nil {
			return fmt.Errorf("key file: %w", err)
		}
		cfg.RescueTime.KeyFile = path
	}
	if cmd.Flags().Changed("top") {
		if opts.top < 0 {
			return fmt.Errorf("--top must not be negative")
		}
		cfg.Report.TopActivities = opts.top
	}
	if cmd.Flags().Changed("sort") {
		cfg.Report.SortByTime = opts.sort
	}
	logger.Debug("config loaded",
		slog.String("key_file", cfg.RescueTime.KeyFile),
		slog.String("base_url", cfg.RescueTime.BaseURL),
		slog.Int("top", cfg.Report.TopActivities),
	)

	return app.New(logger, cfg).RunOnce(cmd.Context(), stdout, opts.preview)
}
