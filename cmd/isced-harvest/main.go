// Package main provides the isced-harvest binary entry point.
// It harvests the ISCED-F fields-of-study taxonomy from the EU linked-data
// endpoint and regenerates the flat lookup table and the per-language
// translation catalogs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/EuropeanUniversityFoundation/isced-go/catalog"
	"github.com/EuropeanUniversityFoundation/isced-go/config"
	"github.com/EuropeanUniversityFoundation/isced-go/harvest"
	"github.com/EuropeanUniversityFoundation/isced-go/table"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "isced-harvest"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		scheme     string
		outTable   string
		outLocales string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Harvest the ISCED-F taxonomy",
		Long: `isced-harvest walks the ISCED-F 2013 concept scheme on the EU
linked-data endpoint, one concept per fetch, and rebuilds the four-level
hierarchy of fields of study.

On success it regenerates two artifacts from scratch:
- a flat, code-indexed JSON lookup table
- one gettext PO catalog per non-English language, replicated across
  configured locale dialects

Nothing is written if any part of the harvest fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, scheme, outTable, outLocales, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&scheme, "scheme", "", "Concept scheme URI to harvest")
	cmd.Flags().StringVar(&outTable, "out-table", "", "Path of the flat table JSON artifact")
	cmd.Flags().StringVar(&outLocales, "out-locales", "", "Directory for PO catalogs")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func run(configPath, scheme, outTable, outLocales, logLevel string) error {
	logger := newLogger(logLevel)

	cfg, err := config.NewLoader(logger).Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override the config file.
	if scheme != "" {
		cfg.Source.Scheme = scheme
	}
	if outTable != "" {
		cfg.Output.Table = outTable
	}
	if outLocales != "" {
		cfg.Output.Locales = outLocales
	}

	runID := uuid.NewString()
	logger = logger.With(slog.String("run_id", runID))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting harvest",
		slog.String("scheme", cfg.Source.Scheme),
		slog.Duration("delay", cfg.Source.Delay.Std()))

	start := time.Now()
	client := harvest.NewClient(harvest.ClientConfig{
		Delay:   cfg.Source.Delay.Std(),
		Timeout: cfg.Source.Timeout.Std(),
	}, logger)
	builder := harvest.NewBuilder(client, cfg.Source.Scheme, logger)

	tree, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	tbl, err := table.Flatten(tree)
	if err != nil {
		return err
	}

	cat := catalog.Extract(tree)
	cat.Replicate(cfg.Locales.Replicate)

	// Artifacts are written only after the whole pipeline has succeeded.
	if err := tbl.WriteFile(cfg.Output.Table); err != nil {
		return err
	}
	if err := catalog.WritePO(cat, cfg.Output.Locales); err != nil {
		return err
	}

	stats := builder.Stats()
	logger.Info("Artifacts written",
		slog.String("table", cfg.Output.Table),
		slog.String("locales", cfg.Output.Locales),
		slog.Int64("fetches", stats.Fetches),
		slog.Int("codes", tbl.Len()),
		slog.Int("languages", len(cat.Languages())),
		slog.Int("entries", cat.Entries()),
		slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
