package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gallery/internal/adapter"
	"github.com/mmcdole/gallery/internal/adapter/source"
	"github.com/mmcdole/gallery/internal/browser"
	"github.com/mmcdole/gallery/internal/export"
	"github.com/mmcdole/gallery/internal/tui"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// flags holds command-line overrides for the loaded config
type flags struct {
	configFile string
	pageSize   int
	apiURL     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the artwork catalog in your terminal",
		Long: `Gallery shows the artwork catalog as a paginated table.

Rows can be checked on any page; the selection survives page changes and
can be exported to YAML or Parquet.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", "", "Config file (default: ~/.config/gallery/config.yaml)")
	cmd.Flags().IntVarP(&f.pageSize, "page-size", "n", 0, "Rows per page (1-100)")
	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "Catalog API base URL")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newConfigCmd(&f))

	return cmd
}

func newConfigCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to config.yaml",
		Example: `  # Write defaults to ~/.config/gallery/config.yaml
  gallery config init

  # Write to a custom directory
  gallery config init --dir ./conf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := adapter.LoadConfig(f.configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path, err := adapter.SaveConfig(cfg, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "Directory to write config.yaml into")

	cmd.AddCommand(initCmd)
	return cmd
}

// loadConfig reads config and applies flag overrides on top
func loadConfig(cmd *cobra.Command, f flags) (*adapter.Config, error) {
	cfg, err := adapter.LoadConfig(f.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg, f)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags that were set explicitly
func applyFlags(cmd *cobra.Command, cfg *adapter.Config, f flags) {
	if cmd.Flags().Changed("page-size") {
		cfg.UI.PageSize = f.pageSize
	}
	if f.apiURL != "" {
		cfg.Catalog.URL = strings.TrimRight(f.apiURL, "/")
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if cfg.Catalog.UserAgent == "gallery/dev" && Version != "dev" {
		cfg.Catalog.UserAgent = "gallery/" + Version
	}
}

func run(ctx context.Context, cfg *adapter.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("gallery needs an interactive terminal")
	}

	logger, err := adapter.SetupLogger(&cfg.Logging, Version)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	defer logger.Close()
	slog.SetDefault(logger.Logger)

	logger.Info("starting gallery", "catalog", cfg.Catalog.URL, "page_size", cfg.UI.PageSize)

	if cfg.Metrics.Listen != "" {
		stop := serveMetrics(cfg.Metrics.Listen, logger.Logger)
		defer stop()
	}

	client, err := source.NewClientFromConfig(cfg, logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	b := browser.New(client, cfg.UI.PageSize, logger.Logger)
	exp := export.NewExporter(client, logger.Logger)

	model := tui.NewModel(b, exp, tui.Options{
		PageSize:     cfg.UI.PageSize,
		FetchTimeout: cfg.Catalog.Timeout,
		ExportDir:    cfg.Export.Dir,
		ExportFormat: cfg.Export.Format,
		Logger:       logger.Logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// serveMetrics exposes /metrics on addr until the returned stop is called
func serveMetrics(addr string, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics available", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("metrics shutdown failed", "error", err)
		}
	}
}
