package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tuido/internal/app"
	"github.com/sandeepkv93/tuido/internal/storage"
	"github.com/sandeepkv93/tuido/internal/update"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	storePath   string
	backend     string
	logFile     string
	noAltScreen bool
}

func main() {
	if err := newRootCmd(&rootOptions{}).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tuido",
		Short:        "Manage tasks grouped into projects in a terminal UI",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.runtimeConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&opts.storePath, "store", "", "Store file path (default: OS user config dir)")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "Store backend: json or sqlite")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Log file path, - disables logging")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "Render inline instead of on the alternate screen")

	return cmd
}

// runtimeConfig layers flags over environment over defaults.
func (o *rootOptions) runtimeConfig(cmd *cobra.Command) (update.RuntimeConfig, error) {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.StorePath = o.storePath
	}
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("log-file") {
		cfg.LogPath = o.logFile
	}
	if o.noAltScreen {
		cfg.AltScreen = false
	}
	return cfg.Resolve()
}

// openLogger returns a text logger writing to path. The terminal belongs to
// the UI, so nothing is logged to stderr.
func openLogger(path string) (*slog.Logger, func() error, error) {
	if path == update.LogDisabled {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, f.Close, nil
}

func run(ctx context.Context, cfg update.RuntimeConfig) error {
	logger, closeLog, err := openLogger(cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	backend, err := storage.ParseBackend(cfg.Backend)
	if err != nil {
		return err
	}
	store, err := storage.Open(ctx, backend, cfg.StorePath, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", "err", err)
		}
	}()
	logger.Info("starting", "version", version, "backend", backend, "store", store.Path())

	a, err := app.Bootstrap(ctx, store, logger)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(update.NewModelWithConfig(a, store, logger, cfg), opts...).Run()
	if err != nil {
		logger.Error("tui exited", "err", err)
		return fmt.Errorf("run tui: %w", err)
	}
	// The quit key already saved; anything else that stopped the loop has not.
	if m, ok := final.(update.Model); !ok || !m.Quitting {
		if err := a.Save(ctx, store); err != nil {
			logger.Error("final save failed", "err", err)
			return err
		}
	}
	return nil
}
