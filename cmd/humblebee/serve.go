package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/humblebee/config"
	"github.com/lixenwraith/humblebee/launcher"
	"github.com/lixenwraith/humblebee/telemetry"
)

type serveOptions struct {
	addr string
}

// launchCommand resolves the command the launcher starts. With none configured
// the service runs this executable's play subcommand
func launchCommand(cfg config.LauncherConfig) (string, []string, error) {
	if cfg.Command != "" {
		return cfg.Command, cfg.Args, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", nil, fmt.Errorf("resolve executable: %w", err)
	}
	args := append([]string{}, cfg.Args...)
	return exe, append(args, "play"), nil
}

// watchedConfigPath is the explicit config, else the user config when present
func watchedConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := config.UserConfigPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.NewLoader(nil).Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.serve.addr != "" {
		cfg.Launcher.Addr = opts.serve.addr
	}

	level := parseLevel(cfg.Log.Level)
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	command, args, err := launchCommand(cfg.Launcher)
	if err != nil {
		return err
	}

	metrics := telemetry.NewMetrics()
	l := launcher.New(launcher.Options{
		Command:  command,
		Args:     args,
		History:  cfg.Launcher.History,
		Observer: metrics,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if path := watchedConfigPath(opts.configPath); path != "" {
		watcher, err := config.NewWatcher(path, config.NewLoader(logger), cfg, logger)
		if err != nil {
			logger.Warn("Config watcher unavailable", "error", err)
		} else if err := watcher.Start(ctx); err != nil {
			logger.Warn("Config watcher unavailable", "path", path, "error", err)
			watcher.Stop()
		} else {
			defer watcher.Stop()
			go applyLauncherUpdates(ctx, watcher.Updates(), l, logger)
		}
	}

	handler := launcher.NewRouter(launcher.NewHandler(l, logger), metrics.Handler())
	err = launcher.Serve(ctx, cfg.Launcher.Addr, handler, logger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyLauncherUpdates swaps the launch command when the config file changes.
// The listen address is fixed for the life of the process
func applyLauncherUpdates(ctx context.Context, updates <-chan *config.Config, l *launcher.Launcher, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case cfg := <-updates:
			command, args, err := launchCommand(cfg.Launcher)
			if err != nil {
				logger.Warn("Ignoring launcher update", "error", err)
				continue
			}
			l.SetCommand(command, args)
		}
	}
}
