// zaptastic plays the simulation in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/logging"
	"github.com/zaptastic/core/internal/sim"
	"github.com/zaptastic/core/internal/tui"
)

const defaultLogFile = "zaptastic.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads ZAPTASTIC_CONFIG when set, otherwise the built-in defaults.
func loadConfig() (*config.Config, error) {
	if p := os.Getenv("ZAPTASTIC_CONFIG"); p != "" {
		return config.Load(p)
	}
	return config.Default(), nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// The terminal belongs to the renderer.
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	catalog, err := data.Load(cfg.Content.EnemyTypes, cfg.Content.Waves, len(cfg.Spawn.Lanes))
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := sim.New(cfg, catalog, log.Named("sim"))
	host := tui.New(screen, s, cfg, log.Named("tui"))
	err = host.Run(ctx)
	log.Info("session ended", zap.Duration("played", s.Now()))
	return err
}
