// zapsim runs the simulation headless under a simple autopilot and prints
// what happened. Useful for tuning content and checking determinism.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/logging"
	"github.com/zaptastic/core/internal/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Display helpers ────────────────────────────────────────────────

func printBanner(seed int64) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m             Zaptastic  zapsim             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        headless simulation runner         \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mseed:\033[0m %d\n\n", seed)
}

func printSection(title string) {
	lineLen := max(46-len(title)-1, 3)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := max(42-len(label)-len(numStr), 3)
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Runner ─────────────────────────────────────────────────────────

func run() error {
	cfgPath := flag.String("config", os.Getenv("ZAPTASTIC_CONFIG"), "TOML config path (defaults built in)")
	ticks := flag.Int("ticks", 3600, "number of ticks to simulate")
	seed := flag.Int64("seed", 0, "override the configured seed (0 keeps it)")
	fireEvery := flag.Int("fire-every", 8, "autopilot fires every n ticks")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
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

	s := sim.New(cfg, catalog, log.Named("sim"))
	printBanner(s.Seed())

	printSection("Content")
	printStat("enemy types", catalog.TypeCount())
	printStat("waves", catalog.WaveCount())
	printStat("lanes", len(cfg.Spawn.Lanes))
	fmt.Println()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	pilot := newAutopilot(s, cfg.Playfield, *fireEvery)

	printSection("Run")
	printReady(fmt.Sprintf("simulating %d ticks (tick: %s)", *ticks, cfg.Simulation.TickRate.Duration))
	fmt.Println()

loop:
	for i := 0; i < *ticks; i++ {
		select {
		case sig := <-shutdownCh:
			log.Info("interrupted", zap.String("signal", sig.String()), zap.Int("tick", i))
			break loop
		default:
		}
		pilot.Step(cfg.Simulation.TickRate.Duration)
	}

	st := pilot.Stats()
	printSection("Results")
	printStat("ticks", st.Ticks)
	printStat("games", st.Games)
	printStat("highest level", st.MaxLevel+1)
	printStat("waves spawned", st.Waves)
	printStat("enemies destroyed", st.Kills)
	printStat("shots fired", st.Shots)
	printStat("explosions", st.Explosions)
	fmt.Println()
	return nil
}
