// Package tui is a terminal host for the simulation. It maps scene
// coordinates onto the terminal grid, turns keys into intents and renders
// events as they come back.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/sim"
	"github.com/zaptastic/core/internal/world"
)

const (
	steerStep     = 0.05
	flashFrames   = 6
	eventBacklog  = 100
	hudRows       = 1
	gameOverTitle = "GAME OVER"
	gameOverHint  = "press r to restart, q to quit"
)

type flash struct {
	pos  event.Vec
	left int
}

// Host drives one simulation from a tcell screen. All fields are touched
// only from the Run goroutine.
type Host struct {
	screen tcell.Screen
	sim    *sim.Simulation
	pf     config.PlayfieldConfig
	rate   time.Duration
	log    *zap.Logger

	title   cases.Caser
	printer *message.Printer

	steer    float64
	flashes  []flash
	names    map[world.EntityID]string
	wave     int
	kills    int
	lastKill string
	over     bool
}

// New wires a host to s. The screen must already be initialised.
func New(screen tcell.Screen, s *sim.Simulation, cfg *config.Config, log *zap.Logger) *Host {
	h := &Host{
		screen:  screen,
		sim:     s,
		pf:      cfg.Playfield,
		rate:    cfg.Simulation.TickRate.Duration,
		log:     log,
		title:   cases.Title(language.English),
		printer: message.NewPrinter(language.English),
		steer:   0.5,
		names:   make(map[world.EntityID]string),
	}
	sim.Subscribe(s, h.onEnemySpawned)
	sim.Subscribe(s, h.onDestroyed)
	sim.Subscribe(s, h.onExplosion)
	sim.Subscribe(s, func(ev event.WaveSpawned) { h.wave = ev.Wave })
	sim.Subscribe(s, func(event.GameOver) { h.over = true })
	sim.Subscribe(s, h.onRestarted)
	sim.Subscribe(s, func(ev event.LevelChanged) { h.log.Info("level reached", zap.Int("level", ev.Level)) })
	return h
}

func (h *Host) onEnemySpawned(ev event.EnemySpawned) {
	h.names[ev.EntityID] = ev.TypeName
}

func (h *Host) onDestroyed(ev event.EntityDestroyed) {
	name, ok := h.names[ev.EntityID]
	if !ok {
		return
	}
	delete(h.names, ev.EntityID)
	if ev.Reason == event.ReasonCollision {
		h.kills++
		h.lastKill = h.title.String(name)
	}
}

func (h *Host) onExplosion(ev event.Explosion) {
	h.flashes = append(h.flashes, flash{pos: ev.Position, left: flashFrames})
}

func (h *Host) onRestarted(event.GameRestarted) {
	h.over = false
	h.kills = 0
	h.lastKill = ""
	h.steer = 0.5
	h.flashes = h.flashes[:0]
}

// Run ticks the simulation at the configured rate until ctx is cancelled or
// the player quits.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.rate)
	defer ticker.Stop()

	events := make(chan tcell.Event, eventBacklog)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// Frame advances the simulation one fixed step and redraws.
func (h *Host) Frame() {
	h.sim.Step(h.rate)
	h.Draw(h.sim.Snapshot())
	h.age()
}

func (h *Host) age() {
	kept := h.flashes[:0]
	for _, f := range h.flashes {
		f.left--
		if f.left > 0 {
			kept = append(kept, f)
		}
	}
	h.flashes = kept
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.nudge(steerStep)
	case tcell.KeyDown:
		h.nudge(-steerStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			h.sim.FireWeapon()
		case 'k':
			h.nudge(steerStep)
		case 'j':
			h.nudge(-steerStep)
		case 'r':
			if h.over {
				h.sim.Restart()
			}
		}
	}
	return true
}

func (h *Host) nudge(delta float64) {
	h.steer = min(max(h.steer+delta, 0), 1)
	h.sim.Steer(h.steer)
}
