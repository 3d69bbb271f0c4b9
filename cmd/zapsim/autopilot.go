package main

import (
	"time"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/sim"
	"github.com/zaptastic/core/internal/world"
)

// stats are tallied from events only.
type stats struct {
	Ticks      int
	Games      int
	MaxLevel   int
	Waves      int
	Kills      int
	Shots      int
	Explosions int
}

// autopilot steers toward the nearest visible enemy, fires on a fixed
// cadence and restarts after every game over.
type autopilot struct {
	sim       *sim.Simulation
	pf        config.PlayfieldConfig
	fireEvery int

	enemies map[world.EntityID]bool
	over    bool
	st      stats
}

func newAutopilot(s *sim.Simulation, pf config.PlayfieldConfig, fireEvery int) *autopilot {
	p := &autopilot{
		sim:       s,
		pf:        pf,
		fireEvery: max(fireEvery, 1),
		enemies:   make(map[world.EntityID]bool),
		st:        stats{Games: 1},
	}
	sim.Subscribe(s, func(ev event.EnemySpawned) { p.enemies[ev.EntityID] = true })
	sim.Subscribe(s, func(ev event.EntityDestroyed) {
		if p.enemies[ev.EntityID] && ev.Reason == event.ReasonCollision {
			p.st.Kills++
		}
		delete(p.enemies, ev.EntityID)
	})
	sim.Subscribe(s, func(ev event.WaveSpawned) {
		p.st.Waves++
		p.st.MaxLevel = max(p.st.MaxLevel, ev.Level)
	})
	sim.Subscribe(s, func(ev event.ProjectileSpawned) {
		if ev.Owner == event.OwnerPlayer {
			p.st.Shots++
		}
	})
	sim.Subscribe(s, func(event.Explosion) { p.st.Explosions++ })
	sim.Subscribe(s, func(event.GameOver) { p.over = true })
	sim.Subscribe(s, func(event.GameRestarted) {
		p.over = false
		p.st.Games++
	})
	return p
}

// Step queues this tick's intents and advances the simulation by elapsed.
func (p *autopilot) Step(elapsed time.Duration) {
	switch {
	case p.over:
		p.sim.Restart()
	default:
		if y, ok := p.target(); ok {
			p.sim.Steer((y - p.pf.MinY) / p.pf.Height())
		}
		if p.st.Ticks%p.fireEvery == 0 {
			p.sim.FireWeapon()
		}
	}
	p.sim.Step(elapsed)
	p.st.Ticks++
}

// target returns the y of the leftmost enemy inside the playfield.
func (p *autopilot) target() (float64, bool) {
	best, found := 0.0, false
	bestX := p.pf.MaxX
	for _, v := range p.sim.Snapshot().Entities {
		if v.Category != physics.CategoryEnemy || v.Position.X > p.pf.MaxX {
			continue
		}
		if !found || v.Position.X < bestX {
			best, bestX, found = v.Position.Y, v.Position.X, true
		}
	}
	return best, found
}

func (p *autopilot) Stats() stats { return p.st }
