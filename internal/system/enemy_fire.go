package system

import (
	"time"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/ecs"
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/core/rng"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
)

// EnemyFireSystem lets every visible enemy decide whether to shoot. An
// enemy re-decides at most once per cooldown and fires on a 1-in-odds roll.
// Phase 4 (Agents).
type EnemyFireSystem struct {
	ws       *world.State
	bus      *event.Bus
	rng      *rng.Source
	view     physics.AABB
	cooldown time.Duration
	odds     int
	weapons  config.WeaponsConfig
}

func NewEnemyFireSystem(ws *world.State, bus *event.Bus, src *rng.Source, cfg *config.Config) *EnemyFireSystem {
	pf := cfg.Playfield
	return &EnemyFireSystem{
		ws:       ws,
		bus:      bus,
		rng:      src,
		view:     physics.AABB{Min: physics.Vec{X: pf.MinX, Y: pf.MinY}, Max: physics.Vec{X: pf.MaxX, Y: pf.MaxY}},
		cooldown: cfg.Enemy.FireCooldown.Duration,
		odds:     cfg.Enemy.FireOdds,
		weapons:  cfg.Weapons,
	}
}

func (s *EnemyFireSystem) Phase() coresys.Phase { return coresys.PhaseAgents }

func (s *EnemyFireSystem) Update(t coresys.Tick) {
	ecs.Each2(s.ws.Enemies, s.ws.Bodies, func(_ world.EntityID, e *world.Enemy, b *world.Body) {
		if !b.Box().Intersects(s.view) {
			return
		}
		if !e.ReadyToFire(t.Now, s.cooldown) {
			return
		}
		if s.rng.OneIn(s.odds) {
			s.fire(b.Pos)
		}
	})
}

func (s *EnemyFireSystem) fire(from physics.Vec) {
	id := s.ws.SpawnProjectile(event.OwnerEnemy, from, physics.Vec{X: -s.weapons.EnemySpeed}, s.weapons.Width, s.weapons.Height)
	event.Emit(s.bus, event.ProjectileSpawned{EntityID: id, Owner: event.OwnerEnemy, Position: event.Vec(from)})
}
