package system

import (
	"math"

	"github.com/zaptastic/core/internal/config"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/world"
)

// MotionSystem applies host-reported positions, then advances everything the
// host did not report. Enemies fly left at their type's speed; enemies that
// do not move straight weave around their lane. Phase 1 (Motion).
type MotionSystem struct {
	ws  *world.State
	cfg config.EnemyConfig
}

func NewMotionSystem(ws *world.State, cfg config.EnemyConfig) *MotionSystem {
	return &MotionSystem{ws: ws, cfg: cfg}
}

func (s *MotionSystem) Phase() coresys.Phase { return coresys.PhaseMotion }

func (s *MotionSystem) Update(t coresys.Tick) {
	s.ws.Bodies.Each(func(_ world.EntityID, b *world.Body) { b.Synced = false })
	for _, f := range s.ws.Host.Entities {
		if b, ok := s.ws.Bodies.Get(f.ID); ok {
			b.Pos = f.Position
			b.Synced = true
		}
	}

	dt := t.Elapsed.Seconds()
	if dt <= 0 {
		return
	}

	s.ws.Bodies.Each(func(id world.EntityID, b *world.Body) {
		if b.Synced {
			return
		}
		e, isEnemy := s.ws.Enemies.Get(id)
		if !isEnemy {
			b.Pos = b.Pos.Add(b.Vel.Scale(dt))
			return
		}
		step := e.Type.Speed * dt
		e.Traveled += step
		b.Pos.X -= step
		if !e.MoveStraight && s.cfg.WeaveWavelength > 0 {
			b.Pos.Y = e.LaneY + s.cfg.WeaveAmplitude*math.Sin(2*math.Pi*e.Traveled/s.cfg.WeaveWavelength)
		}
	})
}
