package system

import (
	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/event"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
	"go.uber.org/zap"
)

// CleanupSystem removes entities that have left the playfield for good:
// anything fully past the left edge, player shots fully past the right edge,
// and anything fully above or below. Enemies queued beyond the right edge
// are still on their way in and stay. Phase 2 (Cull).
type CleanupSystem struct {
	ws  *world.State
	bus *event.Bus
	pf  config.PlayfieldConfig
	log *zap.Logger
}

func NewCleanupSystem(ws *world.State, bus *event.Bus, pf config.PlayfieldConfig, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{ws: ws, bus: bus, pf: pf, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCull }

func (s *CleanupSystem) Update(_ coresys.Tick) {
	removed := 0
	s.ws.Bodies.Each(func(id world.EntityID, b *world.Body) {
		if b.Category == physics.CategoryPlayer || !s.gone(b) {
			return
		}
		if despawn(s.ws, s.bus, id, event.ReasonOffscreen) {
			removed++
		}
	})
	if removed > 0 {
		s.log.Debug("culled offscreen entities", zap.Int("count", removed), zap.Int("enemies_left", s.ws.EnemyCount()))
	}
}

func (s *CleanupSystem) gone(b *world.Body) bool {
	box := b.Box()
	switch {
	case box.Max.X < s.pf.MinX:
		return true
	case box.Max.Y < s.pf.MinY || box.Min.Y > s.pf.MaxY:
		return true
	case b.Category == physics.CategoryPlayerWeapon && box.Min.X > s.pf.MaxX:
		return true
	}
	return false
}
