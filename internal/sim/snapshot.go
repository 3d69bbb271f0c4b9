package sim

import (
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
)

// EntityView is a read-only copy of one live entity for renderers.
type EntityView struct {
	ID       world.EntityID
	Category physics.Category
	Position physics.Vec
	W, H     float64
	TypeName string // enemies only
	Tier     int    // enemies only
	Shields  int    // enemies only
}

// Snapshot is a read-only copy of the simulation state.
type Snapshot struct {
	Level         int
	Wave          int
	WaveCount     int
	PlayerShields int
	PlayerAlive   bool
	Phase         world.Phase
	Enemies       int
	Entities      []EntityView
}

func (s *Simulation) Snapshot() Snapshot {
	g := s.ws.Game
	snap := Snapshot{
		Level:         g.Level,
		Wave:          g.Wave,
		WaveCount:     s.catalog.WaveCount(),
		PlayerShields: g.PlayerShields,
		PlayerAlive:   g.PlayerAlive,
		Phase:         g.Phase,
		Enemies:       s.ws.EnemyCount(),
		Entities:      make([]EntityView, 0, s.ws.Bodies.Len()),
	}
	s.ws.Bodies.Each(func(id world.EntityID, b *world.Body) {
		v := EntityView{ID: id, Category: b.Category, Position: b.Pos, W: b.W, H: b.H}
		if e, ok := s.ws.Enemies.Get(id); ok {
			v.TypeName = e.Type.Name
			v.Tier = e.Tier
			v.Shields = e.Shields
		}
		snap.Entities = append(snap.Entities, v)
	})
	return snap
}
