package world

import (
	"time"

	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/physics"
)

// Body is the spatial component shared by every entity kind.
type Body struct {
	Category physics.Category
	Pos      physics.Vec
	Vel      physics.Vec // units per second; enemies derive theirs from their type
	W, H     float64
	Synced   bool // position came from the host this tick
}

func (b *Body) Box() physics.AABB {
	return physics.Box(b.Pos, b.W, b.H)
}

// Enemy is the per-instance agent state of one spawned enemy.
type Enemy struct {
	Type         *data.EnemyType // shared, read-only
	Tier         int
	Shields      int
	MoveStraight bool
	LaneY        float64       // weave baseline
	Traveled     float64       // horizontal distance covered since spawn
	LastFire     time.Duration // session time of the last fire decision
}

// ReadyToFire applies the fire cooldown. When more than cooldown has passed
// since the last decision it records now and returns true; the caller then
// rolls whether a shot is actually emitted.
func (e *Enemy) ReadyToFire(now, cooldown time.Duration) bool {
	if now-e.LastFire <= cooldown {
		return false
	}
	e.LastFire = now
	return true
}

// Hit removes one shield and reports whether the enemy is destroyed.
func (e *Enemy) Hit() bool {
	if e.Shields > 0 {
		e.Shields--
	}
	return e.Shields == 0
}

// Projectile marks a weapon shot.
type Projectile struct {
	Owner event.Owner
}

// EntityFrame is a host-reported position for one entity.
type EntityFrame struct {
	ID       EntityID
	Position physics.Vec
}

// HostFrame is what the host hands the simulation for one tick.
type HostFrame struct {
	Entities []EntityFrame
	Contacts []physics.Contact
}
