package system

import (
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
)

// despawn destroys id and announces it. It returns false, emitting nothing,
// when the entity is already gone.
func despawn(ws *world.State, bus *event.Bus, id world.EntityID, reason event.DestroyReason) bool {
	if !ws.Destroy(id) {
		return false
	}
	event.Emit(bus, event.EntityDestroyed{EntityID: id, Reason: reason})
	return true
}

func explode(bus *event.Bus, at physics.Vec) {
	event.Emit(bus, event.Explosion{Position: event.Vec(at)})
}
