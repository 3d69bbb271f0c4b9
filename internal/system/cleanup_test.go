package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/physics"
)

func TestCleanupRemovesLeavers(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	c := NewCleanupSystem(h.ws, h.bus, h.cfg.Playfield, zap.NewNop())
	typ := &data.EnemyType{Name: "x", Shields: 1, Speed: 1}

	pastLeft := h.ws.SpawnEnemy(typ, 0, physics.Vec{X: -1100}, true, 80, 60)
	incoming := h.ws.SpawnEnemy(typ, 0, physics.Vec{X: 2400}, true, 80, 60)
	onscreen := h.ws.SpawnEnemy(typ, 0, physics.Vec{X: 0}, true, 80, 60)
	escaped := h.ws.SpawnProjectile(event.OwnerPlayer, physics.Vec{X: 1000}, physics.Vec{}, 30, 10)
	enemyShot := h.ws.SpawnProjectile(event.OwnerEnemy, physics.Vec{X: 1000}, physics.Vec{}, 30, 10)
	above := h.ws.SpawnProjectile(event.OwnerEnemy, physics.Vec{Y: 600}, physics.Vec{}, 30, 10)
	player := SpawnPlayer(h.ws, h.bus, h.cfg)
	h.bus.Discard()

	c.Update(tick(0))

	assert.False(t, h.ws.Alive(pastLeft))
	assert.False(t, h.ws.Alive(escaped))
	assert.False(t, h.ws.Alive(above))
	assert.True(t, h.ws.Alive(incoming))
	assert.True(t, h.ws.Alive(onscreen))
	assert.True(t, h.ws.Alive(enemyShot))
	assert.True(t, h.ws.Alive(player))

	for _, d := range eventsOf[event.EntityDestroyed](h.bus.Flush()) {
		assert.Equal(t, event.ReasonOffscreen, d.Reason)
	}
}
