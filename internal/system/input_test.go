package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/physics"
)

func TestFireSpawnsPlayerShot(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	inbox := &Inbox{}
	in := NewInputSystem(h.ws, h.bus, inbox, h.cfg, zap.NewNop())
	SpawnPlayer(h.ws, h.bus, h.cfg)
	h.bus.Discard()

	inbox.Fire()
	in.Update(tick(0))

	assert.Zero(t, inbox.Len())
	shots := eventsOf[event.ProjectileSpawned](h.bus.Flush())
	require.Len(t, shots, 1)
	assert.Equal(t, event.OwnerPlayer, shots[0].Owner)
	assert.Equal(t, event.Vec{X: h.cfg.Player.X}, shots[0].Position)
}

func TestDeadPlayerCannotFireOrSteer(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	inbox := &Inbox{}
	in := NewInputSystem(h.ws, h.bus, inbox, h.cfg, zap.NewNop())
	SpawnPlayer(h.ws, h.bus, h.cfg)
	h.ws.Game.EndRun()

	inbox.Fire()
	inbox.Steer(1)
	in.Update(tick(0))

	assert.Zero(t, h.ws.Projectiles.Len())
	_, b, ok := h.ws.Player()
	require.True(t, ok)
	assert.Equal(t, 0.0, b.Pos.Y)
}

func TestSteerMapsAndClamps(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	inbox := &Inbox{}
	in := NewInputSystem(h.ws, h.bus, inbox, h.cfg, zap.NewNop())
	SpawnPlayer(h.ws, h.bus, h.cfg)
	pf := h.cfg.Playfield

	cases := []struct {
		in, want float64
	}{
		{0, pf.MinY},
		{1, pf.MaxY},
		{0.5, 0},
		{-3, pf.MinY},
		{7, pf.MaxY},
	}
	for _, tc := range cases {
		inbox.Steer(tc.in)
		in.Update(tick(0))
		_, b, _ := h.ws.Player()
		assert.Equal(t, tc.want, b.Pos.Y, "steer %v", tc.in)
	}
}

func TestSteerIgnoresNonFinite(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	inbox := &Inbox{}
	in := NewInputSystem(h.ws, h.bus, inbox, h.cfg, zap.NewNop())
	SpawnPlayer(h.ws, h.bus, h.cfg)

	inbox.Steer(0.75)
	in.Update(tick(0))
	_, b, _ := h.ws.Player()
	want := b.Pos.Y

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		inbox.Steer(v)
		in.Update(tick(0))
		assert.Equal(t, want, b.Pos.Y, "steer %v", v)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	inbox := &Inbox{}
	in := NewInputSystem(h.ws, h.bus, inbox, h.cfg, zap.NewNop())
	player := SpawnPlayer(h.ws, h.bus, h.cfg)
	h.ws.Game.Level = 2
	h.bus.Discard()

	inbox.Restart()
	in.Update(tick(0))

	assert.Equal(t, 2, h.ws.Game.Level)
	assert.True(t, h.ws.Alive(player))
	assert.Zero(t, h.bus.Pending())
}

func TestRestartClearsField(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	inbox := &Inbox{}
	in := NewInputSystem(h.ws, h.bus, inbox, h.cfg, zap.NewNop())
	old := SpawnPlayer(h.ws, h.bus, h.cfg)
	enemy := h.ws.SpawnEnemy(&data.EnemyType{Name: "x", Shields: 1, Speed: 1}, 0, physics.Vec{X: 300}, true, 80, 60)
	h.ws.Game.Level, h.ws.Game.Wave, h.ws.Game.PlayerShields = 3, 2, 0
	h.ws.Game.EndRun()
	h.bus.Discard()

	inbox.Restart()
	inbox.Restart()
	in.Update(tick(0))

	g := h.ws.Game
	assert.Equal(t, 0, g.Level)
	assert.Equal(t, 0, g.Wave)
	assert.Equal(t, h.cfg.Player.Shields, g.PlayerShields)
	assert.True(t, g.PlayerAlive)
	assert.False(t, g.RestartArmed())
	assert.False(t, h.ws.Alive(old))
	assert.False(t, h.ws.Alive(enemy))
	assert.Zero(t, h.ws.EnemyCount())
	assert.Equal(t, 1, h.ws.LiveCount())

	events := h.bus.Flush()
	assert.Equal(t, 1, countEvents[event.GameRestarted](events), "second restart is ignored once disarmed")
	assert.Equal(t, 1, countEvents[event.PlayerSpawned](events))
}
