package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
)

type arena struct {
	*harness
	player world.EntityID
	cs     *CollisionSystem
}

func newArena(t *testing.T) *arena {
	t.Helper()
	h := newHarness(t, testTypes(3), formationOnly)
	a := &arena{harness: h, cs: h.collisions()}
	a.player = SpawnPlayer(h.ws, h.bus, h.cfg)
	h.bus.Discard()
	return a
}

func (a *arena) enemy(shields int, at physics.Vec) world.EntityID {
	typ := &data.EnemyType{Name: "probe", Shields: shields, Speed: 100}
	return a.ws.SpawnEnemy(typ, 0, at, true, 80, 60)
}

func (a *arena) shot(owner event.Owner, at physics.Vec) world.EntityID {
	return a.ws.SpawnProjectile(owner, at, physics.Vec{}, 30, 10)
}

func TestLastShieldEndsRun(t *testing.T) {
	a := newArena(t)
	a.ws.Game.PlayerShields = 1
	enemy := a.enemy(2, physics.Vec{X: -850})

	require.True(t, a.cs.Resolve(a.player, enemy))

	g := a.ws.Game
	assert.Equal(t, 0, g.PlayerShields)
	assert.False(t, g.PlayerAlive)
	assert.Equal(t, world.PhaseGameOver, g.Phase)
	assert.True(t, g.RestartArmed())
	assert.False(t, a.ws.Alive(a.player))
	assert.False(t, a.ws.Alive(enemy))

	events := a.bus.Flush()
	assert.Equal(t, 1, countEvents[event.GameOver](events))
	assert.Equal(t, 2, countEvents[event.Explosion](events), "one at the enemy, one at the player")
	assert.Equal(t, 2, countEvents[event.EntityDestroyed](events))
}

func TestPlayerHitCostsOneShield(t *testing.T) {
	a := newArena(t)
	start := a.ws.Game.PlayerShields
	shot := a.shot(event.OwnerEnemy, physics.Vec{X: -860, Y: 5})

	require.True(t, a.cs.Resolve(shot, a.player))

	assert.Equal(t, start-1, a.ws.Game.PlayerShields)
	assert.True(t, a.ws.Game.PlayerAlive)
	assert.True(t, a.ws.Alive(a.player))
	assert.False(t, a.ws.Alive(shot))

	events := a.bus.Flush()
	booms := eventsOf[event.Explosion](events)
	require.Len(t, booms, 1)
	assert.Equal(t, event.Vec{X: -860, Y: 5}, booms[0].Position)
	assert.Zero(t, countEvents[event.GameOver](events))
}

func TestEnemyDestroyedByLastShield(t *testing.T) {
	a := newArena(t)
	enemy := a.enemy(1, physics.Vec{X: 100, Y: 80})
	shot := a.shot(event.OwnerPlayer, physics.Vec{X: 90, Y: 80})

	require.True(t, a.cs.Resolve(shot, enemy))

	assert.False(t, a.ws.Alive(enemy))
	assert.False(t, a.ws.Alive(shot))

	events := a.bus.Flush()
	booms := eventsOf[event.Explosion](events)
	require.Len(t, booms, 2, "destruction flash plus hit flash")
	for _, b := range booms {
		assert.Equal(t, event.Vec{X: 100, Y: 80}, b.Position)
	}
	destroyed := eventsOf[event.EntityDestroyed](events)
	require.Len(t, destroyed, 2)
	assert.Equal(t, enemy, destroyed[0].EntityID)
	assert.Equal(t, shot, destroyed[1].EntityID)
}

func TestEnemySurvivesWithShieldsLeft(t *testing.T) {
	a := newArena(t)
	enemy := a.enemy(3, physics.Vec{X: 100})
	shot := a.shot(event.OwnerPlayer, physics.Vec{X: 90})

	require.True(t, a.cs.Resolve(enemy, shot))

	e, ok := a.ws.Enemies.Get(enemy)
	require.True(t, ok)
	assert.Equal(t, 2, e.Shields)
	assert.False(t, a.ws.Alive(shot))
	assert.Equal(t, 1, countEvents[event.Explosion](a.bus.Flush()))
}

func TestContactResolvesOnce(t *testing.T) {
	a := newArena(t)
	enemy := a.enemy(1, physics.Vec{X: 100})
	shot := a.shot(event.OwnerPlayer, physics.Vec{X: 90})

	require.True(t, a.cs.Resolve(enemy, shot))
	first := a.bus.Flush()

	assert.False(t, a.cs.Resolve(enemy, shot))
	assert.False(t, a.cs.Resolve(shot, enemy))
	assert.Zero(t, a.bus.Pending())
	assert.NotEmpty(t, first)
}

func TestResolveIgnoresSelfAndUnknown(t *testing.T) {
	a := newArena(t)
	enemy := a.enemy(1, physics.Vec{})
	assert.False(t, a.cs.Resolve(enemy, enemy))
	assert.False(t, a.cs.Resolve(enemy, world.EntityID(999)))
	assert.Zero(t, a.bus.Pending())
}

func TestResolveIsOrderIndependent(t *testing.T) {
	pairs := []struct {
		name string
		make func(a *arena) (world.EntityID, world.EntityID)
	}{
		{"player-enemy", func(a *arena) (world.EntityID, world.EntityID) {
			return a.player, a.enemy(2, physics.Vec{X: -800})
		}},
		{"enemy-player weapon", func(a *arena) (world.EntityID, world.EntityID) {
			return a.enemy(1, physics.Vec{X: 50}), a.shot(event.OwnerPlayer, physics.Vec{X: 40})
		}},
		{"weapons", func(a *arena) (world.EntityID, world.EntityID) {
			return a.shot(event.OwnerEnemy, physics.Vec{X: 10}), a.shot(event.OwnerPlayer, physics.Vec{X: 20})
		}},
		{"debris-player", func(a *arena) (world.EntityID, world.EntityID) {
			return a.ws.SpawnDebris(physics.Vec{X: -870}, 10, 10), a.player
		}},
		{"enemy-enemy", func(a *arena) (world.EntityID, world.EntityID) {
			return a.enemy(1, physics.Vec{X: 300}), a.enemy(1, physics.Vec{X: 310})
		}},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			fwd := newArena(t)
			x, y := tc.make(fwd)
			fwd.cs.Resolve(x, y)

			rev := newArena(t)
			x, y = tc.make(rev)
			rev.cs.Resolve(y, x)

			assert.Equal(t, fwd.bus.Flush(), rev.bus.Flush())
			assert.Equal(t, *fwd.ws.Game, *rev.ws.Game)
			assert.Equal(t, fwd.ws.LiveIDs(), rev.ws.LiveIDs())
		})
	}
}

func TestWeaponsCancelOut(t *testing.T) {
	a := newArena(t)
	enemyShot := a.shot(event.OwnerEnemy, physics.Vec{X: 10})
	playerShot := a.shot(event.OwnerPlayer, physics.Vec{X: 20})

	require.True(t, a.cs.Resolve(enemyShot, playerShot))

	assert.False(t, a.ws.Alive(enemyShot))
	assert.False(t, a.ws.Alive(playerShot))
	booms := eventsOf[event.Explosion](a.bus.Flush())
	require.Len(t, booms, 1)
	assert.Equal(t, event.Vec{X: 20}, booms[0].Position, "explodes at the player weapon")
}

func TestEnemyOnEnemyHitsLowerID(t *testing.T) {
	a := newArena(t)
	low := a.enemy(2, physics.Vec{X: 300})
	high := a.enemy(2, physics.Vec{X: 310})

	a.cs.Resolve(high, low)

	e, ok := a.ws.Enemies.Get(low)
	require.True(t, ok, "lower id is the enemy that takes the hit")
	assert.Equal(t, 1, e.Shields)
	assert.False(t, a.ws.Alive(high))
}

func TestGameOverFiresOncePerRun(t *testing.T) {
	a := newArena(t)
	a.ws.Game.PlayerShields = 1
	e1 := a.enemy(1, physics.Vec{X: -860, Y: 10})
	e2 := a.enemy(1, physics.Vec{X: -860, Y: -10})

	a.ws.Host.Contacts = []physics.Contact{{A: a.player, B: e1}, {A: e2, B: a.player}}
	a.cs.Update(tick(0))

	events := a.bus.Flush()
	assert.Equal(t, 1, countEvents[event.GameOver](events))
	assert.Equal(t, 0, a.ws.Game.PlayerShields)
	assert.True(t, a.ws.Alive(e2), "contact with a dead player is dropped")
}

func TestDeadPlayerTakesNoDamage(t *testing.T) {
	a := newArena(t)
	a.ws.Game.EndRun()
	shields := a.ws.Game.PlayerShields
	shot := a.shot(event.OwnerEnemy, physics.Vec{X: -860})

	a.cs.Resolve(a.player, shot)

	assert.Equal(t, shields, a.ws.Game.PlayerShields)
	assert.True(t, a.ws.Alive(shot))
	assert.Zero(t, a.bus.Pending())
}

func TestBuiltinDetectorFeedsResolver(t *testing.T) {
	h := newHarness(t, testTypes(1), formationOnly)
	cs := NewCollisionSystem(h.ws, h.bus, true, zapNop())
	enemy := h.ws.SpawnEnemy(&data.EnemyType{Name: "probe", Shields: 1, Speed: 1}, 0, physics.Vec{X: 100}, true, 80, 60)
	shot := h.ws.SpawnProjectile(event.OwnerPlayer, physics.Vec{X: 120}, physics.Vec{}, 30, 10)
	far := h.ws.SpawnProjectile(event.OwnerPlayer, physics.Vec{X: 800}, physics.Vec{}, 30, 10)

	cs.Update(tick(0))

	assert.False(t, h.ws.Alive(enemy))
	assert.False(t, h.ws.Alive(shot))
	assert.True(t, h.ws.Alive(far))
}
