package world

import (
	"github.com/zaptastic/core/internal/core/ecs"
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/physics"
)

type EntityID = ecs.EntityID

// State is the simulation's arena: every live entity keyed by a generational
// id, with one typed store per entity kind, plus the game counters.
// Single-goroutine access only (tick loop).
type State struct {
	arena       *ecs.World
	Bodies      *ecs.PtrComponentStore[Body]
	Enemies     *ecs.PtrComponentStore[Enemy]
	Projectiles *ecs.PtrComponentStore[Projectile]

	Game *Game

	// Host input for the tick in progress; cleared after every tick.
	Host HostFrame

	player EntityID
}

func NewState(playerShields int) *State {
	s := &State{
		arena:       ecs.NewWorld(),
		Bodies:      ecs.NewPtrComponentStore[Body](),
		Enemies:     ecs.NewPtrComponentStore[Enemy](),
		Projectiles: ecs.NewPtrComponentStore[Projectile](),
		Game:        NewGame(playerShields),
	}
	reg := s.arena.Registry()
	reg.Register(s.Bodies)
	reg.Register(s.Enemies)
	reg.Register(s.Projectiles)
	return s
}

// SpawnPlayer creates the player entity. Any previous player is replaced.
func (s *State) SpawnPlayer(pos physics.Vec, w, h float64) EntityID {
	if s.arena.Alive(s.player) {
		s.arena.Destroy(s.player)
	}
	id := s.arena.CreateEntity()
	s.Bodies.Set(id, &Body{Category: physics.CategoryPlayer, Pos: pos, W: w, H: h})
	s.player = id
	return id
}

// Player returns the live player entity, if any.
func (s *State) Player() (EntityID, *Body, bool) {
	if !s.arena.Alive(s.player) {
		return 0, nil, false
	}
	b, ok := s.Bodies.Get(s.player)
	return s.player, b, ok
}

func (s *State) SpawnEnemy(t *data.EnemyType, tier int, pos physics.Vec, moveStraight bool, w, h float64) EntityID {
	id := s.arena.CreateEntity()
	s.Bodies.Set(id, &Body{
		Category: physics.CategoryEnemy,
		Pos:      pos,
		Vel:      physics.Vec{X: -t.Speed},
		W:        w,
		H:        h,
	})
	s.Enemies.Set(id, &Enemy{
		Type:         t,
		Tier:         tier,
		Shields:      t.Shields,
		MoveStraight: moveStraight,
		LaneY:        pos.Y,
	})
	return id
}

func (s *State) SpawnProjectile(owner event.Owner, pos, vel physics.Vec, w, h float64) EntityID {
	cat := physics.CategoryPlayerWeapon
	if owner == event.OwnerEnemy {
		cat = physics.CategoryEnemyWeapon
	}
	id := s.arena.CreateEntity()
	s.Bodies.Set(id, &Body{Category: cat, Pos: pos, Vel: vel, W: w, H: h})
	s.Projectiles.Set(id, &Projectile{Owner: owner})
	return id
}

// SpawnDebris creates an untagged body. The simulation never spawns one
// itself; it is a hook for code embedding world.State directly.
func (s *State) SpawnDebris(pos physics.Vec, w, h float64) EntityID {
	id := s.arena.CreateEntity()
	s.Bodies.Set(id, &Body{Category: physics.CategoryNone, Pos: pos, W: w, H: h})
	return id
}

// Destroy removes the entity immediately. It returns false if the entity was
// already gone, which makes repeated destroys for one collision harmless.
func (s *State) Destroy(id EntityID) bool {
	return s.arena.Destroy(id)
}

func (s *State) Alive(id EntityID) bool {
	return s.arena.Alive(id)
}

// EnemyCount is the number of live enemies.
func (s *State) EnemyCount() int {
	return s.Enemies.Len()
}

// LiveCount is the number of live entities of every kind.
func (s *State) LiveCount() int {
	return s.arena.Pool().Live()
}

// Category returns the collision tag of a live entity.
func (s *State) Category(id EntityID) (physics.Category, bool) {
	b, ok := s.Bodies.Get(id)
	if !ok {
		return physics.CategoryNone, false
	}
	return b.Category, true
}

// Position returns the centre of a live entity.
func (s *State) Position(id EntityID) (physics.Vec, bool) {
	b, ok := s.Bodies.Get(id)
	if !ok {
		return physics.Vec{}, false
	}
	return b.Pos, true
}

// LiveIDs returns every live entity id in ascending order.
func (s *State) LiveIDs() []EntityID {
	return s.Bodies.IDs()
}

// PhysicsBodies returns the detector view of every live entity.
func (s *State) PhysicsBodies() []physics.Body {
	out := make([]physics.Body, 0, s.Bodies.Len())
	s.Bodies.Each(func(id EntityID, b *Body) {
		out = append(out, physics.Body{ID: id, Category: b.Category, Box: b.Box()})
	})
	return out
}
