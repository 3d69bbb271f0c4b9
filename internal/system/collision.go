package system

import (
	"sort"

	"github.com/zaptastic/core/internal/core/event"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
	"go.uber.org/zap"
)

// contactHandler resolves one canonical pair: first sorts before second.
type contactHandler func(s *CollisionSystem, first, second world.EntityID)

// tagRank orders categories by their tag string, untagged first. It is the
// total order used to canonicalise a contact pair.
var tagRank = func() map[physics.Category]int {
	cats := append([]physics.Category(nil), physics.Categories...)
	sort.Slice(cats, func(i, j int) bool { return cats[i].Tag() < cats[j].Tag() })
	rank := make(map[physics.Category]int, len(cats))
	for i, c := range cats {
		rank[c] = i
	}
	return rank
}()

// dispatch maps (rank(first), rank(second)) to a handler. Only the upper
// triangle is reachable after canonicalisation.
//
//	            untagged  enemy     enemy-wpn  player    player-wpn
//	untagged    mutual    mutual    mutual     player    mutual
//	enemy                 enemy     enemy      player    enemy
//	enemy-wpn                       mutual     player    mutual
//	player                                     player    mutual
//	player-wpn                                           mutual
var dispatch = [5][5]contactHandler{
	{(*CollisionSystem).mutualDestroy, (*CollisionSystem).mutualDestroy, (*CollisionSystem).mutualDestroy, (*CollisionSystem).hitPlayer, (*CollisionSystem).mutualDestroy},
	{nil, (*CollisionSystem).hitEnemy, (*CollisionSystem).hitEnemy, (*CollisionSystem).hitPlayer, (*CollisionSystem).hitEnemy},
	{nil, nil, (*CollisionSystem).mutualDestroy, (*CollisionSystem).hitPlayer, (*CollisionSystem).mutualDestroy},
	{nil, nil, nil, (*CollisionSystem).hitPlayer, (*CollisionSystem).mutualDestroy},
	{nil, nil, nil, nil, (*CollisionSystem).mutualDestroy},
}

// CollisionSystem turns contact events into damage, destruction and the
// game-over transition. Host-supplied contacts are resolved first, then the
// built-in AABB detector's when enabled. Phase 5 (Collision).
type CollisionSystem struct {
	ws      *world.State
	bus     *event.Bus
	builtin bool
	log     *zap.Logger
}

func NewCollisionSystem(ws *world.State, bus *event.Bus, builtin bool, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{ws: ws, bus: bus, builtin: builtin, log: log}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CollisionSystem) Update(_ coresys.Tick) {
	for _, c := range s.ws.Host.Contacts {
		s.Resolve(c.A, c.B)
	}
	if !s.builtin {
		return
	}
	for _, c := range physics.Detect(s.ws.PhysicsBodies()) {
		s.Resolve(c.A, c.B)
	}
}

// Resolve handles one contact between a and b, in either order. Contacts
// naming an entity that is already gone are ignored, so each physical
// collision resolves at most once. It reports whether anything happened.
func (s *CollisionSystem) Resolve(a, b world.EntityID) bool {
	if a == b {
		return false
	}
	catA, okA := s.ws.Category(a)
	catB, okB := s.ws.Category(b)
	if !okA || !okB {
		return false
	}

	first, second := a, b
	rankFirst, rankSecond := tagRank[catA], tagRank[catB]
	if rankFirst > rankSecond || (rankFirst == rankSecond && a > b) {
		first, second = b, a
		rankFirst, rankSecond = rankSecond, rankFirst
	}

	if ce := s.log.Check(zap.DebugLevel, "contact"); ce != nil {
		catFirst, _ := s.ws.Category(first)
		catSecond, _ := s.ws.Category(second)
		ce.Write(
			zap.Uint64("first", uint64(first)),
			zap.Stringer("first_cat", catFirst),
			zap.Uint64("second", uint64(second)),
			zap.Stringer("second_cat", catSecond),
		)
	}
	dispatch[rankFirst][rankSecond](s, first, second)
	return true
}

// hitPlayer: second is the player. The other party explodes and is
// destroyed; the player loses a shield and dies at zero.
func (s *CollisionSystem) hitPlayer(first, second world.EntityID) {
	g := s.ws.Game
	if !g.PlayerAlive {
		return
	}
	if pos, ok := s.ws.Position(first); ok {
		explode(s.bus, pos)
	}

	remaining, depleted := g.Damage()
	s.log.Debug("player hit", zap.Int("shields", remaining))
	if depleted {
		s.endRun(second)
	}
	despawn(s.ws, s.bus, first, event.ReasonCollision)
}

func (s *CollisionSystem) endRun(player world.EntityID) {
	if !s.ws.Game.EndRun() {
		return
	}
	if pos, ok := s.ws.Position(player); ok {
		explode(s.bus, pos)
	}
	despawn(s.ws, s.bus, player, event.ReasonCollision)
	event.Emit(s.bus, event.GameOver{})
	s.log.Info("game over",
		zap.Int("level", s.ws.Game.Level),
		zap.Int("wave", s.ws.Game.Wave),
	)
}

// hitEnemy: first is an enemy. It loses a shield and dies at zero; the hit
// always flashes and the other party is destroyed.
func (s *CollisionSystem) hitEnemy(first, second world.EntityID) {
	e, ok := s.ws.Enemies.Get(first)
	if !ok {
		return
	}
	pos, _ := s.ws.Position(first)
	if e.Hit() {
		explode(s.bus, pos)
		despawn(s.ws, s.bus, first, event.ReasonCollision)
		s.log.Debug("enemy destroyed", zap.String("type", e.Type.Name))
	}
	explode(s.bus, pos)
	despawn(s.ws, s.bus, second, event.ReasonCollision)
}

// mutualDestroy covers every other pairing: one explosion at second, both gone.
func (s *CollisionSystem) mutualDestroy(first, second world.EntityID) {
	if pos, ok := s.ws.Position(second); ok {
		explode(s.bus, pos)
	}
	despawn(s.ws, s.bus, first, event.ReasonCollision)
	despawn(s.ws, s.bus, second, event.ReasonCollision)
}
