// Package sim is the host-facing simulation core. A host pushes intents,
// calls Tick once per rendered frame and renders the returned events.
package sim

import (
	"time"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/core/rng"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/system"
	"github.com/zaptastic/core/internal/world"
	"go.uber.org/zap"
)

// Frame is one step of host input.
type Frame struct {
	Elapsed time.Duration
	Now     time.Duration // absolute session time

	// Entities optionally overrides positions for this tick.
	Entities []world.EntityFrame
	// Contacts are pairs reported by an external physics backend.
	Contacts []physics.Contact
}

// Simulation owns the world state and runs the systems. Not safe for
// concurrent use: hosts call it from a single loop goroutine.
type Simulation struct {
	cfg     *config.Config
	catalog *data.Catalog
	ws      *world.State
	bus     *event.Bus
	inbox   *system.Inbox
	rng     *rng.Source
	runner  *coresys.Runner
	waves   *system.WaveSystem
	collide *system.CollisionSystem
	log     *zap.Logger

	now time.Duration
}

// New builds a simulation and spawns the player. The PlayerSpawned event is
// delivered by the first Tick.
func New(cfg *config.Config, catalog *data.Catalog, log *zap.Logger) *Simulation {
	src := rng.New(cfg.Simulation.Seed)
	ws := world.NewState(cfg.Player.Shields)
	bus := event.NewBus()
	inbox := &system.Inbox{}

	s := &Simulation{
		cfg:     cfg,
		catalog: catalog,
		ws:      ws,
		bus:     bus,
		inbox:   inbox,
		rng:     src,
		runner:  coresys.NewRunner(),
		log:     log,
	}
	s.waves = system.NewWaveSystem(ws, bus, catalog, src, cfg, log.Named("wave"))
	s.collide = system.NewCollisionSystem(ws, bus, cfg.Physics.BuiltinContacts, log.Named("collision"))

	s.runner.Register(system.NewInputSystem(ws, bus, inbox, cfg, log.Named("input")))
	s.runner.Register(system.NewMotionSystem(ws, cfg.Enemy))
	s.runner.Register(system.NewCleanupSystem(ws, bus, cfg.Playfield, log.Named("cleanup")))
	s.runner.Register(s.waves)
	s.runner.Register(system.NewEnemyFireSystem(ws, bus, src, cfg))
	s.runner.Register(s.collide)

	system.SpawnPlayer(ws, bus, cfg)
	log.Info("simulation ready",
		zap.Int64("seed", src.Seed()),
		zap.Int("enemy_types", catalog.TypeCount()),
		zap.Int("waves", catalog.WaveCount()),
		zap.Int("lanes", len(cfg.Spawn.Lanes)),
	)
	return s
}

// FireWeapon queues a player shot. Ignored unless the player is alive when
// the next tick applies it.
func (s *Simulation) FireWeapon() { s.inbox.Fire() }

// Steer queues a vertical move to normalized ∈ [0, 1] of the playfield height.
func (s *Simulation) Steer(normalized float64) { s.inbox.Steer(normalized) }

// Restart queues a restart. Honoured only after a game over.
func (s *Simulation) Restart() { s.inbox.Restart() }

// Tick runs one simulation step and returns the events it produced, in
// emission order. Subscribed handlers have already run when it returns.
func (s *Simulation) Tick(f Frame) []event.Event {
	s.now = f.Now
	s.ws.Host = world.HostFrame{Entities: f.Entities, Contacts: f.Contacts}
	s.runner.Tick(coresys.Tick{Elapsed: f.Elapsed, Now: f.Now})
	s.ws.Host = world.HostFrame{}
	return s.bus.Flush()
}

// Step advances the session clock by elapsed and ticks with no host input.
func (s *Simulation) Step(elapsed time.Duration) []event.Event {
	return s.Tick(Frame{Elapsed: elapsed, Now: s.now + elapsed})
}

// Now returns the session time of the last tick.
func (s *Simulation) Now() time.Duration { return s.now }

// Seed returns the seed of the shared random source.
func (s *Simulation) Seed() int64 { return s.rng.Seed() }

// Subscribe registers fn for every event of type T.
func Subscribe[T event.Event](s *Simulation, fn func(T)) {
	event.Subscribe(s.bus, fn)
}
