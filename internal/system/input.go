package system

import (
	"math"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/event"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
	"go.uber.org/zap"
)

type intentKind int

const (
	intentFire intentKind = iota
	intentSteer
	intentRestart
)

type intent struct {
	kind  intentKind
	value float64
}

// Inbox queues host intents between ticks. Hosts never touch world state
// directly; they only push here.
type Inbox struct {
	queue []intent
}

func (in *Inbox) Fire()    { in.queue = append(in.queue, intent{kind: intentFire}) }
func (in *Inbox) Restart() { in.queue = append(in.queue, intent{kind: intentRestart}) }

// Steer asks for the player's vertical position as a fraction of the
// playfield height, 0 = bottom, 1 = top.
func (in *Inbox) Steer(normalized float64) {
	in.queue = append(in.queue, intent{kind: intentSteer, value: normalized})
}

func (in *Inbox) Len() int { return len(in.queue) }

// InputSystem applies queued intents in arrival order. Phase 0 (Input).
type InputSystem struct {
	ws    *world.State
	bus   *event.Bus
	inbox *Inbox
	cfg   *config.Config
	log   *zap.Logger
}

func NewInputSystem(ws *world.State, bus *event.Bus, inbox *Inbox, cfg *config.Config, log *zap.Logger) *InputSystem {
	return &InputSystem{ws: ws, bus: bus, inbox: inbox, cfg: cfg, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ coresys.Tick) {
	for _, in := range s.inbox.queue {
		switch in.kind {
		case intentFire:
			s.fire()
		case intentSteer:
			s.steer(in.value)
		case intentRestart:
			s.restart()
		}
	}
	s.inbox.queue = s.inbox.queue[:0]
}

func (s *InputSystem) fire() {
	if !s.ws.Game.PlayerAlive {
		return
	}
	_, body, ok := s.ws.Player()
	if !ok {
		return
	}
	w := s.cfg.Weapons
	id := s.ws.SpawnProjectile(event.OwnerPlayer, body.Pos, physics.Vec{X: w.PlayerSpeed}, w.Width, w.Height)
	event.Emit(s.bus, event.ProjectileSpawned{EntityID: id, Owner: event.OwnerPlayer, Position: event.Vec(body.Pos)})
}

func (s *InputSystem) steer(v float64) {
	if !s.ws.Game.PlayerAlive || math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	_, body, ok := s.ws.Player()
	if !ok {
		return
	}
	v = min(max(v, 0), 1)
	pf := s.cfg.Playfield
	body.Pos.Y = pf.MinY + v*pf.Height()
}

func (s *InputSystem) restart() {
	if !s.ws.Game.RestartArmed() {
		s.log.Debug("restart ignored while playing")
		return
	}
	RestartGame(s.ws, s.bus, s.cfg)
	s.log.Info("game restarted")
}

// RestartGame clears every live entity, resets the counters and spawns a
// fresh player. Callers must check Game.RestartArmed first.
func RestartGame(ws *world.State, bus *event.Bus, cfg *config.Config) {
	for _, id := range ws.LiveIDs() {
		despawn(ws, bus, id, event.ReasonRestart)
	}
	ws.Game.Restart()
	event.Emit(bus, event.GameRestarted{})
	SpawnPlayer(ws, bus, cfg)
}

// SpawnPlayer places the player at its configured x, vertically centred.
func SpawnPlayer(ws *world.State, bus *event.Bus, cfg *config.Config) world.EntityID {
	pf := cfg.Playfield
	pos := physics.Vec{X: cfg.Player.X, Y: (pf.MinY + pf.MaxY) / 2}
	id := ws.SpawnPlayer(pos, cfg.Player.Width, cfg.Player.Height)
	event.Emit(bus, event.PlayerSpawned{EntityID: id, Position: event.Vec(pos)})
	return id
}
