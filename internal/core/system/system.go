package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput     Phase = iota // 0: apply host intents (restart, fire, steer)
	PhaseMotion                 // 1: host frame sync + kinematics
	PhaseCull                   // 2: drop entities that left the playfield
	PhaseSpawn                  // 3: wave scheduling
	PhaseAgents                 // 4: per-enemy fire decisions
	PhaseCollision              // 5: contact resolution
)

// Tick is the clock handed to every system. Elapsed is the frame delta; Now
// is the absolute session time supplied by the host.
type Tick struct {
	Elapsed time.Duration
	Now     time.Duration
}

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(t Tick)
}
