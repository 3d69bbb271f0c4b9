package event

import "github.com/zaptastic/core/internal/core/ecs"

// Event is the marker for everything the simulation emits to its host.
type Event interface {
	isEvent()
}

// Vec is a playfield position.
type Vec struct {
	X, Y float64
}

// Owner tells the host who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

type PlayerSpawned struct {
	EntityID ecs.EntityID
	Position Vec
}

type EnemySpawned struct {
	EntityID     ecs.EntityID
	TypeName     string
	Tier         int
	Position     Vec
	MoveStraight bool
}

type ProjectileSpawned struct {
	EntityID ecs.EntityID
	Owner    Owner
	Position Vec
}

// DestroyReason tells the host why an entity went away.
type DestroyReason int

const (
	ReasonCollision DestroyReason = iota
	ReasonOffscreen
	ReasonRestart
)

func (r DestroyReason) String() string {
	switch r {
	case ReasonOffscreen:
		return "offscreen"
	case ReasonRestart:
		return "restart"
	}
	return "collision"
}

type EntityDestroyed struct {
	EntityID ecs.EntityID
	Reason   DestroyReason
}

type Explosion struct {
	Position Vec
}

// WaveSpawned summarises one spawn batch.
type WaveSpawned struct {
	Level     int
	Wave      int // index of the wave definition used
	Tier      int
	Count     int
	Formation bool
}

type LevelChanged struct {
	Level int
}

// GameOver fires once per run, when the player's shields reach zero.
type GameOver struct{}

// GameRestarted tells the host to drop game-over presentation.
type GameRestarted struct{}

func (PlayerSpawned) isEvent()     {}
func (EnemySpawned) isEvent()      {}
func (ProjectileSpawned) isEvent() {}
func (EntityDestroyed) isEvent()   {}
func (Explosion) isEvent()         {}
func (WaveSpawned) isEvent()       {}
func (LevelChanged) isEvent()      {}
func (GameOver) isEvent()          {}
func (GameRestarted) isEvent()     {}
