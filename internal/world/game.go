package world

// Phase is the run state of the game.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game-over"
	}
	return "playing"
}

// Game holds the session counters. Only the wave scheduler advances
// Level/Wave and only the collision resolver touches shields and the alive
// flag; everything else reads.
type Game struct {
	Level         int
	Wave          int // index of the next wave definition, always < wave count
	PlayerShields int
	PlayerAlive   bool
	Phase         Phase

	startShields int
	restartArmed bool // restart listener registered by the game-over transition
}

func NewGame(shields int) *Game {
	g := &Game{startShields: shields}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.Level = 0
	g.Wave = 0
	g.PlayerShields = g.startShields
	g.PlayerAlive = true
	g.Phase = PhasePlaying
	g.restartArmed = false
}

// Damage removes one shield from a live player. It reports the remaining
// shields and whether this hit depleted them. Dead players are unaffected.
func (g *Game) Damage() (remaining int, depleted bool) {
	if !g.PlayerAlive || g.PlayerShields <= 0 {
		return g.PlayerShields, false
	}
	g.PlayerShields--
	return g.PlayerShields, g.PlayerShields == 0
}

// EndRun performs the Playing → GameOver transition and arms the restart
// listener. It returns false when the run is already over.
func (g *Game) EndRun() bool {
	if g.Phase == PhaseGameOver {
		return false
	}
	g.PlayerAlive = false
	g.Phase = PhaseGameOver
	g.restartArmed = true
	return true
}

// RestartArmed reports whether a restart intent would be honoured.
func (g *Game) RestartArmed() bool { return g.restartArmed }

// Restart performs GameOver → Playing, disarming the listener and resetting
// every counter. Without a preceding game over it does nothing.
func (g *Game) Restart() bool {
	if !g.restartArmed {
		return false
	}
	g.reset()
	return true
}

// AdvanceWave returns the index of the wave to spawn and moves the cursor,
// wrapping to 0 and raising the level after the last wave.
func (g *Game) AdvanceWave(waveCount int) (index int, levelUp bool) {
	index = g.Wave
	g.Wave++
	if g.Wave >= waveCount {
		g.Wave = 0
		g.Level++
		levelUp = true
	}
	return index, levelUp
}
