package data

// Placement positions one enemy of a wave.
type Placement struct {
	Position     int     `json:"position" yaml:"position" jsonschema:"title=Lane,description=Index into the lane table,minimum=0"`
	XOffset      float64 `json:"xOffset" yaml:"xOffset" jsonschema:"title=X offset,description=Stagger multiplier applied to the base offset"`
	MoveStraight bool    `json:"moveStraight" yaml:"moveStraight" jsonschema:"title=Move straight,description=False makes the enemy weave vertically"`
}

// Wave is one batch-spawn definition. No placements means the formation
// fallback: one enemy per lane in shuffled order.
type Wave struct {
	Enemies []Placement `json:"enemies" yaml:"enemies" jsonschema:"title=Enemies,description=Explicit placements; empty selects the formation fallback"`
}

// Formation reports whether the wave uses the formation fallback.
func (w Wave) Formation() bool { return len(w.Enemies) == 0 }

// WaveList is the top-level shape of the waves resource.
type WaveList []Wave
