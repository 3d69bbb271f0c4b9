package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/sim"
)

func runPilot(t *testing.T, ticks int) stats {
	t.Helper()
	cfg := config.Default()
	cfg.Simulation.Seed = 2024
	catalog, err := data.LoadDefaults(len(cfg.Spawn.Lanes))
	require.NoError(t, err)

	p := newAutopilot(sim.New(cfg, catalog, zap.NewNop()), cfg.Playfield, 8)
	for i := 0; i < ticks; i++ {
		p.Step(16 * time.Millisecond)
	}
	return p.Stats()
}

func TestAutopilotPlays(t *testing.T) {
	st := runPilot(t, 1200)
	assert.Equal(t, 1200, st.Ticks)
	assert.GreaterOrEqual(t, st.Games, 1)
	assert.Positive(t, st.Waves)
	assert.Positive(t, st.Shots)
	assert.LessOrEqual(t, st.Shots, 1200/8, "at most one shot every 8 ticks")
}

func TestAutopilotIsDeterministic(t *testing.T) {
	assert.Equal(t, runPilot(t, 900), runPilot(t, 900))
}
