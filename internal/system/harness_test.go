package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/core/rng"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/world"
)

// testRNG returns a seeded source for deterministic tests.
func testRNG() *rng.Source {
	return rng.New(12345)
}

type harness struct {
	cfg     *config.Config
	catalog *data.Catalog
	ws      *world.State
	bus     *event.Bus
	src     *rng.Source
}

func testTypes(n int) []data.EnemyType {
	out := make([]data.EnemyType, n)
	for i := range out {
		out[i] = data.EnemyType{Name: "tier" + string(rune('A'+i)), Shields: i + 1, Speed: 100 + 50*float64(i), PowerUpChance: 10}
	}
	return out
}

func newHarness(t *testing.T, types []data.EnemyType, waves []data.Wave) *harness {
	t.Helper()
	cfg := config.Default()
	catalog, err := data.NewCatalog(types, waves, len(cfg.Spawn.Lanes))
	require.NoError(t, err)
	h := &harness{
		cfg:     cfg,
		catalog: catalog,
		ws:      world.NewState(cfg.Player.Shields),
		bus:     event.NewBus(),
		src:     testRNG(),
	}
	return h
}

func (h *harness) waves() *WaveSystem {
	return NewWaveSystem(h.ws, h.bus, h.catalog, h.src, h.cfg, zapNop())
}

func (h *harness) collisions() *CollisionSystem {
	return NewCollisionSystem(h.ws, h.bus, false, zapNop())
}

func zapNop() *zap.Logger { return zap.NewNop() }

func tick(now time.Duration) coresys.Tick {
	return coresys.Tick{Elapsed: 16 * time.Millisecond, Now: now}
}

// countEvents tallies flushed events by type.
func countEvents[T event.Event](events []event.Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func eventsOf[T event.Event](events []event.Event) []T {
	var out []T
	for _, ev := range events {
		if v, ok := ev.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
