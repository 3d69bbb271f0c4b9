package system

import (
	"github.com/zaptastic/core/internal/config"
	"github.com/zaptastic/core/internal/core/event"
	"github.com/zaptastic/core/internal/core/rng"
	coresys "github.com/zaptastic/core/internal/core/system"
	"github.com/zaptastic/core/internal/data"
	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/world"
	"go.uber.org/zap"
)

// WaveSystem spawns the next wave whenever the playfield has no enemies.
// Phase 3 (Spawn).
//
// One tier is drawn per batch from [0, min(types, level+1)), so higher levels
// unlock stronger archetypes without forcing them. Every enemy of the batch
// uses that tier.
type WaveSystem struct {
	ws      *world.State
	bus     *event.Bus
	catalog *data.Catalog
	rng     *rng.Source
	spawn   config.SpawnConfig
	enemy   config.EnemyConfig
	log     *zap.Logger
}

func NewWaveSystem(ws *world.State, bus *event.Bus, catalog *data.Catalog, src *rng.Source, cfg *config.Config, log *zap.Logger) *WaveSystem {
	return &WaveSystem{
		ws:      ws,
		bus:     bus,
		catalog: catalog,
		rng:     src,
		spawn:   cfg.Spawn,
		enemy:   cfg.Enemy,
		log:     log,
	}
}

func (s *WaveSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *WaveSystem) Update(_ coresys.Tick) {
	s.MaybeSpawnWave(s.ws.EnemyCount())
}

// MaybeSpawnWave spawns one batch when the player is alive and
// activeEnemies is zero. It reports whether a batch was spawned.
func (s *WaveSystem) MaybeSpawnWave(activeEnemies int) bool {
	g := s.ws.Game
	if !g.PlayerAlive || activeEnemies != 0 {
		return false
	}

	idx, levelUp := g.AdvanceWave(s.catalog.WaveCount())
	if levelUp {
		event.Emit(s.bus, event.LevelChanged{Level: g.Level})
		s.log.Info("level up", zap.Int("level", g.Level))
	}

	wave := s.catalog.Wave(idx)
	tier := s.DrawTier(g.Level)
	typ := s.catalog.Type(tier)

	var count int
	if wave.Formation() {
		count = s.spawnFormation(typ, tier)
	} else {
		count = s.spawnPlacements(wave, typ, tier)
	}

	event.Emit(s.bus, event.WaveSpawned{
		Level:     g.Level,
		Wave:      idx,
		Tier:      tier,
		Count:     count,
		Formation: wave.Formation(),
	})
	s.log.Debug("wave spawned",
		zap.Int("level", g.Level),
		zap.Int("wave", idx),
		zap.Int("tier", tier),
		zap.String("type", typ.Name),
		zap.Int("count", count),
		zap.Bool("formation", wave.Formation()),
	)
	return true
}

// DrawTier draws the archetype index for a batch at the given level.
func (s *WaveSystem) DrawTier(level int) int {
	maxTier := min(s.catalog.TypeCount(), level+1)
	return s.rng.Intn(maxTier)
}

// spawnFormation puts one enemy in every lane, lanes shuffled, each slot
// staggered further right than the last.
func (s *WaveSystem) spawnFormation(typ *data.EnemyType, tier int) int {
	order := s.rng.Perm(len(s.spawn.Lanes))
	for i, lane := range order {
		xOffset := s.spawn.BaseOffset * float64(i*s.spawn.FormationStride)
		s.spawnEnemy(typ, tier, physics.Vec{X: s.spawn.StartX + xOffset, Y: s.spawn.Lanes[lane]}, true)
	}
	return len(order)
}

func (s *WaveSystem) spawnPlacements(wave data.Wave, typ *data.EnemyType, tier int) int {
	count := 0
	for i, p := range wave.Enemies {
		// Lanes are validated at load; a mismatch here means the catalog was
		// loaded against a different lane table.
		if p.Position < 0 || p.Position >= len(s.spawn.Lanes) {
			s.log.Warn("placement outside lane table skipped",
				zap.Int("placement", i), zap.Int("lane", p.Position), zap.Int("lanes", len(s.spawn.Lanes)))
			continue
		}
		xOffset := s.spawn.BaseOffset * p.XOffset
		s.spawnEnemy(typ, tier, physics.Vec{X: s.spawn.StartX + xOffset, Y: s.spawn.Lanes[p.Position]}, p.MoveStraight)
		count++
	}
	return count
}

func (s *WaveSystem) spawnEnemy(typ *data.EnemyType, tier int, pos physics.Vec, straight bool) {
	id := s.ws.SpawnEnemy(typ, tier, pos, straight, s.enemy.Width, s.enemy.Height)
	event.Emit(s.bus, event.EnemySpawned{
		EntityID:     id,
		TypeName:     typ.Name,
		Tier:         tier,
		Position:     event.Vec(pos),
		MoveStraight: straight,
	})
}
