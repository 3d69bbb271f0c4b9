package data

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Resource names used in load errors.
const (
	ResourceEnemyTypes = "enemy-types"
	ResourceWaves      = "waves"
)

//go:embed defaults/enemy-types.json defaults/waves.json
var defaultContent embed.FS

// Catalog holds the immutable enemy archetypes and wave definitions for a
// session. It is safe to share: nothing mutates it after loading.
type Catalog struct {
	types []EnemyType
	waves []Wave
}

// NewCatalog validates already-decoded content against a lane table of
// laneCount entries.
func NewCatalog(types []EnemyType, waves []Wave, laneCount int) (*Catalog, error) {
	if err := validateTypes(types); err != nil {
		return nil, &LoadError{Resource: ResourceEnemyTypes, Err: err}
	}
	if err := validateWaves(waves, laneCount); err != nil {
		return nil, &LoadError{Resource: ResourceWaves, Err: err}
	}
	return &Catalog{types: types, waves: waves}, nil
}

// Parse decodes both resources, picking the format from each name's
// extension, and validates them.
func Parse(typesName string, typesRaw []byte, wavesName string, wavesRaw []byte, laneCount int) (*Catalog, error) {
	var types EnemyTypeList
	if err := decode(typesName, typesRaw, &types); err != nil {
		return nil, &LoadError{Resource: ResourceEnemyTypes, Err: fmt.Errorf("parse %s: %w", typesName, err)}
	}
	var waves WaveList
	if err := decode(wavesName, wavesRaw, &waves); err != nil {
		return nil, &LoadError{Resource: ResourceWaves, Err: fmt.Errorf("parse %s: %w", wavesName, err)}
	}
	return NewCatalog(types, waves, laneCount)
}

// LoadFiles reads both resources from disk.
func LoadFiles(typesPath, wavesPath string, laneCount int) (*Catalog, error) {
	typesRaw, err := os.ReadFile(typesPath)
	if err != nil {
		return nil, &LoadError{Resource: ResourceEnemyTypes, Err: fmt.Errorf("read %s: %w", typesPath, err)}
	}
	wavesRaw, err := os.ReadFile(wavesPath)
	if err != nil {
		return nil, &LoadError{Resource: ResourceWaves, Err: fmt.Errorf("read %s: %w", wavesPath, err)}
	}
	return Parse(typesPath, typesRaw, wavesPath, wavesRaw, laneCount)
}

// LoadFS reads both resources from fsys.
func LoadFS(fsys fs.FS, typesPath, wavesPath string, laneCount int) (*Catalog, error) {
	typesRaw, err := fs.ReadFile(fsys, typesPath)
	if err != nil {
		return nil, &LoadError{Resource: ResourceEnemyTypes, Err: fmt.Errorf("read %s: %w", typesPath, err)}
	}
	wavesRaw, err := fs.ReadFile(fsys, wavesPath)
	if err != nil {
		return nil, &LoadError{Resource: ResourceWaves, Err: fmt.Errorf("read %s: %w", wavesPath, err)}
	}
	return Parse(typesPath, typesRaw, wavesPath, wavesRaw, laneCount)
}

// LoadDefaults loads the content bundled with the binary.
func LoadDefaults(laneCount int) (*Catalog, error) {
	return LoadFS(defaultContent, "defaults/enemy-types.json", "defaults/waves.json", laneCount)
}

// Load picks files when both paths are set and the bundled content when
// both are empty. Setting only one of them is a configuration mistake.
func Load(typesPath, wavesPath string, laneCount int) (*Catalog, error) {
	switch {
	case typesPath == "" && wavesPath == "":
		return LoadDefaults(laneCount)
	case typesPath == "":
		return nil, &LoadError{Resource: ResourceEnemyTypes, Err: fmt.Errorf("no path configured while waves is %s", wavesPath)}
	case wavesPath == "":
		return nil, &LoadError{Resource: ResourceWaves, Err: fmt.Errorf("no path configured while enemy-types is %s", typesPath)}
	}
	return LoadFiles(typesPath, wavesPath, laneCount)
}

// TypeCount returns the number of enemy archetypes (difficulty tiers).
func (c *Catalog) TypeCount() int { return len(c.types) }

// WaveCount returns the number of wave definitions.
func (c *Catalog) WaveCount() int { return len(c.waves) }

// Type returns the archetype for tier. The pointer is shared and read-only.
func (c *Catalog) Type(tier int) *EnemyType {
	return &c.types[tier]
}

// Wave returns the wave definition at index i.
func (c *Catalog) Wave(i int) Wave {
	return c.waves[i]
}
