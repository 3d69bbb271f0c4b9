package data

// EnemyType is one enemy archetype. The catalog is ordered by difficulty
// tier: index 0 is the weakest.
type EnemyType struct {
	Name          string  `json:"name" yaml:"name" jsonschema:"title=Name,description=Archetype name; also the sprite key used by the renderer,minLength=1"`
	Shields       int     `json:"shields" yaml:"shields" jsonschema:"title=Shields,description=Hits required to destroy one instance,minimum=1"`
	Speed         float64 `json:"speed" yaml:"speed" jsonschema:"title=Speed,description=Horizontal speed in scene units per second; must be positive"`
	PowerUpChance int     `json:"powerUpChance" yaml:"powerUpChance" jsonschema:"title=Power-up chance,description=Percent chance to drop a power-up,minimum=0,maximum=100"`
}

// EnemyTypeList is the top-level shape of the enemy-types resource.
type EnemyTypeList []EnemyType
