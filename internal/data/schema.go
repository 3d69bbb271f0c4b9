package data

import "github.com/invopop/jsonschema"

// Schemas returns the JSON schema of each content resource, keyed by the
// resource name.
func Schemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	types := reflector.Reflect(new(EnemyTypeList))
	types.Title = "Zaptastic enemy types"
	types.Description = "Enemy archetypes ordered by difficulty tier, weakest first"

	waves := reflector.Reflect(new(WaveList))
	waves.Title = "Zaptastic waves"
	waves.Description = "Wave definitions; an empty enemies list spawns the lane formation"

	return map[string]*jsonschema.Schema{
		ResourceEnemyTypes: types,
		ResourceWaves:      waves,
	}
}
