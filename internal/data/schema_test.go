package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemasDescribeBothResources(t *testing.T) {
	schemas := Schemas()
	require.Len(t, schemas, 2)

	types, err := json.Marshal(schemas[ResourceEnemyTypes])
	require.NoError(t, err)
	assert.Contains(t, string(types), `"powerUpChance"`)
	assert.Contains(t, string(types), `"array"`)

	waves, err := json.Marshal(schemas[ResourceWaves])
	require.NoError(t, err)
	assert.Contains(t, string(waves), `"moveStraight"`)
	assert.Contains(t, string(waves), `"xOffset"`)
}
