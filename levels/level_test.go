package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantTypes []string
		wantErr   bool
	}{
		{
			name:      "sorted by route position",
			data:      `{"name":"t","spawn_ahead":50,"entities":[{"type":"tank","x":40},{"type":"turret","x":10},{"type":"coin_pickup","x":10,"y":8}]}`,
			wantTypes: []string{"turret", "coin_pickup", "tank"},
		},
		{
			name:    "missing type",
			data:    `{"name":"t","entities":[{"x":10}]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			data:    `name: t`,
			wantErr: true,
		},
		{
			name: "empty level",
			data: `{"name":"empty"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := ParseLevel([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var types []string
			for _, e := range lvl.Entities {
				types = append(types, e.Type)
			}
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}

func TestEmbeddedLevels(t *testing.T) {
	skirmish, err := LoadLevelFromFS("skirmish.json")
	require.NoError(t, err)
	assert.Equal(t, "waves.tengo", skirmish.Script)
	assert.Equal(t, 80.0, skirmish.SpawnAhead)
	for i := 1; i < len(skirmish.Entities); i++ {
		assert.LessOrEqual(t, skirmish.Entities[i-1].X, skirmish.Entities[i].X)
	}

	rng, err := LoadLevelFromFS("range.json")
	require.NoError(t, err)
	require.Len(t, rng.Entities, 3)
	assert.Equal(t, "coin_pickup", rng.Entities[0].Type)

	_, err = LoadLevelFromFS("missing.json")
	assert.Error(t, err)
}
