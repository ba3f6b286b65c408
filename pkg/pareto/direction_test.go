package pareto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"max":      Maximize,
		"Maximize": Maximize,
		" bigger ": Maximize,
		"MIN":      Minimize,
		"minimize": Minimize,
		"smaller":  Minimize,
	}
	for in, want := range cases {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDirection("up")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDirectionDecoding(t *testing.T) {
	var fromYAML struct {
		X Direction `yaml:"x"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("x: max\n"), &fromYAML))
	assert.Equal(t, Maximize, fromYAML.X)

	var fromJSON struct {
		Y Direction `json:"y"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"y":"smaller"}`), &fromJSON))
	assert.Equal(t, Minimize, fromJSON.Y)

	err := yaml.Unmarshal([]byte("x: diagonal\n"), &fromYAML)
	assert.Error(t, err)
}

func TestDirectionShort(t *testing.T) {
	assert.Equal(t, "max", Maximize.Short())
	assert.Equal(t, "min", Minimize.Short())
	assert.False(t, Direction("x").Valid())
}

func TestDominatesInvalidDirection(t *testing.T) {
	assert.False(t, Dominates(Point{2, 2}, Point{1, 1}, "bad", Maximize))
	assert.True(t, Dominates(Point{2, 2}, Point{1, 1}, Maximize, Maximize))
}
