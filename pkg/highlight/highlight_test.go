package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleWrapsAround(t *testing.T) {
	c := NewCycle([]string{"o", "s"})
	assert.Equal(t, "o", c.Next())
	assert.Equal(t, "s", c.Next())
	assert.Equal(t, "o", c.Next())
}

func TestCycleDefaultsAndCopies(t *testing.T) {
	c := NewCycle(nil)
	for _, want := range DefaultMarkers {
		assert.Equal(t, want, c.Next())
	}
	assert.Equal(t, "^", c.Next())

	markers := []string{"X"}
	c = NewCycle(markers)
	markers[0] = "v"
	assert.Equal(t, "X", c.Next())
}

func TestSetPickReusesMarker(t *testing.T) {
	c := NewCycle(nil)
	s := NewSet()

	assert.Equal(t, "^", s.Pick(c, 7))
	assert.Equal(t, "s", s.Pick(c, 3))
	assert.Equal(t, "^", s.Pick(c, 7))
	assert.Equal(t, []int{3, 7}, s.Indices())
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Remove(7))
	assert.False(t, s.Remove(7))
	_, ok := s.Marker(7)
	assert.False(t, ok)

	// a removed point gets a fresh marker
	assert.Equal(t, "o", s.Pick(c, 7))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "▲", Symbol("^"))
	assert.Equal(t, "▼", Symbol("v"))
	assert.Equal(t, "?", Symbol("*"))
}

func TestIndependentStates(t *testing.T) {
	a, b := NewSet(), NewSet()
	a.Add(1, "o")
	_, ok := b.Marker(1)
	assert.False(t, ok)
}
