// Package highlight tracks which design points a user has picked out and
// the marker each one was given. All state is owned by the caller and passed
// explicitly; nothing is global.
package highlight

import "sort"

// DefaultMarkers is the marker rotation used when a policy does not set one.
var DefaultMarkers = []string{"^", "s", "o", "P", "X", "v"}

var symbols = map[string]string{
	"^": "▲",
	"s": "■",
	"o": "●",
	"P": "✚",
	"X": "✖",
	"v": "▼",
}

// Symbol returns the unicode glyph for a marker code, or "?".
func Symbol(marker string) string {
	if s, ok := symbols[marker]; ok {
		return s
	}
	return "?"
}

// Cycle hands out markers round-robin.
type Cycle struct {
	markers []string
	next    int
}

// NewCycle copies markers; an empty list falls back to DefaultMarkers.
func NewCycle(markers []string) *Cycle {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &Cycle{markers: append([]string(nil), markers...)}
}

// Next returns the next marker and advances the cycle.
func (c *Cycle) Next() string {
	m := c.markers[c.next]
	c.next = (c.next + 1) % len(c.markers)
	return m
}

// Set maps point indices to markers.
type Set struct {
	byIndex map[int]string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{byIndex: map[int]string{}}
}

// Add highlights index with marker, replacing any previous marker.
func (s *Set) Add(index int, marker string) {
	s.byIndex[index] = marker
}

// Pick highlights index with the next marker from c, unless it is already
// highlighted. It returns the marker in use.
func (s *Set) Pick(c *Cycle, index int) string {
	if m, ok := s.byIndex[index]; ok {
		return m
	}
	m := c.Next()
	s.byIndex[index] = m
	return m
}

// Remove clears a highlight and reports whether one existed.
func (s *Set) Remove(index int) bool {
	if _, ok := s.byIndex[index]; !ok {
		return false
	}
	delete(s.byIndex, index)
	return true
}

// Marker returns the marker for index.
func (s *Set) Marker(index int) (string, bool) {
	m, ok := s.byIndex[index]
	return m, ok
}

// Indices returns the highlighted indices in ascending order.
func (s *Set) Indices() []int {
	out := make([]int, 0, len(s.byIndex))
	for i := range s.byIndex {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (s *Set) Len() int {
	return len(s.byIndex)
}
