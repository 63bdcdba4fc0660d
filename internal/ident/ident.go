// Package ident produces entity identifiers unique for the lifetime of one
// running store instance. Identifiers are decimal strings from an atomically
// incremented counter, so uniqueness never depends on clock resolution.
package ident

import (
	"strconv"

	"go.uber.org/atomic"
)

type Generator struct {
	counter atomic.Int64
}

// NewGenerator returns a generator whose first Next() yields seed+1. Seed it
// with the highest numeric identifier already present in loaded state so new
// identifiers never collide with persisted ones.
func NewGenerator(seed int64) *Generator {
	g := &Generator{}
	g.counter.Store(seed)
	return g
}

func (g *Generator) Next() string {
	return strconv.FormatInt(g.counter.Inc(), 10)
}

// ParseNumeric reports the numeric value of an identifier, or 0 when the
// identifier is not a plain decimal (foreign identifiers are simply skipped
// when seeding).
func ParseNumeric(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
