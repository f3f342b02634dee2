package geocode

import (
	"math/rand"
	"strings"
	"time"
)

// JitterSpan is the full width of the random offset added to each axis of a
// resolved point. Offsets fall in [-JitterSpan/2, +JitterSpan/2).
const JitterSpan = 0.01

// RandomSource supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Match is a resolved location.
type Match struct {
	// Key is the lookup table name that produced the match.
	Key string `json:"key"`
	// Base is the table coordinate for Key.
	Base Coordinate `json:"base"`
	// Point is Base plus jitter.
	Point Coordinate `json:"point"`
	// Fuzzy is true when the match came from the substring pass.
	Fuzzy bool `json:"fuzzy"`
}

// Resolver maps free-text region strings to approximate coordinates.
// It is not safe for concurrent use when backed by a *rand.Rand.
type Resolver struct {
	table *Table
	rnd   RandomSource
}

// NewResolver creates a resolver over table. A nil rnd falls back to a
// time-seeded source.
func NewResolver(table *Table, rnd RandomSource) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resolver{table: table, rnd: rnd}
}

// Table returns the lookup table used by the resolver.
func (r *Resolver) Table() *Table {
	return r.table
}

// Fragments splits raw on newlines, trims each piece and drops empty ones.
func Fragments(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Resolve returns the first exact fragment match, or failing that the first
// fuzzy match (fragment-major, table order minor). ok is false when nothing
// matched; that is the common case, not an error.
func (r *Resolver) Resolve(raw string) (m Match, ok bool) {
	parts := Fragments(raw)

	for _, part := range parts {
		if p, found := r.table.Exact(part); found {
			return r.match(p, false), true
		}
	}

	for _, part := range parts {
		if p, found := r.table.Fuzzy(part); found {
			return r.match(p, true), true
		}
	}

	return Match{}, false
}

func (r *Resolver) match(p Place, fuzzy bool) Match {
	return Match{
		Key:  p.Name,
		Base: p.Coordinate,
		Point: Coordinate{
			Lat: p.Lat + r.jitter(),
			Lng: p.Lng + r.jitter(),
		},
		Fuzzy: fuzzy,
	}
}

func (r *Resolver) jitter() float64 {
	return (r.rnd.Float64() - 0.5) * JitterSpan
}
