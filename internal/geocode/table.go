package geocode

import "strings"

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a single named entry of the lookup table.
type Place struct {
	Name string
	Coordinate
}

// Table is an ordered, read-only place lookup. Order matters: fuzzy matching
// walks places in definition order and returns the first hit.
type Table struct {
	places []Place
	index  map[string]int
}

// NewTable builds a table from places in the given order. When a name appears
// more than once the first definition is used for exact lookups.
func NewTable(places []Place) *Table {
	t := &Table{
		places: make([]Place, len(places)),
		index:  make(map[string]int, len(places)),
	}
	copy(t.places, places)
	for i, p := range t.places {
		if _, ok := t.index[p.Name]; !ok {
			t.index[p.Name] = i
		}
	}
	return t
}

// Len returns the number of places in the table.
func (t *Table) Len() int {
	return len(t.places)
}

// Places returns a copy of the table entries in definition order.
func (t *Table) Places() []Place {
	out := make([]Place, len(t.places))
	copy(out, t.places)
	return out
}

// Exact returns the place whose name equals fragment verbatim.
func (t *Table) Exact(fragment string) (Place, bool) {
	i, ok := t.index[fragment]
	if !ok {
		return Place{}, false
	}
	return t.places[i], true
}

// Fuzzy returns the first place, in table order, whose name is a substring of
// fragment or contains fragment. Matching is case-sensitive, so short names
// such as "Ho District" can still hit unrelated text.
func (t *Table) Fuzzy(fragment string) (Place, bool) {
	if fragment == "" {
		return Place{}, false
	}
	for _, p := range t.places {
		if strings.Contains(fragment, p.Name) || strings.Contains(p.Name, fragment) {
			return p, true
		}
	}
	return Place{}, false
}
