package spawn

import (
	"fmt"
	"math/rand/v2"

	"github.com/ashfall/vehspawn/internal/data"
)

// Facings is the non-empty set of directions a vehicle may face at a
// location. Picked uniformly.
type Facings struct {
	values []int
}

// NewFacings builds a facing set; at least one value is required.
func NewFacings(values []int) (Facings, error) {
	if len(values) == 0 {
		return Facings{}, fmt.Errorf("facing set is empty")
	}
	out := make([]int, len(values))
	copy(out, values)
	return Facings{values: out}, nil
}

// Pick returns one of the declared facings, uniformly.
func (f Facings) Pick(rng *rand.Rand) int {
	return f.values[rng.IntN(len(f.values))]
}

// Values returns a copy of the declared facings.
func (f Facings) Values() []int {
	out := make([]int, len(f.values))
	copy(out, f.values)
	return out
}

// Location is one candidate spawn spot: x/y value-or-range plus the facings
// allowed there. Ranges resolve to concrete coordinates at pick time.
type Location struct {
	x, y    data.NumRange
	facings Facings
}

// NewLocation builds a location from its parts.
func NewLocation(x, y data.NumRange, facings Facings) Location {
	return Location{x: x, y: y, facings: facings}
}

func newLocation(rec data.LocationRecord) (Location, error) {
	facings, err := NewFacings(rec.Facing)
	if err != nil {
		return Location{}, err
	}
	return NewLocation(rec.X, rec.Y, facings), nil
}

// PickPoint resolves the x/y ranges to a concrete coordinate.
func (l Location) PickPoint(rng *rand.Rand) (int, int) {
	return l.x.Pick(rng), l.y.Pick(rng)
}

// PickFacing draws one of the allowed facings.
func (l Location) PickFacing(rng *rand.Rand) int {
	return l.facings.Pick(rng)
}

// Placement is a named catalog of candidate locations. The pick is plain
// uniform, not weighted: spots within one catalog are interchangeable.
type Placement struct {
	locations []Location
}

// Add appends a candidate location.
func (p *Placement) Add(loc Location) {
	p.locations = append(p.locations, loc)
}

// Pick returns one location uniformly at random.
func (p *Placement) Pick(rng *rand.Rand) (*Location, error) {
	if len(p.locations) == 0 {
		return nil, fmt.Errorf("placement has no locations")
	}
	return &p.locations[rng.IntN(len(p.locations))], nil
}

// Len returns the number of candidate locations.
func (p *Placement) Len() int {
	return len(p.locations)
}
