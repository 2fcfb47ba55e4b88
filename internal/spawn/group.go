// Package spawn resolves vehicle spawn ids into concrete vehicle placements
// on a map tile. It composes three weighted-choice layers: the spawn table
// picks a function, a declarative function picks a vehicle from its group and
// a location from its placement, then places count-many vehicles through the
// Map collaborator.
//
// All definitions are loaded into a Registry during an initialization phase.
// The Registry is read-only after loading and may then be shared between
// goroutines that serialize their use of the rng externally; it carries no
// locking of its own.
package spawn

import (
	"fmt"
	"math/rand/v2"

	"github.com/ashfall/vehspawn/internal/model"
	"github.com/ashfall/vehspawn/internal/weighted"
)

// Map is the placement surface consumed by spawn functions. world.TileMap
// implements it; tests substitute their own.
type Map interface {
	PlaceVehicle(typeID model.VehicleTypeID, x, y, facing, fuelPercent int, status model.Status) error
}

// Group is a named weighted set of vehicle types. Unlike placements, group
// entries are weighted: a sedan is more likely on a city street than a tank.
type Group struct {
	vehicles weighted.IntList[model.VehicleTypeID]
}

// AddVehicle appends a vehicle type with the given probability weight.
func (g *Group) AddVehicle(typeID model.VehicleTypeID, probability int) error {
	return g.vehicles.Add(typeID, probability)
}

// Pick draws one vehicle type proportionally to the entry weights.
func (g *Group) Pick(rng *rand.Rand) (model.VehicleTypeID, error) {
	id, err := g.vehicles.Pick(rng)
	if err != nil {
		return "", fmt.Errorf("picking vehicle: %w", err)
	}
	return *id, nil
}

// Len returns the number of entries in the group.
func (g *Group) Len() int {
	return g.vehicles.Len()
}
