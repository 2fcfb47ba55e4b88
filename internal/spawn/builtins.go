package spawn

import (
	"fmt"
	"log/slog"

	"github.com/ashfall/vehspawn/internal/model"
)

// Builtin spawn behaviors. These are scenario-scripted spawns whose placement
// logic is not expressible as a declarative record. They rely on per-terrain
// placement catalogs being loaded ("<terrain>_semi", "<terrain>_pileup") and,
// for pileup, the "city_pileup" group.

// builtinNoVehicles deliberately places nothing; it exists so a spawn table
// can give "empty road" its own weight.
func builtinNoVehicles(_ *Registry, _ Map, _ string) error {
	return nil
}

// builtinJackknifedSemi places a semi truck with its trailer swung
// perpendicular behind the cab.
func builtinJackknifedSemi(reg *Registry, m Map, terrain string) error {
	placementID := terrain + "_semi"
	placement, err := reg.Placement(placementID)
	if err != nil {
		return fmt.Errorf("jackknifed_semi: %w", err)
	}
	loc, err := placement.Pick(reg.rng)
	if err != nil {
		return fmt.Errorf("jackknifed_semi: placement %q: %w", placementID, err)
	}

	x, y := loc.PickPoint(reg.rng)
	facing := loc.PickFacing(reg.rng)
	if err := m.PlaceVehicle("semi_truck", x, y, facing, resolveFuel(model.FuelRandom, reg.rng), model.StatusLightDamage); err != nil {
		slog.Warn("jackknifed_semi: cab placement rejected", "x", x, "y", y, "error", err)
		return nil
	}

	// Trailer sits behind the cab, swung 90 degrees off its heading.
	tx, ty := behindPoint(x, y, facing, 4)
	if err := m.PlaceVehicle("truck_trailer", tx, ty, (facing+90)%360, 0, model.StatusLightDamage); err != nil {
		slog.Warn("jackknifed_semi: trailer placement rejected", "x", tx, "y", ty, "error", err)
	}
	return nil
}

// builtinPileup wrecks several vehicles from the city_pileup group around a
// crash point.
func builtinPileup(reg *Registry, m Map, terrain string) error {
	group, err := reg.Group("city_pileup")
	if err != nil {
		return fmt.Errorf("pileup: %w", err)
	}
	return crashScene(reg, m, terrain, func() (model.VehicleTypeID, error) {
		return group.Pick(reg.rng)
	})
}

// builtinPolicePileup is a pileup of police cars only.
func builtinPolicePileup(reg *Registry, m Map, terrain string) error {
	return crashScene(reg, m, terrain, func() (model.VehicleTypeID, error) {
		return "police_car", nil
	})
}

func crashScene(reg *Registry, m Map, terrain string, pickType func() (model.VehicleTypeID, error)) error {
	placementID := terrain + "_pileup"
	placement, err := reg.Placement(placementID)
	if err != nil {
		return fmt.Errorf("pileup: %w", err)
	}

	count := 4 + reg.rng.IntN(5)
	for range count {
		typeID, err := pickType()
		if err != nil {
			return fmt.Errorf("pileup: %w", err)
		}
		loc, err := placement.Pick(reg.rng)
		if err != nil {
			return fmt.Errorf("pileup: placement %q: %w", placementID, err)
		}
		x, y := loc.PickPoint(reg.rng)
		facing := loc.PickFacing(reg.rng)
		if err := m.PlaceVehicle(typeID, x, y, facing, 0, model.StatusHeavyDamage); err != nil {
			slog.Warn("pileup: placement rejected", "type", typeID, "x", x, "y", y, "error", err)
		}
	}
	return nil
}

// behindPoint offsets (x, y) opposite the facing direction, rounded to the
// nearest cardinal. Facing 0 is north (-y), 90 east (+x).
func behindPoint(x, y, facing, dist int) (int, int) {
	switch (((facing+45)/90)%4 + 4) % 4 {
	case 0: // north
		return x, y + dist
	case 1: // east
		return x - dist, y
	case 2: // south
		return x, y - dist
	default: // west
		return x + dist, y
	}
}
