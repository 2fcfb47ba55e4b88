package spawn

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/ashfall/vehspawn/internal/data"
	"github.com/ashfall/vehspawn/internal/model"
	"github.com/ashfall/vehspawn/internal/weighted"
)

// BuiltinFunc is a compiled spawn behavior. Builtins receive the registry so
// they can look up groups and placements the same way declarative functions
// do.
type BuiltinFunc func(reg *Registry, m Map, terrain string) error

// Function is one spawn strategy: exactly one of the two variants is set.
// Functions are shared by pointer between weight entries, so the same
// instance may sit in several spawn tables.
type Function struct {
	builtinName string
	builtin     BuiltinFunc
	decl        *declarative
}

// declarative is the data-described variant: group + placement (or inline
// location) + count + fuel + status.
type declarative struct {
	group     string // resolved through the registry at apply time
	placement string // mutually exclusive with location; may contain %t
	location  *Location
	number    data.NumRange
	fuel      int
	status    model.Status
}

func newBuiltinFunction(name string, fn BuiltinFunc) *Function {
	return &Function{builtinName: name, builtin: fn}
}

func newDeclarativeFunction(rec *data.VehicleSpawnRecord) (*Function, error) {
	if rec.Group == "" {
		return nil, errors.New("vehicle_json: missing group")
	}
	if (rec.Placement == "") == (rec.Location == nil) {
		return nil, errors.New("vehicle_json: exactly one of placement and location is required")
	}

	d := &declarative{
		group:     rec.Group,
		placement: rec.Placement,
		number:    data.FixedNum(1),
		fuel:      model.FuelRandom,
		status:    model.StatusNormal,
	}

	if rec.Location != nil {
		loc, err := newLocation(*rec.Location)
		if err != nil {
			return nil, fmt.Errorf("vehicle_json location: %w", err)
		}
		d.location = &loc
	}
	if rec.Number != nil {
		if rec.Number.Min < 1 {
			return nil, fmt.Errorf("vehicle_json: number must be at least 1, got %d", rec.Number.Min)
		}
		d.number = *rec.Number
	}
	if rec.Fuel != nil {
		if f := *rec.Fuel; f != model.FuelRandom && (f < 0 || f > 100) {
			return nil, fmt.Errorf("vehicle_json: fuel %d outside 0-100", f)
		}
		d.fuel = *rec.Fuel
	}
	status, err := model.ParseStatus(rec.Status)
	if err != nil {
		return nil, fmt.Errorf("vehicle_json: %w", err)
	}
	d.status = status

	return &Function{decl: d}, nil
}

// BuiltinName returns the bound builtin name, or "" for declarative
// functions.
func (f *Function) BuiltinName() string {
	return f.builtinName
}

// Apply executes the function against the map. For declarative functions the
// vehicle type is drawn once; point, facing, fuel and random status are
// re-drawn per placed unit. Placement rejections by the map are logged and
// skipped, never retried or rolled back.
func (f *Function) Apply(reg *Registry, m Map, terrain string) error {
	switch {
	case f.builtin != nil:
		return f.builtin(reg, m, terrain)
	case f.decl != nil:
		return f.decl.apply(reg, m, terrain)
	}
	return errors.New("spawn function has no variant")
}

func (d *declarative) apply(reg *Registry, m Map, terrain string) error {
	group, err := reg.Group(d.group)
	if err != nil {
		return fmt.Errorf("resolving vehicle group: %w", err)
	}
	typeID, err := group.Pick(reg.rng)
	if err != nil {
		return fmt.Errorf("vehicle group %q: %w", d.group, err)
	}

	count := d.number.Pick(reg.rng)
	for range count {
		loc := d.location
		if loc == nil {
			placementID := expandTerrain(d.placement, terrain)
			placement, err := reg.Placement(placementID)
			if err != nil {
				return fmt.Errorf("resolving placement: %w", err)
			}
			loc, err = placement.Pick(reg.rng)
			if err != nil {
				return fmt.Errorf("placement %q: %w", placementID, err)
			}
		}

		x, y := loc.PickPoint(reg.rng)
		facing := loc.PickFacing(reg.rng)
		fuel := resolveFuel(d.fuel, reg.rng)
		status := resolveStatus(d.status, reg.rng)

		if err := m.PlaceVehicle(typeID, x, y, facing, fuel, status); err != nil {
			slog.Warn("vehicle placement rejected",
				"group", d.group,
				"type", typeID,
				"x", x,
				"y", y,
				"error", err)
		}
	}
	return nil
}

// expandTerrain substitutes %t in a placement id with the terrain name, so
// one spawn definition can reference per-terrain catalogs ("%t_parked" on
// terrain "road" resolves to "road_parked").
func expandTerrain(placementID, terrain string) string {
	return strings.ReplaceAll(placementID, "%t", terrain)
}

func resolveFuel(fuel int, rng *rand.Rand) int {
	if fuel == model.FuelRandom {
		return 1 + rng.IntN(100)
	}
	return fuel
}

func resolveStatus(status model.Status, rng *rand.Rand) model.Status {
	if status == model.StatusRandom {
		return model.Status(rng.IntN(int(model.StatusDestroyed) + 1))
	}
	return status
}

// Spawn is a named weighted table of functions registered under one spawn
// id. Real-valued weights: relative floating weights are the natural way to
// express "mostly empty road, occasionally a pileup".
type Spawn struct {
	types weighted.FloatList[*Function]
}

// Add appends a function with the given weight. Weight must be > 0.
func (s *Spawn) Add(weight float64, fn *Function) error {
	return s.types.Add(fn, weight)
}

// Pick draws one function proportionally to the entry weights.
func (s *Spawn) Pick(rng *rand.Rand) (*Function, error) {
	fn, err := s.types.Pick(rng)
	if err != nil {
		return nil, fmt.Errorf("picking spawn function: %w", err)
	}
	return *fn, nil
}

// Len returns the number of weighted entries.
func (s *Spawn) Len() int {
	return s.types.Len()
}

// Apply picks one function and executes it against the map.
func (s *Spawn) Apply(reg *Registry, m Map, terrain string) error {
	fn, err := s.Pick(reg.rng)
	if err != nil {
		return err
	}
	return fn.Apply(reg, m, terrain)
}
