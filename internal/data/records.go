// Package data reads vehicle spawn definitions from structured JSON records.
// A definition file is an array of typed objects:
//
//	[
//	  {"type": "vehicle_group", "id": "city_cars", "vehicles": [...]},
//	  {"type": "vehicle_placement", "id": "road_parked", "locations": [...]},
//	  {"type": "vehicle_spawn", "id": "default_city", "spawn_types": [...]}
//	]
//
// The package only checks record shape; semantic validation (empty location
// lists, builtin names, inline-vs-placement exclusivity) happens when the
// records are loaded into a spawn.Registry.
package data

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// NumRange is a value-or-range integer field: a bare number in JSON is a
// fixed value, a [lo, hi] pair is an inclusive range.
type NumRange struct {
	Min, Max int
}

// FixedNum returns a NumRange holding a single value.
func FixedNum(v int) NumRange {
	return NumRange{Min: v, Max: v}
}

// UnmarshalJSON accepts 5, [5] or [2, 7].
func (r *NumRange) UnmarshalJSON(b []byte) error {
	var fixed int
	if err := json.Unmarshal(b, &fixed); err == nil {
		r.Min, r.Max = fixed, fixed
		return nil
	}

	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("number range must be an int or [lo, hi] array: %w", err)
	}
	switch len(pair) {
	case 1:
		r.Min, r.Max = pair[0], pair[0]
	case 2:
		if pair[0] > pair[1] {
			return fmt.Errorf("number range [%d, %d] has lo > hi", pair[0], pair[1])
		}
		r.Min, r.Max = pair[0], pair[1]
	default:
		return fmt.Errorf("number range array must have 1 or 2 elements, got %d", len(pair))
	}
	return nil
}

// Pick resolves the range to a concrete value, uniformly for true ranges.
func (r NumRange) Pick(rng *rand.Rand) int {
	if r.Min >= r.Max {
		return r.Min
	}
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// Contains reports whether v lies within the inclusive range.
func (r NumRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FacingList is a scalar-or-array integer field. A facing key that is present
// but holds an empty array is a data error.
type FacingList []int

// UnmarshalJSON accepts 90 or [0, 90, 180].
func (f *FacingList) UnmarshalJSON(b []byte) error {
	var single int
	if err := json.Unmarshal(b, &single); err == nil {
		*f = FacingList{single}
		return nil
	}

	var many []int
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("facing must be an int or array of ints: %w", err)
	}
	if len(many) == 0 {
		return fmt.Errorf("facing array is empty")
	}
	*f = FacingList(many)
	return nil
}

// GroupRecord declares a named weighted vehicle group.
type GroupRecord struct {
	ID string `json:"id"`
	// DefaultProbability applies to entries that omit their own.
	DefaultProbability *int         `json:"probability,omitempty"`
	Vehicles           []GroupEntry `json:"vehicles"`
}

// GroupEntry is one (vehicle type, weight) pair inside a group.
type GroupEntry struct {
	Vehicle     string `json:"vehicle"`
	Probability *int   `json:"probability,omitempty"`
}

// LocationRecord is one candidate spawn location: x/y value-or-range plus the
// facings a vehicle may take there.
type LocationRecord struct {
	X      NumRange   `json:"x"`
	Y      NumRange   `json:"y"`
	Facing FacingList `json:"facing"`
}

// PlacementRecord declares a named catalog of candidate locations.
type PlacementRecord struct {
	ID        string           `json:"id"`
	Locations []LocationRecord `json:"locations"`
}

// VehicleSpawnRecord is the declarative spawn-function payload: which group to
// draw from, where to place (named placement or inline location), how many,
// and the fuel/status applied.
type VehicleSpawnRecord struct {
	Group     string          `json:"group"`
	Placement string          `json:"placement,omitempty"`
	Location  *LocationRecord `json:"location,omitempty"`
	Number    *NumRange       `json:"number,omitempty"` // default 1
	Fuel      *int            `json:"fuel,omitempty"`   // default model.FuelRandom
	Status    string          `json:"status,omitempty"` // default "normal"
}

// SpawnTypeRecord is one weighted entry of a spawn table: either a builtin
// function reference or an inline declarative record.
type SpawnTypeRecord struct {
	Description string              `json:"description,omitempty"`
	Weight      float64             `json:"weight"`
	Function    string              `json:"vehicle_function,omitempty"`
	Vehicle     *VehicleSpawnRecord `json:"vehicle_json,omitempty"`
}

// SpawnRecord declares a named weighted spawn table.
type SpawnRecord struct {
	ID    string            `json:"id"`
	Types []SpawnTypeRecord `json:"spawn_types"`
}

// Records is the merged content of one or more definition sources, in
// declaration order.
type Records struct {
	Groups     []GroupRecord
	Placements []PlacementRecord
	Spawns     []SpawnRecord
}

// Append merges other onto r preserving order.
func (r *Records) Append(other Records) {
	r.Groups = append(r.Groups, other.Groups...)
	r.Placements = append(r.Placements, other.Placements...)
	r.Spawns = append(r.Spawns, other.Spawns...)
}

// Len returns the total record count.
func (r Records) Len() int {
	return len(r.Groups) + len(r.Placements) + len(r.Spawns)
}

// Record type discriminators.
const (
	TypeVehicleGroup     = "vehicle_group"
	TypeVehiclePlacement = "vehicle_placement"
	TypeVehicleSpawn     = "vehicle_spawn"
)

// Parse decodes one definition document (a JSON array of typed records).
func Parse(doc []byte) (Records, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(doc, &raws); err != nil {
		return Records{}, fmt.Errorf("definition document must be a JSON array: %w", err)
	}

	var out Records
	for i, raw := range raws {
		var head struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return Records{}, fmt.Errorf("record %d: %w", i, err)
		}
		if head.ID == "" {
			return Records{}, fmt.Errorf("record %d (%s): missing id", i, head.Type)
		}

		switch head.Type {
		case TypeVehicleGroup:
			var rec GroupRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return Records{}, fmt.Errorf("vehicle_group %q: %w", head.ID, err)
			}
			out.Groups = append(out.Groups, rec)
		case TypeVehiclePlacement:
			var rec PlacementRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return Records{}, fmt.Errorf("vehicle_placement %q: %w", head.ID, err)
			}
			out.Placements = append(out.Placements, rec)
		case TypeVehicleSpawn:
			var rec SpawnRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return Records{}, fmt.Errorf("vehicle_spawn %q: %w", head.ID, err)
			}
			out.Spawns = append(out.Spawns, rec)
		default:
			return Records{}, fmt.Errorf("record %d (%q): unknown type %q", i, head.ID, head.Type)
		}
	}
	return out, nil
}
