// Package model holds the value types shared between the data loaders, the
// spawn resolver and the map.
package model

import "fmt"

// VehicleTypeID is the interned name of a vehicle prototype ("semi_truck",
// "police_car", ...). Prototype internals are owned by the embedding game;
// this module only routes the id.
type VehicleTypeID string

// Fuel sentinel values for PlacedVehicle.FuelPercent.
// FuelRandom is the default for declarative spawns: each placed unit draws its
// own fuel percentage.
const (
	FuelRandom = -1
	FuelFull   = 100
)

// Status is the damage state a vehicle spawns in.
type Status int

const (
	StatusNormal Status = iota
	StatusLightDamage
	StatusHeavyDamage
	StatusDestroyed

	// StatusRandom is a sentinel: each placed unit draws its own status.
	StatusRandom Status = -1
)

var statusNames = map[Status]string{
	StatusNormal:      "normal",
	StatusLightDamage: "light_damage",
	StatusHeavyDamage: "heavy_damage",
	StatusDestroyed:   "destroyed",
	StatusRandom:      "random",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus maps a record value to a Status. The empty string means the
// record omitted the key and defaults to StatusNormal.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "", "normal":
		return StatusNormal, nil
	case "light_damage":
		return StatusLightDamage, nil
	case "heavy_damage":
		return StatusHeavyDamage, nil
	case "destroyed":
		return StatusDestroyed, nil
	case "random":
		return StatusRandom, nil
	}
	return StatusNormal, fmt.Errorf("unknown vehicle status %q", s)
}

// PlacedVehicle records one vehicle instance placed onto a tile.
type PlacedVehicle struct {
	Type        VehicleTypeID
	X, Y        int
	Facing      int // degrees, 0-359
	FuelPercent int // 0-100
	Status      Status
}
