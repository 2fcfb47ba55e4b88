// Package world provides the map surface that vehicle spawns place onto.
package world

import (
	"fmt"

	"github.com/ashfall/vehspawn/internal/model"
)

// DefaultTileSize is the edge length of one overmap terrain tile.
const DefaultTileSize = 24

// TileMap is one terrain tile worth of map: a width×height cell grid with at
// most one vehicle anchor per cell.
type TileMap struct {
	terrain  string
	width    int
	height   int
	vehicles []model.PlacedVehicle
	occupied map[[2]int]bool
}

// NewTileMap creates an empty tile for the given terrain.
func NewTileMap(terrain string, width, height int) *TileMap {
	return &TileMap{
		terrain:  terrain,
		width:    width,
		height:   height,
		occupied: make(map[[2]int]bool),
	}
}

// Terrain returns the terrain name of this tile.
func (m *TileMap) Terrain() string {
	return m.terrain
}

// Width returns the tile width in cells.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the tile height in cells.
func (m *TileMap) Height() int {
	return m.height
}

// PlaceVehicle anchors one vehicle at (x, y). It fails on out-of-bounds
// coordinates, an invalid fuel percentage, or a collision with an already
// placed vehicle. Callers decide whether a failure matters; nothing is rolled
// back here.
func (m *TileMap) PlaceVehicle(typeID model.VehicleTypeID, x, y, facing, fuelPercent int, status model.Status) error {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return fmt.Errorf("placing %s: point (%d, %d) outside %dx%d tile", typeID, x, y, m.width, m.height)
	}
	if fuelPercent < 0 || fuelPercent > 100 {
		return fmt.Errorf("placing %s: fuel %d%% outside 0-100", typeID, fuelPercent)
	}
	if status < model.StatusNormal || status > model.StatusDestroyed {
		return fmt.Errorf("placing %s: unresolved status %v", typeID, status)
	}
	cell := [2]int{x, y}
	if m.occupied[cell] {
		return fmt.Errorf("placing %s: cell (%d, %d) already holds a vehicle", typeID, x, y)
	}

	m.occupied[cell] = true
	m.vehicles = append(m.vehicles, model.PlacedVehicle{
		Type:        typeID,
		X:           x,
		Y:           y,
		Facing:      ((facing % 360) + 360) % 360,
		FuelPercent: fuelPercent,
		Status:      status,
	})
	return nil
}

// Vehicles returns a copy of the placed vehicles in placement order.
func (m *TileMap) Vehicles() []model.PlacedVehicle {
	out := make([]model.PlacedVehicle, len(m.vehicles))
	copy(out, m.vehicles)
	return out
}

// VehicleCount returns the number of placed vehicles.
func (m *TileMap) VehicleCount() int {
	return len(m.vehicles)
}
