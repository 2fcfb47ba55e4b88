package spawn

import (
	"errors"
	"math/rand/v2"

	"github.com/ashfall/vehspawn/internal/model"
)

// recordingMap captures placements for tests
type recordingMap struct {
	placed  []model.PlacedVehicle
	rejects int // reject the first N placements
}

func (m *recordingMap) PlaceVehicle(typeID model.VehicleTypeID, x, y, facing, fuelPercent int, status model.Status) error {
	if m.rejects > 0 {
		m.rejects--
		return errors.New("cell occupied")
	}
	m.placed = append(m.placed, model.PlacedVehicle{
		Type:        typeID,
		X:           x,
		Y:           y,
		Facing:      facing,
		FuelPercent: fuelPercent,
		Status:      status,
	})
	return nil
}

func testRegistry(seed uint64) *Registry {
	return NewRegistry(rand.New(rand.NewPCG(seed, seed^0x9e3779b9)))
}
