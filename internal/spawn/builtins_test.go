package spawn

import (
	"testing"

	"github.com/ashfall/vehspawn/internal/data"
	"github.com/ashfall/vehspawn/internal/model"
)

func loadCrashPlacements(t *testing.T, reg *Registry, terrain string) {
	t.Helper()
	for _, suffix := range []string{"_semi", "_pileup"} {
		err := reg.LoadPlacement(data.PlacementRecord{
			ID: terrain + suffix,
			Locations: []data.LocationRecord{
				{X: data.NumRange{Min: 8, Max: 16}, Y: data.NumRange{Min: 8, Max: 16}, Facing: data.FacingList{0, 90, 180, 270}},
			},
		})
		if err != nil {
			t.Fatalf("LoadPlacement(%s%s) error = %v", terrain, suffix, err)
		}
	}
}

func TestBuiltinNoVehicles(t *testing.T) {
	reg := testRegistry(40)
	m := &recordingMap{}

	if err := builtinNoVehicles(reg, m, "road"); err != nil {
		t.Fatalf("no_vehicles error = %v", err)
	}
	if len(m.placed) != 0 {
		t.Errorf("no_vehicles placed %d vehicles", len(m.placed))
	}
}

func TestBuiltinJackknifedSemi(t *testing.T) {
	reg := testRegistry(41)
	loadCrashPlacements(t, reg, "highway")

	m := &recordingMap{}
	if err := builtinJackknifedSemi(reg, m, "highway"); err != nil {
		t.Fatalf("jackknifed_semi error = %v", err)
	}

	if len(m.placed) != 2 {
		t.Fatalf("placed %d vehicles, want cab + trailer", len(m.placed))
	}
	cab, trailer := m.placed[0], m.placed[1]
	if cab.Type != "semi_truck" || trailer.Type != "truck_trailer" {
		t.Errorf("placed %q and %q", cab.Type, trailer.Type)
	}
	if trailer.Facing != (cab.Facing+90)%360 {
		t.Errorf("trailer facing %d not perpendicular to cab facing %d", trailer.Facing, cab.Facing)
	}
}

func TestBuiltinJackknifedSemi_MissingPlacementFails(t *testing.T) {
	reg := testRegistry(42)

	if err := builtinJackknifedSemi(reg, &recordingMap{}, "tundra"); err == nil {
		t.Fatal("missing <terrain>_semi placement expected error")
	}
}

func TestBuiltinPileup(t *testing.T) {
	reg := testRegistry(43)
	loadCrashPlacements(t, reg, "road")
	err := reg.LoadGroup(data.GroupRecord{
		ID: "city_pileup",
		Vehicles: []data.GroupEntry{
			{Vehicle: "sedan", Probability: intPtr(2)},
			{Vehicle: "hatchback", Probability: intPtr(1)},
		},
	})
	if err != nil {
		t.Fatalf("LoadGroup() error = %v", err)
	}

	for range 100 {
		m := &recordingMap{}
		if err := builtinPileup(reg, m, "road"); err != nil {
			t.Fatalf("pileup error = %v", err)
		}
		if n := len(m.placed); n < 4 || n > 8 {
			t.Fatalf("pileup placed %d vehicles, want 4-8", n)
		}
		for _, v := range m.placed {
			if v.Status != model.StatusHeavyDamage {
				t.Fatalf("pileup vehicle status = %v", v.Status)
			}
		}
	}
}

func TestBuiltinPolicePileup(t *testing.T) {
	reg := testRegistry(44)
	loadCrashPlacements(t, reg, "road")

	m := &recordingMap{}
	if err := builtinPolicePileup(reg, m, "road"); err != nil {
		t.Fatalf("policepileup error = %v", err)
	}
	if len(m.placed) == 0 {
		t.Fatal("policepileup placed nothing")
	}
	for _, v := range m.placed {
		if v.Type != "police_car" {
			t.Errorf("policepileup placed %q", v.Type)
		}
	}
}

func TestBehindPoint(t *testing.T) {
	cases := []struct {
		facing int
		wantX  int
		wantY  int
	}{
		{0, 10, 14},   // north: behind is south
		{90, 6, 10},   // east: behind is west
		{180, 10, 6},  // south: behind is north
		{270, 14, 10}, // west: behind is east
		{89, 6, 10},   // rounds to east
	}
	for _, tc := range cases {
		x, y := behindPoint(10, 10, tc.facing, 4)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("behindPoint(10, 10, %d, 4) = (%d, %d), want (%d, %d)", tc.facing, x, y, tc.wantX, tc.wantY)
		}
	}
}
