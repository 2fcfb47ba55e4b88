package spawn

import (
	"testing"

	"github.com/ashfall/vehspawn/internal/data"
)

func intPtr(v int) *int { return &v }

func TestLoadGroup_PickFrequencies(t *testing.T) {
	reg := testRegistry(1)

	err := reg.LoadGroup(data.GroupRecord{
		ID: "city_cars",
		Vehicles: []data.GroupEntry{
			{Vehicle: "a", Probability: intPtr(10)},
			{Vehicle: "b", Probability: intPtr(20)},
			{Vehicle: "c", Probability: intPtr(70)},
		},
	})
	if err != nil {
		t.Fatalf("LoadGroup() error = %v", err)
	}

	g, err := reg.Group("city_cars")
	if err != nil {
		t.Fatalf("Group() error = %v", err)
	}

	const trials = 100_000
	counts := map[string]int{}
	for range trials {
		id, err := g.Pick(reg.rng)
		if err != nil {
			t.Fatalf("Pick() error = %v", err)
		}
		counts[string(id)]++
	}

	want := map[string]float64{"a": 0.10, "b": 0.20, "c": 0.70}
	for id, expected := range want {
		got := float64(counts[id]) / trials
		if got < expected-0.01 || got > expected+0.01 {
			t.Errorf("frequency of %q = %.4f, want %.2f ± 0.01", id, got, expected)
		}
	}
}

func TestLoadGroup_DefaultProbability(t *testing.T) {
	reg := testRegistry(2)

	err := reg.LoadGroup(data.GroupRecord{
		ID:                 "mixed",
		DefaultProbability: intPtr(5),
		Vehicles: []data.GroupEntry{
			{Vehicle: "explicit", Probability: intPtr(15)},
			{Vehicle: "defaulted"},
		},
	})
	if err != nil {
		t.Fatalf("LoadGroup() error = %v", err)
	}

	g, _ := reg.Group("mixed")
	if g.Len() != 2 {
		t.Errorf("group Len() = %d, want 2", g.Len())
	}
}

func TestLoadGroup_MissingProbabilityFails(t *testing.T) {
	reg := testRegistry(3)

	err := reg.LoadGroup(data.GroupRecord{
		ID:       "broken",
		Vehicles: []data.GroupEntry{{Vehicle: "car"}},
	})
	if err == nil {
		t.Fatal("LoadGroup() without probability or default expected error")
	}
}

func TestLoadGroup_EmptyFails(t *testing.T) {
	reg := testRegistry(4)

	if err := reg.LoadGroup(data.GroupRecord{ID: "empty"}); err == nil {
		t.Fatal("LoadGroup() with no vehicles expected error")
	}
	if _, err := reg.Group("empty"); err == nil {
		t.Fatal("rejected group should not be registered")
	}
}

func TestLoadGroup_SameNameAppends(t *testing.T) {
	reg := testRegistry(5)

	first := data.GroupRecord{
		ID: "suburbs",
		Vehicles: []data.GroupEntry{
			{Vehicle: "sedan", Probability: intPtr(10)},
			{Vehicle: "wagon", Probability: intPtr(10)},
		},
	}
	second := data.GroupRecord{
		ID: "suburbs",
		Vehicles: []data.GroupEntry{
			{Vehicle: "minivan", Probability: intPtr(10)},
		},
	}

	if err := reg.LoadGroup(first); err != nil {
		t.Fatalf("first LoadGroup() error = %v", err)
	}
	if err := reg.LoadGroup(second); err != nil {
		t.Fatalf("second LoadGroup() error = %v", err)
	}

	g, _ := reg.Group("suburbs")
	if g.Len() != 3 {
		t.Errorf("group Len() after two loads = %d, want 3", g.Len())
	}

	// All three types must be reachable.
	seen := map[string]bool{}
	for range 1000 {
		id, err := g.Pick(reg.rng)
		if err != nil {
			t.Fatalf("Pick() error = %v", err)
		}
		seen[string(id)] = true
	}
	for _, id := range []string{"sedan", "wagon", "minivan"} {
		if !seen[id] {
			t.Errorf("type %q never picked after merge", id)
		}
	}
}
