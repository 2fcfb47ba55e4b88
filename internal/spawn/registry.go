package spawn

import (
	"fmt"
	"math/rand/v2"

	"github.com/agnivade/levenshtein"

	"github.com/ashfall/vehspawn/internal/data"
	"github.com/ashfall/vehspawn/internal/model"
)

// Registry owns the name→group, name→placement and name→spawn tables plus
// the builtin function table and the random source. Build one during
// initialization, load all definitions into it, then treat it as read-only.
type Registry struct {
	rng        *rand.Rand
	builtins   map[string]BuiltinFunc
	groups     map[string]*Group
	placements map[string]*Placement
	spawns     map[string]*Spawn
}

// NewRegistry creates a registry with the default builtins registered. A nil
// rng gets a randomly seeded source; pass a seeded one for reproducible
// spawning.
func NewRegistry(rng *rand.Rand) *Registry {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &Registry{
		rng:        rng,
		builtins:   make(map[string]BuiltinFunc),
		groups:     make(map[string]*Group),
		placements: make(map[string]*Placement),
		spawns:     make(map[string]*Spawn),
	}
	r.RegisterBuiltin("no_vehicles", builtinNoVehicles)
	r.RegisterBuiltin("jackknifed_semi", builtinJackknifedSemi)
	r.RegisterBuiltin("pileup", builtinPileup)
	r.RegisterBuiltin("policepileup", builtinPolicePileup)
	return r
}

// RegisterBuiltin binds a compiled spawn behavior to a name referencable
// from vehicle_function entries. Registering an existing name replaces it.
func (r *Registry) RegisterBuiltin(name string, fn BuiltinFunc) {
	r.builtins[name] = fn
}

// LoadGroup loads one vehicle_group record. Loading a second record under an
// existing id appends its entries to the group.
func (r *Registry) LoadGroup(rec data.GroupRecord) error {
	if len(rec.Vehicles) == 0 {
		return fmt.Errorf("vehicle_group %q: no vehicles", rec.ID)
	}

	// Validate the whole record before touching the table, so a malformed
	// record never leaves partial entries behind.
	weights := make([]int, len(rec.Vehicles))
	for i, entry := range rec.Vehicles {
		if entry.Vehicle == "" {
			return fmt.Errorf("vehicle_group %q: entry %d has no vehicle", rec.ID, i)
		}
		probability := entry.Probability
		if probability == nil {
			probability = rec.DefaultProbability
		}
		if probability == nil {
			return fmt.Errorf("vehicle_group %q: entry %q has no probability and the group declares no default", rec.ID, entry.Vehicle)
		}
		if *probability <= 0 {
			return fmt.Errorf("vehicle_group %q: entry %q: probability must be positive, got %d", rec.ID, entry.Vehicle, *probability)
		}
		weights[i] = *probability
	}

	g := r.groups[rec.ID]
	if g == nil {
		g = &Group{}
		r.groups[rec.ID] = g
	}
	for i, entry := range rec.Vehicles {
		if err := g.AddVehicle(model.VehicleTypeID(entry.Vehicle), weights[i]); err != nil {
			return fmt.Errorf("vehicle_group %q: entry %q: %w", rec.ID, entry.Vehicle, err)
		}
	}
	return nil
}

// LoadPlacement loads one vehicle_placement record. A record with zero
// locations is a data error. Re-loading an id appends locations.
func (r *Registry) LoadPlacement(rec data.PlacementRecord) error {
	if len(rec.Locations) == 0 {
		return fmt.Errorf("vehicle_placement %q: no locations", rec.ID)
	}

	locations := make([]Location, 0, len(rec.Locations))
	for i, locRec := range rec.Locations {
		loc, err := newLocation(locRec)
		if err != nil {
			return fmt.Errorf("vehicle_placement %q: location %d: %w", rec.ID, i, err)
		}
		locations = append(locations, loc)
	}

	p := r.placements[rec.ID]
	if p == nil {
		p = &Placement{}
		r.placements[rec.ID] = p
	}
	for _, loc := range locations {
		p.Add(loc)
	}
	return nil
}

// LoadSpawn loads one vehicle_spawn record, constructing the function
// variant for every weighted entry. Re-loading an id appends entries.
func (r *Registry) LoadSpawn(rec data.SpawnRecord) error {
	if len(rec.Types) == 0 {
		return fmt.Errorf("vehicle_spawn %q: no spawn_types", rec.ID)
	}

	fns := make([]*Function, 0, len(rec.Types))
	for i, entry := range rec.Types {
		if entry.Weight <= 0 {
			return fmt.Errorf("vehicle_spawn %q: entry %d: weight must be positive, got %g", rec.ID, i, entry.Weight)
		}
		fn, err := r.newFunction(entry)
		if err != nil {
			return fmt.Errorf("vehicle_spawn %q: entry %d: %w", rec.ID, i, err)
		}
		fns = append(fns, fn)
	}

	sp := r.spawns[rec.ID]
	if sp == nil {
		sp = &Spawn{}
		r.spawns[rec.ID] = sp
	}
	for i, fn := range fns {
		if err := sp.Add(rec.Types[i].Weight, fn); err != nil {
			return fmt.Errorf("vehicle_spawn %q: entry %d: %w", rec.ID, i, err)
		}
	}
	return nil
}

func (r *Registry) newFunction(entry data.SpawnTypeRecord) (*Function, error) {
	switch {
	case entry.Function != "" && entry.Vehicle != nil:
		return nil, fmt.Errorf("both vehicle_function and vehicle_json given")
	case entry.Function != "":
		fn, ok := r.builtins[entry.Function]
		if !ok {
			return nil, fmt.Errorf("unknown builtin %q%s", entry.Function, suggest(entry.Function, r.builtins))
		}
		return newBuiltinFunction(entry.Function, fn), nil
	case entry.Vehicle != nil:
		return newDeclarativeFunction(entry.Vehicle)
	}
	return nil, fmt.Errorf("neither vehicle_function nor vehicle_json given")
}

// Load feeds a whole record set into the registry: placements and groups
// first, spawns last. Order within a kind follows declaration order.
func (r *Registry) Load(recs data.Records) error {
	for _, rec := range recs.Groups {
		if err := r.LoadGroup(rec); err != nil {
			return err
		}
	}
	for _, rec := range recs.Placements {
		if err := r.LoadPlacement(rec); err != nil {
			return err
		}
	}
	for _, rec := range recs.Spawns {
		if err := r.LoadSpawn(rec); err != nil {
			return err
		}
	}
	return nil
}

// Group resolves a group id. References are resolved lazily, so a spawn may
// be loaded before the groups it names; the lookup fails loudly at apply
// time if the group never arrived.
func (r *Registry) Group(id string) (*Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, fmt.Errorf("unknown vehicle group %q%s", id, suggest(id, r.groups))
	}
	return g, nil
}

// Placement resolves a placement id.
func (r *Registry) Placement(id string) (*Placement, error) {
	p, ok := r.placements[id]
	if !ok {
		return nil, fmt.Errorf("unknown vehicle placement %q%s", id, suggest(id, r.placements))
	}
	return p, nil
}

// SpawnTable resolves a spawn id.
func (r *Registry) SpawnTable(id string) (*Spawn, error) {
	s, ok := r.spawns[id]
	if !ok {
		return nil, fmt.Errorf("unknown vehicle spawn %q%s", id, suggest(id, r.spawns))
	}
	return s, nil
}

// Apply resolves a spawn id and executes one picked function against the
// map. An unknown id is an error, never a silent no-op.
func (r *Registry) Apply(spawnID string, m Map, terrain string) error {
	sp, err := r.SpawnTable(spawnID)
	if err != nil {
		return err
	}
	if err := sp.Apply(r, m, terrain); err != nil {
		return fmt.Errorf("applying vehicle spawn %q: %w", spawnID, err)
	}
	return nil
}

// suggest returns a " (did you mean ...)" suffix when the table holds a name
// close enough to the unknown one. The distance limit scales with name
// length so short ids don't match everything.
func suggest[V any](name string, table map[string]V) string {
	best := ""
	bestDist := 0
	for candidate := range table {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist > suggestLimit(len(candidate)) {
			continue
		}
		if best == "" || dist < bestDist || (dist == bestDist && candidate < best) {
			best = candidate
			bestDist = dist
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
