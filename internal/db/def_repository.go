package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashfall/vehspawn/internal/data"
)

// DefRepository reads and writes vehicle definition documents.
type DefRepository struct {
	pool *pgxpool.Pool
}

// NewDefRepository creates a definition repository on the given pool.
func NewDefRepository(pool *pgxpool.Pool) *DefRepository {
	return &DefRepository{pool: pool}
}

// LoadAll loads every stored definition in insertion order and assembles
// them into a record set ready for spawn.Registry.Load.
func (r *DefRepository) LoadAll(ctx context.Context) (data.Records, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT kind, doc FROM vehicle_defs ORDER BY id`)
	if err != nil {
		return data.Records{}, fmt.Errorf("loading vehicle defs: %w", err)
	}
	defer rows.Close()

	var out data.Records
	for rows.Next() {
		var kind string
		var doc []byte
		if err := rows.Scan(&kind, &doc); err != nil {
			return data.Records{}, fmt.Errorf("scanning vehicle def row: %w", err)
		}

		switch kind {
		case data.TypeVehicleGroup:
			var rec data.GroupRecord
			if err := json.Unmarshal(doc, &rec); err != nil {
				return data.Records{}, fmt.Errorf("decoding stored vehicle_group: %w", err)
			}
			out.Groups = append(out.Groups, rec)
		case data.TypeVehiclePlacement:
			var rec data.PlacementRecord
			if err := json.Unmarshal(doc, &rec); err != nil {
				return data.Records{}, fmt.Errorf("decoding stored vehicle_placement: %w", err)
			}
			out.Placements = append(out.Placements, rec)
		case data.TypeVehicleSpawn:
			var rec data.SpawnRecord
			if err := json.Unmarshal(doc, &rec); err != nil {
				return data.Records{}, fmt.Errorf("decoding stored vehicle_spawn: %w", err)
			}
			out.Spawns = append(out.Spawns, rec)
		default:
			return data.Records{}, fmt.Errorf("stored vehicle def has unknown kind %q", kind)
		}
	}
	if err := rows.Err(); err != nil {
		return data.Records{}, fmt.Errorf("iterating vehicle def rows: %w", err)
	}
	return out, nil
}

// Insert stores one definition document under its kind. The kind must be one
// of the data.TypeVehicle* discriminators; the check constraint enforces the
// same set on the database side.
func (r *DefRepository) Insert(ctx context.Context, kind string, doc []byte) error {
	if !json.Valid(doc) {
		return fmt.Errorf("inserting %s def: document is not valid JSON", kind)
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO vehicle_defs (kind, doc) VALUES ($1, $2)`, kind, doc)
	if err != nil {
		return fmt.Errorf("inserting %s def: %w", kind, err)
	}
	return nil
}

// DeleteAll removes every stored definition. Used by seeding tools before a
// full re-import.
func (r *DefRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM vehicle_defs`); err != nil {
		return fmt.Errorf("deleting vehicle defs: %w", err)
	}
	return nil
}
