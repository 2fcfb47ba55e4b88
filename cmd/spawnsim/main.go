// spawnsim loads vehicle spawn definitions and applies a spawn id onto fresh
// map tiles, printing what got placed. Useful for eyeballing the weights in a
// definition set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/ashfall/vehspawn/internal/config"
	"github.com/ashfall/vehspawn/internal/data"
	"github.com/ashfall/vehspawn/internal/db"
	"github.com/ashfall/vehspawn/internal/model"
	"github.com/ashfall/vehspawn/internal/spawn"
	"github.com/ashfall/vehspawn/internal/world"
)

func main() {
	configPath := flag.String("config", "config/spawnsim.yaml", "config file")
	spawnID := flag.String("spawn", "default_city", "vehicle spawn id to apply")
	terrain := flag.String("terrain", "", "terrain name (default from config)")
	runs := flag.Int("n", 100, "number of tiles to spawn")
	flag.Parse()

	if err := run(context.Background(), *configPath, *spawnID, *terrain, *runs); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, spawnID, terrain string, runs int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	recs, err := data.LoadDir(cfg.DataDir)
	if err != nil {
		return err
	}

	if cfg.Database != nil {
		dsn := cfg.Database.DSN()
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return err
		}
		handle, err := db.New(ctx, dsn)
		if err != nil {
			return err
		}
		defer handle.Close()

		stored, err := db.NewDefRepository(handle.Pool()).LoadAll(ctx)
		if err != nil {
			return err
		}
		slog.Info("loaded vehicle definitions from database", "records", stored.Len())
		recs.Append(stored)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	slog.Info("spawning", "spawn", spawnID, "seed", seed, "runs", runs)

	reg := spawn.NewRegistry(rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)))
	if err := reg.Load(recs); err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	if terrain == "" {
		terrain = cfg.Map.Terrain
	}

	tally := map[model.VehicleTypeID]int{}
	total := 0
	for range runs {
		m := world.NewTileMap(terrain, cfg.Map.Width, cfg.Map.Height)
		if err := reg.Apply(spawnID, m, terrain); err != nil {
			return err
		}
		for _, v := range m.Vehicles() {
			tally[v.Type]++
			total++
		}
	}

	types := make([]model.VehicleTypeID, 0, len(tally))
	for id := range tally {
		types = append(types, id)
	}
	sort.Slice(types, func(i, j int) bool { return tally[types[i]] > tally[types[j]] })

	fmt.Printf("%d vehicles over %d tiles (%.2f per tile)\n", total, runs, float64(total)/float64(runs))
	for _, id := range types {
		fmt.Printf("  %-24s %d\n", id, tally[id])
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
