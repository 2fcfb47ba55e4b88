package data

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ReadFile parses one definition file.
func ReadFile(path string) (Records, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return Records{}, fmt.Errorf("reading definitions: %w", err)
	}
	recs, err := Parse(doc)
	if err != nil {
		return Records{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return recs, nil
}

// LoadDir parses every .json file under dir (recursively) and merges the
// results. Files are parsed concurrently but merged in sorted path order, so
// the record order is deterministic.
func LoadDir(dir string) (Records, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return Records{}, fmt.Errorf("walking definition dir %s: %w", dir, err)
	}

	parsed := make([]Records, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			recs, err := ReadFile(path)
			if err != nil {
				return err
			}
			parsed[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Records{}, err
	}

	var out Records
	for _, recs := range parsed {
		out.Append(recs)
	}

	slog.Info("loaded vehicle definitions",
		"dir", dir,
		"files", len(paths),
		"groups", len(out.Groups),
		"placements", len(out.Placements),
		"spawns", len(out.Spawns))
	return out, nil
}
