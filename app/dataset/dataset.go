// Package dataset provisions the tabular reference data the advisor loads
// at startup. Seeding is a demo convenience: when the configured CSV files
// are missing, a small built-in sample dataset is written out so the
// service can come up without any external data source.
package dataset

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
)

//go:embed seed/cities.csv seed/states.csv
var seedFS embed.FS

// Ensure checks that both CSV files exist, writing the embedded sample
// dataset for any that are missing when seeding is enabled. With seeding
// disabled a missing file is left to fail the subsequent load.
func Ensure(citiesPath, statesPath string, seed bool, logger *slog.Logger) error {
	files := []struct {
		path string
		name string
	}{
		{citiesPath, "seed/cities.csv"},
		{statesPath, "seed/states.csv"},
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking dataset file %s: %w", f.path, err)
		}

		if !seed {
			logger.Warn("Dataset file missing and seeding disabled", slog.String("path", f.path))
			continue
		}

		data, err := seedFS.ReadFile(f.name)
		if err != nil {
			return fmt.Errorf("reading embedded dataset %s: %w", f.name, err)
		}
		if err := os.WriteFile(f.path, data, 0o644); err != nil {
			return fmt.Errorf("writing dataset file %s: %w", f.path, err)
		}
		logger.Info("Created sample dataset file", slog.String("path", f.path))
	}

	return nil
}
