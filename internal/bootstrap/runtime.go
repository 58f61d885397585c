// Package bootstrap wires runtime dependencies for the server process.
package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"caseboard/internal/config"
	"caseboard/internal/database"
	"caseboard/internal/seed"

	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedSamples bool
}

// InitRuntime prepares on-disk directories, opens the database, and optionally
// seeds the sample cases. Any failure here should abort startup.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, error) {
	if err := ensureDirs(cfg); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.SeedSamples {
		if err := seed.Cases(db); err != nil {
			return nil, fmt.Errorf("failed to seed sample cases: %w", err)
		}
	}

	return db, nil
}

func ensureDirs(cfg *config.Config) error {
	dirs := []string{
		filepath.Dir(cfg.DBPath),
		cfg.UploadDir,
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
