package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rollcraft/rollcraft/internal/platform/config"
	"github.com/rollcraft/rollcraft/internal/random"
	"github.com/rollcraft/rollcraft/internal/storage/sqlite"
	"github.com/rollcraft/rollcraft/internal/tools/roll"
)

func main() {
	cfg, err := roll.ParseConfig()
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	roller, err := newRoller(cfg)
	if err != nil {
		// The randomness contract reports acquisition failures on stdout
		// before any roll output, then exits with failure status.
		fmt.Println(err)
		os.Exit(1)
	}

	var journal roll.Journal
	if cfg.HistoryPath != "" {
		store, err := sqlite.Open(cfg.HistoryPath)
		if err != nil {
			config.Exitf("open roll journal: %v", err)
		}
		defer store.Close()
		journal = store
	}

	if err := roll.Run(context.Background(), cfg, os.Args[1:], os.Stdout, os.Stderr, roller.Roll, journal); err != nil {
		config.Exitf("roll: %v", err)
	}
}

// newRoller builds the shared roller, honoring a fixed seed when one is
// configured.
func newRoller(cfg roll.Config) (*random.Roller, error) {
	if cfg.Seed != nil {
		return random.NewRollerFromSeed(*cfg.Seed), nil
	}
	return random.NewRoller()
}
