package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/fitlog/internal/cli"
	"github.com/alexanderramin/fitlog/internal/config"
	"github.com/alexanderramin/fitlog/internal/service"
	"github.com/alexanderramin/fitlog/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine config path: env var or default ~/.fitlog/config.yaml
	cfgPath := os.Getenv("FITLOG_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	app := &cli.App{
		// The store opens lazily, after cobra has parsed the persistent
		// flags, so --data-dir and --store can override the loaded config.
		OpenWorkouts: func(dataDir, storeBackend string) (service.WorkoutService, func(), error) {
			if err := cfg.ApplyOverrides(dataDir, storeBackend); err != nil {
				return nil, nil, err
			}
			workoutStore, closeStore, err := openStore(cfg)
			if err != nil {
				return nil, nil, err
			}
			return service.NewWorkoutService(workoutStore), closeStore, nil
		},
	}
	defer app.Close()

	// Detect interactive terminal for the menu and form entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// openStore opens the configured store backend and returns it with its
// cleanup function.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store {
	case config.BackendSQLite:
		s, closeStore, err := store.OpenSQLite(cfg.DBFile())
		if err != nil {
			return nil, nil, fmt.Errorf("opening workout database: %w", err)
		}
		return s, closeStore, nil
	default:
		s, err := store.OpenFile(cfg.WorkoutFile())
		if err != nil {
			return nil, nil, fmt.Errorf("opening workout log: %w", err)
		}
		return s, func() {}, nil
	}
}
