package cli

import (
	"github.com/alexanderramin/fitlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service surface the CLI commands run against.
type App struct {
	Workouts service.WorkoutService

	// IsInteractive reports whether stdin is a terminal. The interactive
	// menu and forms are only offered when it returns true.
	IsInteractive func() bool

	// OpenWorkouts builds the workout service once the persistent flag
	// overrides are known. Left nil when Workouts is pre-wired (tests).
	OpenWorkouts func(dataDir, storeBackend string) (service.WorkoutService, func(), error)

	dataDirFlag string
	storeFlag   string
	closeStore  func()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// connect populates Workouts through OpenWorkouts, honoring the flag
// overrides. A pre-wired service is left alone.
func (a *App) connect() error {
	if a.Workouts != nil || a.OpenWorkouts == nil {
		return nil
	}
	workouts, closeStore, err := a.OpenWorkouts(a.dataDirFlag, a.storeFlag)
	if err != nil {
		return err
	}
	a.Workouts = workouts
	a.closeStore = closeStore
	return nil
}

// Close releases the store opened by connect, if any.
func (a *App) Close() {
	if a.closeStore != nil {
		a.closeStore()
	}
}

// NewRootCmd creates the top-level "fitlog" command and registers all
// subcommands against the provided App. Running it bare on a terminal
// drops into the interactive menu.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitlog",
		Short: "Personal fitness log",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.connect()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runMenu(app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&app.dataDirFlag, "data-dir", "", "Data directory (overrides config file and FITLOG_DATA_DIR)")
	root.PersistentFlags().StringVar(&app.storeFlag, "store", "", "Store backend, json or sqlite (overrides config file and FITLOG_STORE)")

	root.AddCommand(
		newAddCmd(app),
		newHistoryCmd(app),
		newFilterCmd(app),
	)

	return root
}
