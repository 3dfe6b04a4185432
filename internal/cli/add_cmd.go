package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var typeFlag, minutesFlag, caloriesFlag string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a workout",
		Long: `Log a workout with its type, duration, and calories burned.

With no flags on a terminal, an interactive form collects the values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			c := domain.Candidate{
				Type:     typeFlag,
				Duration: minutesFlag,
				Calories: caloriesFlag,
			}

			if c.Type == "" && c.Duration == "" && c.Calories == "" {
				if !app.interactive() {
					return fmt.Errorf("no terminal detected: pass --type and --minutes (see 'fitlog add --help')")
				}
				if err := addWorkoutForm(&c).Run(); err != nil {
					return err
				}
			}

			r, err := app.Workouts.Log(ctx, c)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatWorkoutSaved(r))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Workout type (Running, Cycling, Strength, Yoga, Other)")
	cmd.Flags().StringVar(&minutesFlag, "minutes", "", "Duration in minutes")
	cmd.Flags().StringVar(&caloriesFlag, "calories", "", "Calories burned (optional)")

	return cmd
}
