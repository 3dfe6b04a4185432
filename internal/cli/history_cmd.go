package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show workout history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if typeFlag != "" {
				return printFiltered(ctx, app, typeFlag)
			}
			return printHistory(ctx, app)
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Only show workouts of this type")

	return cmd
}

func newFilterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filter TYPE",
		Short: "Show workouts of one type, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFiltered(context.Background(), app, args[0])
		},
	}
}

func printHistory(ctx context.Context, app *App) error {
	records, err := app.Workouts.History(ctx)
	if err != nil {
		return err
	}
	fmt.Print(formatter.FormatWorkoutList("Workout History", records))
	return nil
}

func printFiltered(ctx context.Context, app *App, rawType string) error {
	wtype, err := domain.ParseWorkoutType(rawType)
	if err != nil {
		return err
	}

	records, err := app.Workouts.Filter(ctx, wtype)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println(formatter.Dim(fmt.Sprintf("No %s workouts recorded.", wtype)))
		return nil
	}

	fmt.Print(formatter.FormatWorkoutList(string(wtype)+" Workouts", records))
	return nil
}
