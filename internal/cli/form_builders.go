package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fitlogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func fitlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// workoutTypeOptions builds huh options over the five workout types.
func workoutTypeOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.WorkoutTypes))
	for _, t := range domain.WorkoutTypes {
		options = append(options, huh.NewOption(string(t), string(t)))
	}
	return options
}

// addWorkoutForm collects a candidate workout: type select, duration and
// optional calories inputs. Field validation mirrors the domain rules so
// the user is corrected in place instead of after submit.
func addWorkoutForm(c *domain.Candidate) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Workout Type").
				Options(workoutTypeOptions()...).
				Value(&c.Type),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("30").
				Value(&c.Duration).
				Validate(validateRequiredPositiveInt),
			huh.NewInput().
				Title("Calories (blank to skip)").
				Placeholder("250").
				Value(&c.Calories).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(fitlogHuhTheme()).WithShowHelp(false)
}

// filterAll is the filter form choice that shows the full history.
const filterAll = "All"

// filterTypeOptions prepends the all-types choice to the workout types.
func filterTypeOptions() []huh.Option[string] {
	return append([]huh.Option[string]{huh.NewOption(filterAll, filterAll)}, workoutTypeOptions()...)
}

// filterTypeForm collects the workout type to filter history by.
func filterTypeForm(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Type?").
				Options(filterTypeOptions()...).
				Value(result),
		),
	).WithTheme(fitlogHuhTheme()).WithShowHelp(false)
}

// validateRequiredPositiveInt accepts only a positive integer.
func validateRequiredPositiveInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
