package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// menuChoice identifies what the user picked from the main menu.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceAdd
	choiceHistory
	choiceFilter
	choiceQuit
)

// menuEntry is a single option in the main menu.
type menuEntry struct {
	label  string
	key    string // single-key shortcut
	choice menuChoice
}

// menuModel presents the main fitlog menu and records the selection. The
// surrounding loop acts on it after the program exits, so the model itself
// stays free of storage calls.
type menuModel struct {
	cursor   int
	entries  []menuEntry
	selected menuChoice
}

func newMenuModel() *menuModel {
	return &menuModel{
		entries: []menuEntry{
			{label: "Add Workout", key: "a", choice: choiceAdd},
			{label: "View History", key: "h", choice: choiceHistory},
			{label: "Filter by Type", key: "f", choice: choiceFilter},
			{label: "Quit", key: "q", choice: choiceQuit},
		},
	}
}

func (m *menuModel) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *menuModel) Init() tea.Cmd { return nil }

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.selected = choiceQuit
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.entries[m.cursor].choice
			return m, tea.Quit
		default:
			for i, e := range m.entries {
				if msg.String() == e.key {
					m.cursor = i
					m.selected = e.choice
					return m, tea.Quit
				}
			}
		}
	}
	return m, nil
}

func (m *menuModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.StyleHeader.Render("FITLOG") + "\n")
	b.WriteString("  " + formatter.Dim("personal fitness log") + "\n\n")

	for i, e := range m.entries {
		cursor := "  "
		style := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		keyHint := formatter.Dim("[" + e.key + "]")
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", cursor, style.Render(e.label), keyHint))
	}

	b.WriteString("\n  " + formatter.Dim("↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

// runMenu loops the main menu until the user quits. Each pass runs the menu
// as its own bubbletea program and then dispatches the selection, so forms
// and printed output never fight the alternate screen.
func runMenu(app *App) error {
	ctx := context.Background()

	for {
		model := newMenuModel()
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		switch model.selected {
		case choiceAdd:
			if err := menuAddWorkout(ctx, app); err != nil {
				return err
			}
		case choiceHistory:
			if err := printHistory(ctx, app); err != nil {
				return err
			}
		case choiceFilter:
			if err := menuFilterWorkouts(ctx, app); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// menuAddWorkout runs the add form and logs the result. A validation
// failure is printed and the menu continues; it never aborts the session.
func menuAddWorkout(ctx context.Context, app *App) error {
	var c domain.Candidate
	if err := addWorkoutForm(&c).Run(); err != nil {
		return err
	}

	r, err := app.Workouts.Log(ctx, c)
	if err != nil {
		if domain.IsValidationError(err) {
			fmt.Println(formatter.StyleRed.Render(err.Error()))
			return nil
		}
		return err
	}

	fmt.Print(formatter.FormatWorkoutSaved(r))
	return nil
}

func menuFilterWorkouts(ctx context.Context, app *App) error {
	var raw string
	if err := filterTypeForm(&raw).Run(); err != nil {
		return err
	}
	return showFilterChoice(ctx, app, raw)
}

// showFilterChoice routes a filter form selection. "All" falls through to
// the unfiltered history view.
func showFilterChoice(ctx context.Context, app *App, raw string) error {
	if raw == filterAll {
		return printHistory(ctx, app)
	}
	return printFiltered(ctx, app, raw)
}
