package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fitlog/internal/domain"
)

// FormatMinutes renders a duration like "45 min" or "1h 30m".
func FormatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%d min", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh %dm", min/60, min%60)
}

// HumanDate returns a human-friendly date for a workout timestamp,
// rendered in local time.
func HumanDate(t time.Time) string {
	local := t.Local()
	now := time.Now()

	y1, m1, d1 := now.Date()
	y2, m2, d2 := local.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today " + local.Format("15:04")
	}

	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday " + local.Format("15:04")
	}

	return local.Format("Jan 2, 2006 15:04")
}

// FormatWorkoutList renders records as a boxed table, newest first as given.
// An empty list gets a friendly empty-state line instead of a bare table.
func FormatWorkoutList(title string, records []*domain.WorkoutRecord) string {
	if len(records) == 0 {
		return Dim("No workouts yet. Use 'fitlog add' to log your first one.") + "\n"
	}

	headers := []string{"ID", "WHEN", "TYPE", "DURATION", "CALORIES"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		calories := fmt.Sprintf("%d", r.Calories)
		if r.Calories == 0 {
			calories = Dim("—")
		}
		rows = append(rows, []string{
			Dim(r.DisplayID()),
			HumanDate(r.CreatedAt),
			TypeLabel(r.Type),
			FormatMinutes(r.DurationMin),
			calories,
		})
	}

	table := RenderTable(headers, rows)
	table += "\n" + Dim(fmt.Sprintf("Total: %d", len(records)))
	return RenderBox(title, table) + "\n"
}

// FormatWorkoutSaved renders the confirmation shown after a successful add.
func FormatWorkoutSaved(r *domain.WorkoutRecord) string {
	calories := fmt.Sprintf("%d", r.Calories)
	if r.Calories == 0 {
		calories = "—"
	}
	return fmt.Sprintf("%s %s, %s, %s kcal (%s)\n",
		StyleGreen.Render("Saved:"),
		TypeLabel(r.Type),
		FormatMinutes(r.DurationMin),
		calories,
		Dim(HumanDate(r.CreatedAt)),
	)
}
