package cli

import (
	"testing"

	"github.com/alexanderramin/fitlog/internal/teatest"
	"github.com/stretchr/testify/assert"
)

func newMenuDriver(t *testing.T) (*teatest.Driver, *menuModel) {
	t.Helper()
	model := newMenuModel()
	return teatest.New(t, model), model
}

func TestMenu_InitialView(t *testing.T) {
	d, _ := newMenuDriver(t)

	view := d.View()
	assert.Contains(t, view, "FITLOG")
	assert.Contains(t, view, "Add Workout")
	assert.Contains(t, view, "View History")
	assert.Contains(t, view, "Filter by Type")
	assert.Contains(t, view, "Quit")
}

func TestMenu_EnterSelectsFirstEntry(t *testing.T) {
	d, model := newMenuDriver(t)

	d.PressEnter()

	assert.True(t, d.Quitting)
	assert.Equal(t, choiceAdd, model.selected)
}

func TestMenu_ArrowNavigation(t *testing.T) {
	d, model := newMenuDriver(t)

	d.PressDown()
	d.PressEnter()

	assert.Equal(t, choiceHistory, model.selected)
}

func TestMenu_CursorStopsAtEdges(t *testing.T) {
	d, model := newMenuDriver(t)

	d.PressUp()
	assert.Equal(t, 0, model.cursor)

	for i := 0; i < 10; i++ {
		d.PressDown()
	}
	assert.Equal(t, len(model.entries)-1, model.cursor)
}

func TestMenu_Shortcuts(t *testing.T) {
	tests := []struct {
		key  rune
		want menuChoice
	}{
		{key: 'a', want: choiceAdd},
		{key: 'h', want: choiceHistory},
		{key: 'f', want: choiceFilter},
		{key: 'q', want: choiceQuit},
	}

	for _, tt := range tests {
		d, model := newMenuDriver(t)
		d.PressKey(tt.key)
		assert.True(t, d.Quitting)
		assert.Equal(t, tt.want, model.selected)
	}
}

func TestMenu_EscQuits(t *testing.T) {
	d, model := newMenuDriver(t)

	d.PressEsc()

	assert.True(t, d.Quitting)
	assert.Equal(t, choiceQuit, model.selected)
}

func TestMenu_UnknownKeyIgnored(t *testing.T) {
	d, model := newMenuDriver(t)

	d.PressKey('z')

	assert.False(t, d.Quitting)
	assert.Equal(t, choiceNone, model.selected)
}
