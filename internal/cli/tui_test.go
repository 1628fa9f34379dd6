package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmoss/plank/internal/domain"
)

func TestTUI_BoardStartsEmpty(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewBoard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.View()
	assert.Contains(t, view, "ACTIVE (0)")
	assert.Contains(t, view, "FINISHED (0)")
	assert.Contains(t, view, "— empty —")
}

func TestTUI_QuitWithQ(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_BoardShowsSeededProjects(t *testing.T) {
	app := testApp(t)
	app.Store.Add("Plan launch", "Coordinate the announcement", 3)
	done := app.Store.Add("Office move", "", 5)
	app.Store.Move(done.ID, domain.StatusFinished)

	d := NewTestDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "ACTIVE (1)")
	assert.Contains(t, view, "FINISHED (1)")
	assert.Contains(t, view, "Plan launch")
	assert.Contains(t, view, "Office move")
	assert.Contains(t, view, "3 people")
}

func TestTUI_NewProjectFormOpensAndCancels(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('n')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.View(), "Title")

	d.PressEsc()
	assert.Equal(t, ViewBoard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Zero(t, app.Store.Len(), "cancelling must not add a project")
}

func TestTUI_SubmitProjectAddsToActiveColumn(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.SubmitProject("Plan launch", "", "3")

	assert.Equal(t, ViewBoard, d.ActiveViewID(), "wizard pops after submit")
	require.Equal(t, 1, app.Store.Len())

	snap := app.Store.Snapshot()
	assert.Equal(t, "Plan launch", snap[0].Title)
	assert.Equal(t, domain.StatusActive, snap[0].Status)
	assert.Equal(t, 3, snap[0].People)

	view := d.View()
	assert.Contains(t, view, "ACTIVE (1)")
	assert.Contains(t, view, "Plan launch")
	assert.Contains(t, view, "3 people")
	assert.Contains(t, d.Status(), "Added")
}

func TestTUI_SubmitInvalidTitleShowsBlockingNotice(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.SubmitProject("", "whatever", "3")

	assert.Equal(t, invalidInputNotice, d.Notice())
	assert.Zero(t, app.Store.Len())

	// The notice swallows everything except dismissal keys.
	d.PressKey('q')
	assert.False(t, d.IsQuitting())
	assert.NotEmpty(t, d.Notice())

	d.PressEnter()
	assert.Empty(t, d.Notice())

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_SubmitPeopleOutOfRangeShowsNotice(t *testing.T) {
	tests := []struct {
		name   string
		people string
	}{
		{"above range", "7"},
		{"below range", "0"},
		{"not a number", "many"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(t)
			d := NewTestDriver(t, app)

			d.SubmitProject("Plan launch", "", tc.people)

			assert.Equal(t, invalidInputNotice, d.Notice())
			assert.Zero(t, app.Store.Len())
		})
	}
}

func TestTUI_GrabCarryDrop(t *testing.T) {
	app := testApp(t)
	p := app.Store.Add("Plan launch", "", 3)

	d := NewTestDriver(t, app)

	// Grab the card under the cursor in the Active column.
	d.PressEnter()
	board := d.Board()
	require.True(t, board.carry.active)
	assert.Equal(t, p.ID, board.carry.payload)
	assert.Equal(t, 0, board.carry.accepting)

	// Aim at the Finished column: it becomes the accepting target.
	d.PressRight()
	assert.Equal(t, 1, d.Board().carry.accepting)
	assert.Contains(t, d.View(), "▾ drop")

	// Drop: the store transitions the project and both columns re-render.
	d.PressEnter()
	board = d.Board()
	assert.False(t, board.carry.active)
	assert.Equal(t, noColumn, board.carry.accepting, "accepting mark clears on drop")

	snap := app.Store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, domain.StatusFinished, snap[0].Status)

	view := d.View()
	assert.Contains(t, view, "ACTIVE (0)")
	assert.Contains(t, view, "FINISHED (1)")
}

func TestTUI_CarryCancelLeavesStatusUnchanged(t *testing.T) {
	app := testApp(t)
	app.Store.Add("Plan launch", "", 3)

	d := NewTestDriver(t, app)

	d.PressEnter()
	require.True(t, d.Board().carry.active)

	d.PressEsc()
	assert.False(t, d.Board().carry.active)
	assert.Equal(t, domain.StatusActive, app.Store.Snapshot()[0].Status)
}

func TestTUI_DropOnSameColumnFiresNoNotification(t *testing.T) {
	app := testApp(t)
	app.Store.Add("Plan launch", "", 3)

	notified := 0
	app.Store.Subscribe(func(snap []domain.Project) { notified++ })

	d := NewTestDriver(t, app)

	d.PressEnter() // grab
	d.PressEnter() // drop on the same column

	assert.Zero(t, notified, "same-status drop is a no-op")
	assert.Equal(t, domain.StatusActive, app.Store.Snapshot()[0].Status)
}

func TestTUI_AcceptingMarkFollowsFocusWhileCarrying(t *testing.T) {
	app := testApp(t)
	app.Store.Add("Plan launch", "", 3)

	d := NewTestDriver(t, app)

	d.PressEnter()
	d.PressRight()
	assert.Equal(t, 1, d.Board().carry.accepting)

	// Leaving the column clears its mark; the origin column holds it now.
	d.PressLeft()
	assert.Equal(t, 0, d.Board().carry.accepting)
}

func TestTUI_EndToEndSubmitThenFinish(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.SubmitProject("Plan launch", "", "3")

	view := d.View()
	assert.Contains(t, view, "ACTIVE (1)")
	assert.Contains(t, view, "Plan launch")

	d.PressEnter() // grab
	d.PressRight() // aim at Finished
	d.PressEnter() // drop

	view = d.View()
	assert.Contains(t, view, "ACTIVE (0)")
	assert.Contains(t, view, "FINISHED (1)")

	board := d.Board()
	assert.Empty(t, board.columns[0].items)
	require.Len(t, board.columns[1].items, 1)
	assert.Equal(t, "Plan launch", board.columns[1].items[0].Title)
}

func TestTUI_CursorNavigationStaysInBounds(t *testing.T) {
	app := testApp(t)
	app.Store.Add("First", "", 1)
	app.Store.Add("Second", "", 2)

	d := NewTestDriver(t, app)

	d.PressUp()
	assert.Equal(t, 0, d.Board().cursor[0])

	d.PressDown()
	assert.Equal(t, 1, d.Board().cursor[0])
	d.PressDown()
	assert.Equal(t, 1, d.Board().cursor[0], "cursor stops at the last card")
}
