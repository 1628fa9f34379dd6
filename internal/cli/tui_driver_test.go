package cli

import (
	"testing"

	"github.com/davidmoss/plank/internal/store"
	"github.com/davidmoss/plank/internal/teatest"
)

// TestDriver wraps teatest.Driver with plank-specific inspection methods.
// It provides access to appModel internals (view stack, modal notice,
// board state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// testApp builds an App backed by a fresh in-memory store.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Store:         store.New(),
		IsInteractive: func() bool { return true },
	}
}

// NewTestDriver constructs the appModel, sets terminal size, and drains
// Init() so the board reflects anything already seeded into the store.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Board returns the board view at the bottom of the stack.
func (d *TestDriver) Board() *boardView {
	return d.appModel().viewStack[0].(*boardView)
}

// Notice returns the pending modal notice text, or "" when none is shown.
func (d *TestDriver) Notice() string {
	return d.appModel().notice
}

// Status returns the transient footer status line.
func (d *TestDriver) Status() string {
	return d.appModel().status
}

// IsQuitting reports whether the app has quit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

// SubmitProject drives the new-project form end to end: opens it with 'n',
// types the three fields, and advances with Enter after each.
func (d *TestDriver) SubmitProject(title, description, people string) {
	d.T.Helper()
	d.PressKey('n')
	d.Type(title)
	d.PressEnter()
	d.Type(description)
	d.PressEnter()
	d.Type(people)
	d.PressEnter()
}
