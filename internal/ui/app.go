package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/flow-tui/internal/filter"
	"github.com/cnharrison/flow-tui/internal/flow"
	"github.com/cnharrison/flow-tui/pkg/clipboard"
)

// Options configure a new Application
type Options struct {
	// Source names the flows file in status text
	Source string
	// ContentType is the Content-Type filter installed at startup
	ContentType string
	// Clipboard receives cp output. Defaults to the system clipboard.
	Clipboard clipboard.Writer
}

// Application represents the flow viewer
type Application struct {
	app    *tview.Application
	filter *filter.FilterState
	ctx    *Context
	stack  *Stack
	list   *ListScreen

	mu     sync.Mutex
	screen tcell.Screen
}

// NewApplication creates the viewer over store with the List screen on top
func NewApplication(store *flow.Store, opts Options) *Application {
	a := &Application{
		app:    tview.NewApplication(),
		filter: filter.NewFilterState(store, opts.ContentType),
	}

	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.NewSystem()
	}

	a.ctx = &Context{
		Filter:    a.filter,
		Source:    opts.Source,
		Clipboard: cb,
		Bell:      a.bell,
		SetFocus:  func(p tview.Primitive) { a.app.SetFocus(p) },
		Quit:      a.app.Stop,
	}

	a.setupStyles()
	a.stack = NewStack(a.ctx)
	a.list = NewListScreen(a.ctx)
	a.stack.Push(a.list)
	return a
}

// setupStyles configures tview for a transparent background
func (a *Application) setupStyles() {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	tview.Styles.ContrastBackgroundColor = tcell.ColorDefault
}

// Run starts the event loop and blocks until the application quits
func (a *Application) Run() error {
	a.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		a.mu.Lock()
		a.screen = screen
		a.mu.Unlock()
		return false
	})
	a.app.SetInputCapture(a.stack.HandleKey)

	return a.app.SetRoot(a.stack.Primitive(), true).SetFocus(a.list.table).Run()
}

// Stack returns the screen stack
func (a *Application) Stack() *Stack {
	return a.stack
}

// bell rings the terminal bell once the screen is known
func (a *Application) bell() {
	a.mu.Lock()
	screen := a.screen
	a.mu.Unlock()
	if screen != nil {
		screen.Beep()
	}
}
