package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/flow-tui/internal/command"
	"github.com/cnharrison/flow-tui/internal/filter"
	"github.com/cnharrison/flow-tui/pkg/clipboard"
)

// ScreenKind identifies the kind of a screen on the stack
type ScreenKind int

const (
	KindList ScreenKind = iota
	KindDetail
)

func (k ScreenKind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindDetail:
		return "detail"
	}
	return "unknown"
}

// Screen is one full-window view managed by the Stack
type Screen interface {
	Kind() ScreenKind
	// Primitive is the root widget of the screen
	Primitive() tview.Primitive
	// HandleKey consumes ev or returns it to the focused widget
	HandleKey(ev *tcell.EventKey) *tcell.EventKey
	// HandleCommand runs a colon command in the screen's scope
	HandleCommand(line string) command.Result
	Render()
	Focus()
}

// Context carries the application services every screen needs
type Context struct {
	Filter *filter.FilterState
	// Source names the loaded flows file in status text
	Source    string
	Clipboard clipboard.Writer
	Bell      func()
	SetFocus  func(tview.Primitive)
	Quit      func()
	Stack     *Stack
}
