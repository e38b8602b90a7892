// Package viewport models the cursor and visible window of a row table
// independently of any widget, so that motion rules can be tested without a
// terminal.
package viewport

import (
	"math"

	"github.com/cnharrison/flow-tui/internal/util"
)

// Motion is the outcome of a cursor motion.
type Motion int

const (
	// Moved means the cursor changed row.
	Moved Motion = iota
	// Clamped means the cursor was already at the boundary in the requested
	// direction.
	Clamped
	// Empty means the table has no rows.
	Empty
)

func (m Motion) String() string {
	switch m {
	case Moved:
		return "moved"
	case Clamped:
		return "clamped"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// Align selects where ScrollTo places the target row.
type Align int

const (
	// AlignNone scrolls the minimum needed to make the row visible.
	AlignNone Align = iota
	// AlignStart puts the row at the top of the window.
	AlignStart
	// AlignEnd puts the row at the bottom of the window.
	AlignEnd
)

// ScrollRequest is an explicit scroll-to-row instruction.
type ScrollRequest struct {
	Row   int
	Align Align
}

// Model is the cursor and window state of a table with RowCount rows shown
// in a window of height rows.
type Model struct {
	CursorRow    int
	CursorColumn int
	ScrollTop    int
	RowCount     int

	height int
}

// New creates a model for a window of height rows.
func New(height int) *Model {
	m := &Model{}
	m.SetHeight(height)
	return m
}

// Height returns the usable window height.
func (m *Model) Height() int {
	return m.height
}

// SetHeight changes the usable window height. Heights below one are treated
// as one.
func (m *Model) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	m.height = height
	m.clampScroll()
	m.scrollIntoView()
}

// SetRowCount re-populates the model with n rows, keeping the cursor where it
// was when still in range.
func (m *Model) SetRowCount(n int) {
	if n < 0 {
		n = 0
	}
	m.RowCount = n
	if n == 0 {
		m.CursorRow = 0
		m.ScrollTop = 0
		return
	}
	m.CursorRow = util.Clamp(m.CursorRow, 0, n-1)
	m.clampScroll()
	m.scrollIntoView()
}

// VisibleRows returns the number of rows the window shows.
func (m *Model) VisibleRows() int {
	return min(m.RowCount, m.height)
}

// VisibleBounds returns the first and last row of the window. For an empty
// table bottom is less than top.
func (m *Model) VisibleBounds() (top, bottom int) {
	return m.ScrollTop, m.ScrollTop + m.VisibleRows() - 1
}

// MoveCursor moves the cursor by offset rows, clamped to the table.
func (m *Model) MoveCursor(offset int) Motion {
	if m.RowCount == 0 {
		return Empty
	}
	target := util.Clamp(m.CursorRow+offset, 0, m.RowCount-1)
	if target == m.CursorRow {
		return Clamped
	}
	m.CursorRow = target
	m.scrollIntoView()
	return Moved
}

// PageMove moves the cursor by a fraction of the window, at least one row.
// Negative fractions move up.
func (m *Model) PageMove(fraction float64) Motion {
	rows := max(1, int(math.Floor(float64(m.VisibleRows())*math.Abs(fraction))))
	return m.MoveCursor(rows * util.Sign(fraction))
}

// JumpTop moves the cursor to the first row.
func (m *Model) JumpTop() Motion {
	return m.MoveCursor(-m.CursorRow)
}

// JumpBottom moves the cursor to the last row.
func (m *Model) JumpBottom() Motion {
	return m.MoveCursor(m.RowCount - 1 - m.CursorRow)
}

// JumpScreenTop moves the cursor to the top row of the window and pins that
// row to the top. It returns false for an empty table.
func (m *Model) JumpScreenTop() (ScrollRequest, bool) {
	if m.RowCount == 0 {
		return ScrollRequest{}, false
	}
	top, _ := m.VisibleBounds()
	m.CursorRow = top
	req := ScrollRequest{Row: top, Align: AlignStart}
	m.ScrollTo(req.Row, req.Align)
	return req, true
}

// JumpScreenBottom moves the cursor to the bottom row of the window and pins
// that row to the bottom. It returns false for an empty table.
func (m *Model) JumpScreenBottom() (ScrollRequest, bool) {
	if m.RowCount == 0 {
		return ScrollRequest{}, false
	}
	_, bottom := m.VisibleBounds()
	m.CursorRow = bottom
	req := ScrollRequest{Row: bottom, Align: AlignEnd}
	m.ScrollTo(req.Row, req.Align)
	return req, true
}

// ScrollTo scrolls the window so that row is visible at the given alignment.
// The cursor does not move.
func (m *Model) ScrollTo(row int, align Align) {
	if m.RowCount == 0 {
		return
	}
	row = util.Clamp(row, 0, m.RowCount-1)
	switch align {
	case AlignStart:
		m.ScrollTop = row
	case AlignEnd:
		m.ScrollTop = row - m.VisibleRows() + 1
	default:
		m.reveal(row)
	}
	m.clampScroll()
}

func (m *Model) scrollIntoView() {
	if m.RowCount == 0 {
		return
	}
	m.reveal(m.CursorRow)
	m.clampScroll()
}

func (m *Model) reveal(row int) {
	visible := m.VisibleRows()
	if row < m.ScrollTop {
		m.ScrollTop = row
	} else if row >= m.ScrollTop+visible {
		m.ScrollTop = row - visible + 1
	}
}

func (m *Model) clampScroll() {
	m.ScrollTop = util.Clamp(m.ScrollTop, 0, m.RowCount-m.VisibleRows())
}
