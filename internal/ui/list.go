package ui

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/flow-tui/internal/command"
	"github.com/cnharrison/flow-tui/internal/flow"
	"github.com/cnharrison/flow-tui/internal/format"
	"github.com/cnharrison/flow-tui/internal/viewport"
)

const (
	headerRows    = 1
	halfPage      = 0.5
	maxHostLength = 40
	maxPathLength = 60

	listHints = "j/k move, Enter details, : command, q quit"
)

var listColumns = []string{"#", "Method", "Host", "Path", "Status"}

// ListScreen is the root screen: one table row per flow of the filtered view
type ListScreen struct {
	ctx    *Context
	table  *tview.Table
	status *tview.TextView
	layout *tview.Flex
	prompt *commandLine
	model  *viewport.Model

	// message replaces the default status text until the next state change
	message string
}

// NewListScreen creates the List screen and subscribes it to filter changes
func NewListScreen(ctx *Context) *ListScreen {
	l := &ListScreen{
		ctx:   ctx,
		model: viewport.New(1),
	}

	l.table = tview.NewTable().
		SetFixed(headerRows, 0).
		SetSelectable(true, false).
		SetSelectedStyle(tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorYellow))
	l.table.SetBorder(false)

	l.status = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)

	l.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(l.table, 0, 1, true).
		AddItem(l.status, 1, 0, false)
	l.prompt = newCommandLine(ctx, l.layout, l.runCommand, l.Focus)

	ctx.Filter.Subscribe(l.onFilterChanged)
	return l
}

func (l *ListScreen) Kind() ScreenKind { return KindList }

func (l *ListScreen) Primitive() tview.Primitive { return l.layout }

// Render re-populates the table from the live view and refreshes the status
func (l *ListScreen) Render() {
	l.populate()
	l.updateStatus()
}

// Focus hands focus to the prompt when open, otherwise to the table
func (l *ListScreen) Focus() {
	if l.prompt.Active() {
		l.prompt.Focus()
		return
	}
	l.ctx.SetFocus(l.table)
}

func (l *ListScreen) onFilterChanged() {
	log.Printf("content-type filter %q: %d/%d flows", l.ctx.Filter.ContentType(), len(l.ctx.Filter.View()), l.ctx.Filter.Total())
	l.Render()
}

// populate rebuilds the rows, keeping the cursor where it was when possible
func (l *ListScreen) populate() {
	l.syncViewport()
	view := l.ctx.Filter.View()

	l.table.Clear()
	for col, title := range listColumns {
		l.table.SetCell(0, col, tview.NewTableCell(title).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, f := range view {
		row := i + headerRows
		method, host, path := "-", "-", "-"
		if f.Request != nil {
			method = f.Request.Method
			host = format.Truncate(f.Request.Host, maxHostLength)
			path = format.Truncate(f.Request.Path, maxPathLength)
		}

		status := tview.NewTableCell(statusText(f))
		if f.Response != nil {
			status.SetTextColor(tcell.GetColor(statusColor(f.Response.StatusCode)))
		}

		cells := []*tview.TableCell{
			tview.NewTableCell(strconv.Itoa(i + 1)).SetAlign(tview.AlignRight),
			tview.NewTableCell(tview.Escape(method)).SetTextColor(tcell.ColorDarkCyan),
			tview.NewTableCell(tview.Escape(host)).SetTextColor(tcell.ColorTeal),
			tview.NewTableCell(tview.Escape(path)).SetExpansion(1),
			status,
		}
		for col, cell := range cells {
			l.table.SetCell(row, col, cell.SetReference(f.ID))
		}
	}

	l.model.SetRowCount(len(view))
	l.applyViewport()
}

// syncViewport copies the table's selection and scroll state into the model
func (l *ListScreen) syncViewport() {
	row, col := l.table.GetSelection()
	rowOffset, _ := l.table.GetOffset()
	_, _, _, height := l.table.GetInnerRect()

	l.model.RowCount = max(0, l.table.GetRowCount()-headerRows)
	l.model.CursorRow = max(0, row-headerRows)
	l.model.CursorColumn = col
	l.model.ScrollTop = rowOffset
	l.model.SetHeight(height - headerRows)
	if l.model.RowCount > 0 && l.model.CursorRow >= l.model.RowCount {
		l.model.CursorRow = l.model.RowCount - 1
	}
}

// applyViewport pushes the model's cursor and scroll state to the table
func (l *ListScreen) applyViewport() {
	l.table.Select(l.model.CursorRow+headerRows, l.model.CursorColumn)
	l.table.SetOffset(l.model.ScrollTop, 0)
}

// Cursor returns the position of the selected row in the filtered view
func (l *ListScreen) Cursor() int {
	l.syncViewport()
	return l.model.CursorRow
}

// FocusFlow moves the cursor to position in the filtered view
func (l *ListScreen) FocusFlow(position int) {
	l.syncViewport()
	if l.model.MoveCursor(position-l.model.CursorRow) == viewport.Moved {
		l.applyViewport()
	}
}

// SelectedFlow returns the flow under the cursor, or nil for an empty table
func (l *ListScreen) SelectedFlow() *flow.Flow {
	l.syncViewport()
	if l.model.RowCount == 0 {
		return nil
	}
	ref := l.table.GetCell(l.model.CursorRow+headerRows, 0).GetReference()
	id, ok := ref.(int)
	if !ok {
		return nil
	}
	pos := l.ctx.Filter.Position(id)
	if pos < 0 {
		return nil
	}
	return l.ctx.Filter.View()[pos]
}

func (l *ListScreen) context() *Context { return l.ctx }

// HandleKey handles List key bindings
func (l *ListScreen) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	if l.prompt.Active() {
		return l.prompt.HandleKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyDown:
		l.move(func(m *viewport.Model) viewport.Motion { return m.MoveCursor(1) })
		return nil
	case tcell.KeyUp:
		l.move(func(m *viewport.Model) viewport.Motion { return m.MoveCursor(-1) })
		return nil
	case tcell.KeyPgDn:
		l.move(func(m *viewport.Model) viewport.Motion { return m.PageMove(halfPage) })
		return nil
	case tcell.KeyPgUp:
		l.move(func(m *viewport.Model) viewport.Motion { return m.PageMove(-halfPage) })
		return nil
	case tcell.KeyHome:
		l.move((*viewport.Model).JumpTop)
		return nil
	case tcell.KeyEnd:
		l.move((*viewport.Model).JumpBottom)
		return nil
	case tcell.KeyEnter:
		l.openSelected()
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			l.move(func(m *viewport.Model) viewport.Motion { return m.MoveCursor(1) })
		case 'k':
			l.move(func(m *viewport.Model) viewport.Motion { return m.MoveCursor(-1) })
		case 'd':
			l.move(func(m *viewport.Model) viewport.Motion { return m.PageMove(halfPage) })
		case 'u':
			l.move(func(m *viewport.Model) viewport.Motion { return m.PageMove(-halfPage) })
		case 'g':
			l.move((*viewport.Model).JumpTop)
		case 'G':
			l.move((*viewport.Model).JumpBottom)
		case 'H':
			l.jumpScreen((*viewport.Model).JumpScreenTop)
		case 'L':
			l.jumpScreen((*viewport.Model).JumpScreenBottom)
		case ':':
			l.prompt.Open()
		case '?':
			showHelp(l.ctx)
		case 'q':
			l.ctx.Quit()
		default:
			return ev
		}
		return nil
	}
	return ev
}

// move applies a cursor motion. Only an empty table rings the bell.
func (l *ListScreen) move(motion func(*viewport.Model) viewport.Motion) {
	l.syncViewport()
	switch motion(l.model) {
	case viewport.Empty:
		l.ctx.Bell()
	case viewport.Moved:
		l.applyViewport()
		l.clearMessage()
	}
}

func (l *ListScreen) jumpScreen(jump func(*viewport.Model) (viewport.ScrollRequest, bool)) {
	l.syncViewport()
	if _, ok := jump(l.model); !ok {
		l.ctx.Bell()
		return
	}
	l.applyViewport()
	l.clearMessage()
}

func (l *ListScreen) openSelected() {
	l.syncViewport()
	f := l.SelectedFlow()
	if f == nil {
		l.ctx.Bell()
		return
	}
	pos := l.ctx.Filter.Position(f.ID)
	l.ctx.Stack.Push(NewDetailScreen(l.ctx, pos, l.FocusFlow))
}

// HandleCommand runs line in List scope
func (l *ListScreen) HandleCommand(line string) command.Result {
	res := listCommands.Dispatch(l, line)
	log.Printf("list command %q: %s", line, res.Status)
	return res
}

// runCommand runs a line submitted from the prompt, whose ":" is only a label
func (l *ListScreen) runCommand(line string) {
	l.showResult(l.HandleCommand(":" + line))
}

func (l *ListScreen) showResult(res command.Result) {
	l.message = res.Status
	if res.Bell {
		l.ctx.Bell()
	}
	l.updateStatus()
}

func (l *ListScreen) clearMessage() {
	if l.message != "" {
		l.message = ""
		l.updateStatus()
	}
}

// statusLine is the default status text for the current filter state
func (l *ListScreen) statusLine() string {
	fs := l.ctx.Filter
	shown, total := len(fs.View()), fs.Total()
	switch {
	case !fs.Active():
		return fmt.Sprintf("Loaded %d flows from %s | %s", total, l.ctx.Source, listHints)
	case shown == 0:
		return fmt.Sprintf("No flows match Content-Type \"%s\" (0/%d) | : command, q quit", fs.ContentType(), total)
	}
	return fmt.Sprintf("Showing %d/%d flows (Content-Type: \"%s\") | %s", shown, total, fs.ContentType(), listHints)
}

// StatusText returns the status bar text without color tags
func (l *ListScreen) StatusText() string {
	if l.message != "" {
		return l.message
	}
	return l.statusLine()
}

func (l *ListScreen) updateStatus() {
	l.status.SetText(" " + tview.Escape(l.StatusText()))
}
