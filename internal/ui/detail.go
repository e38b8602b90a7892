package ui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/flow-tui/internal/command"
	"github.com/cnharrison/flow-tui/internal/flow"
	"github.com/cnharrison/flow-tui/internal/format"
)

// Panel is one side of a flow shown by the Detail screen
type Panel int

const (
	PanelRequest Panel = iota
	PanelResponse
)

func (p Panel) String() string {
	if p == PanelResponse {
		return "Response"
	}
	return "Request"
}

const detailHints = "Tab switch, 1/2 panel, n/p next/prev, Esc back, : command"

// initialPanel is Request when the flow has one, else Response when present
func initialPanel(f *flow.Flow) Panel {
	if f.Request == nil && f.Response != nil {
		return PanelResponse
	}
	return PanelRequest
}

// DetailScreen shows one flow of the filtered view with a Request and a
// Response panel, exactly one of them visible
type DetailScreen struct {
	ctx       *Context
	formatter *format.ContentFormatter
	// follow moves the List cursor after navigating to another flow
	follow func(position int)

	position int
	flowID   int
	panel    Panel

	requestView  *tview.TextView
	responseView *tview.TextView
	panels       *tview.Pages
	status       *tview.TextView
	layout       *tview.Flex
	prompt       *commandLine

	message string
}

// NewDetailScreen creates a Detail screen for the flow at position in the
// filtered view
func NewDetailScreen(ctx *Context, position int, follow func(int)) *DetailScreen {
	d := &DetailScreen{
		ctx:       ctx,
		formatter: format.NewContentFormatter(),
		follow:    follow,
	}

	d.requestView = tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetWordWrap(true)
	d.requestView.SetBorder(true).SetTitle(" Request ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorDarkCyan)
	d.responseView = tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetWordWrap(true)
	d.responseView.SetBorder(true).SetTitle(" Response ").SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorDarkGreen)

	d.panels = tview.NewPages().
		AddPage(PanelRequest.String(), d.requestView, true, true).
		AddPage(PanelResponse.String(), d.responseView, true, false)

	d.status = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)

	d.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.panels, 0, 1, true).
		AddItem(d.status, 1, 0, false)
	d.prompt = newCommandLine(ctx, d.layout, d.runCommand, d.Focus)

	d.load(position)
	return d
}

func (d *DetailScreen) Kind() ScreenKind { return KindDetail }

func (d *DetailScreen) Primitive() tview.Primitive { return d.layout }

func (d *DetailScreen) context() *Context { return d.ctx }

// load switches the screen to the flow at position and resets the panel
func (d *DetailScreen) load(position int) {
	view := d.ctx.Filter.View()
	if position < 0 || position >= len(view) {
		return
	}
	d.position = position
	d.flowID = view[position].ID
	d.panel = initialPanel(view[position])
}

// Position returns the position of the shown flow in the live view
func (d *DetailScreen) Position() int {
	if pos := d.ctx.Filter.Position(d.flowID); pos >= 0 {
		return pos
	}
	return d.position
}

// SelectedFlow returns the flow being shown
func (d *DetailScreen) SelectedFlow() *flow.Flow {
	view := d.ctx.Filter.View()
	pos := d.Position()
	if pos < 0 || pos >= len(view) {
		return nil
	}
	return view[pos]
}

// ActivePanel returns the visible panel
func (d *DetailScreen) ActivePanel() Panel {
	return d.panel
}

// Render fills both panels and shows the active one
func (d *DetailScreen) Render() {
	f := d.SelectedFlow()
	if f == nil {
		d.requestView.SetText("[dim]" + noRequestText + "[white]")
		d.responseView.SetText("[dim]" + noResponseText + "[white]")
	} else {
		d.requestView.SetText(renderRequest(f, d.formatter))
		d.responseView.SetText(renderResponse(f, d.formatter))
	}
	d.requestView.ScrollToBeginning()
	d.responseView.ScrollToBeginning()
	d.panels.SwitchToPage(d.panel.String())
	d.updateStatus()
}

// Focus hands focus to the prompt when open, otherwise to the active panel
func (d *DetailScreen) Focus() {
	if d.prompt.Active() {
		d.prompt.Focus()
		return
	}
	d.ctx.SetFocus(d.activeView())
}

func (d *DetailScreen) activeView() *tview.TextView {
	if d.panel == PanelResponse {
		return d.responseView
	}
	return d.requestView
}

// ShowRequest makes the Request panel visible
func (d *DetailScreen) ShowRequest() {
	d.setPanel(PanelRequest)
}

// ShowResponse makes the Response panel visible
func (d *DetailScreen) ShowResponse() {
	d.setPanel(PanelResponse)
}

// Cycle toggles between the two panels
func (d *DetailScreen) Cycle() {
	if d.panel == PanelRequest {
		d.setPanel(PanelResponse)
	} else {
		d.setPanel(PanelRequest)
	}
}

func (d *DetailScreen) setPanel(p Panel) {
	if d.panel == p {
		return
	}
	d.panel = p
	d.panels.SwitchToPage(p.String())
	d.message = ""
	d.Focus()
	d.updateStatus()
}

// Next shows the following flow of the live view. At the end it rings the
// bell and returns false.
func (d *DetailScreen) Next() bool {
	return d.step(1)
}

// Previous shows the preceding flow of the live view. At the start it rings
// the bell and returns false.
func (d *DetailScreen) Previous() bool {
	return d.step(-1)
}

func (d *DetailScreen) step(offset int) bool {
	target := d.Position() + offset
	if target < 0 || target >= len(d.ctx.Filter.View()) {
		d.ctx.Bell()
		return false
	}

	d.load(target)
	d.message = ""
	d.Render()
	d.Focus()
	if d.follow != nil {
		d.follow(target)
	}
	return true
}

// HandleKey handles Detail key bindings. Scrolling keys fall through to the
// focused panel.
func (d *DetailScreen) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	if d.prompt.Active() {
		return d.prompt.HandleKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		d.ctx.Stack.Pop()
		return nil
	case tcell.KeyTab:
		d.Cycle()
		return nil
	case tcell.KeyRight:
		d.Next()
		return nil
	case tcell.KeyLeft:
		d.Previous()
		return nil
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			d.ctx.Quit()
		case '1':
			d.ShowRequest()
		case '2':
			d.ShowResponse()
		case 'n':
			d.Next()
		case 'p':
			d.Previous()
		case ':':
			d.prompt.Open()
		case '?':
			showHelp(d.ctx)
		default:
			return ev
		}
		return nil
	}
	return ev
}

// HandleCommand runs line in Detail scope
func (d *DetailScreen) HandleCommand(line string) command.Result {
	res := detailCommands.Dispatch(d, line)
	log.Printf("detail command %q: %s", line, res.Status)
	return res
}

func (d *DetailScreen) runCommand(line string) {
	res := d.HandleCommand(":" + line)
	d.message = res.Status
	if res.Bell {
		d.ctx.Bell()
	}
	d.updateStatus()
}

// StatusText returns the status bar text without color tags
func (d *DetailScreen) StatusText() string {
	if d.message != "" {
		return d.message
	}
	return fmt.Sprintf("Flow %d/%d | %s | %s", d.Position()+1, len(d.ctx.Filter.View()), d.panel, detailHints)
}

func (d *DetailScreen) updateStatus() {
	d.status.SetText(" " + tview.Escape(d.StatusText()))
}
