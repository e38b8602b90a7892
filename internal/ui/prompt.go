package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/flow-tui/internal/command"
)

// commandLine is the ":" prompt at the bottom of a screen. Its row in the
// parent layout is collapsed while the prompt is closed.
type commandLine struct {
	state  command.Prompt
	field  *tview.InputField
	parent *tview.Flex
	ctx    *Context

	// submit receives the typed line after the prompt has been closed
	submit func(line string)
	// closed runs whenever the prompt closes, to hand focus back
	closed func()
}

func newCommandLine(ctx *Context, parent *tview.Flex, submit func(string), closed func()) *commandLine {
	c := &commandLine{
		field:  tview.NewInputField(),
		parent: parent,
		ctx:    ctx,
		submit: submit,
		closed: closed,
	}
	c.field.SetLabel(":")
	c.field.SetFieldWidth(0)
	c.field.SetFieldBackgroundColor(tcell.ColorDefault)
	c.field.SetChangedFunc(func(text string) {
		c.state.SetBuffer(text)
	})
	parent.AddItem(c.field, 0, 0, false)
	return c
}

// Active reports whether the prompt is open
func (c *commandLine) Active() bool {
	return c.state.Active()
}

// Open shows the prompt and focuses it. Opening an open prompt does nothing.
func (c *commandLine) Open() {
	if !c.state.Open() {
		return
	}
	c.field.SetText("")
	c.parent.ResizeItem(c.field, 1, 0)
	c.ctx.SetFocus(c.field)
}

// Cancel closes the prompt and discards what was typed
func (c *commandLine) Cancel() {
	c.state.Cancel()
	c.hide()
}

// SetText replaces the typed text
func (c *commandLine) SetText(text string) {
	c.field.SetText(text)
	c.state.SetBuffer(text)
}

// HandleKey handles a key while the prompt is open. Escape and Enter are
// taken here; every other key edits the field.
func (c *commandLine) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.Cancel()
		return nil
	case tcell.KeyEnter:
		c.state.SetBuffer(c.field.GetText())
		line, ok := c.state.Submit()
		c.hide()
		if ok {
			c.submit(line)
		}
		return nil
	}
	return ev
}

func (c *commandLine) hide() {
	c.field.SetText("")
	c.parent.ResizeItem(c.field, 0, 0)
	if c.closed != nil {
		c.closed()
	}
}

// Focus focuses the input field
func (c *commandLine) Focus() {
	c.ctx.SetFocus(c.field)
}
