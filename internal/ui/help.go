package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpOverlay = "help"

const helpText = `[yellow]Flow list:[white]
  [cyan]j/k, Down/Up[white]    Move down/up
  [cyan]d/u, PgDn/PgUp[white]  Half page down/up
  [cyan]g/G, Home/End[white]   Go to first/last flow
  [cyan]H/L[white]             Go to top/bottom of the screen
  [cyan]Enter[white]           Open flow details

[yellow]Flow details:[white]
  [cyan]Tab[white]             Switch between Request and Response
  [cyan]1/2[white]             Show Request/Response
  [cyan]n/p, Right/Left[white] Next/previous flow
  [cyan]j/k, g/G[white]        Scroll the panel
  [cyan]Esc, Backspace[white]  Back to the list

[yellow]Commands:[white]
  [cyan]:set ctype <value>[white]       Filter by request Content-Type (empty clears)
  [cyan]:cp request|response[white]     Copy a body to the clipboard
  [cyan]:cp curl[white]                 Copy the request as a cURL command
  [cyan]:cp summary[white]              Copy a Markdown summary of the flow
  [cyan]:help[white]                    Show this help
  [cyan]:q[white]                       Quit

[yellow]Anywhere:[white]
  [cyan]:[white]               Open the command line (Esc cancels)
  [cyan]?[white]               Toggle this help
  [cyan]q[white]               Quit`

// commandIndex lists the command names each screen accepts. It is filled in
// by init since the command tables themselves open this help.
var commandIndex string

func init() {
	commandIndex = fmt.Sprintf("\n\n[yellow]Available commands:[white]\n  [cyan]List[white]     %s\n  [cyan]Details[white]  %s",
		strings.Join(listCommands.Names(), ", "), strings.Join(detailCommands.Names(), ", "))
}

// showHelp opens the help overlay over the current screen
func showHelp(ctx *Context) {
	helpView := tview.NewTextView()
	helpView.SetDynamicColors(true)
	helpView.SetText(helpText + commandIndex)
	helpView.SetTextAlign(tview.AlignLeft)
	helpView.SetBorder(true)
	helpView.SetTitle(" Help ")
	helpView.SetTitleAlign(tview.AlignCenter)
	helpView.SetBorderColor(tcell.ColorYellow)

	// Centered container
	helpContainer := tview.NewFlex().SetDirection(tview.FlexRow)
	helpContainer.AddItem(nil, 0, 1, false)
	helpContainer.AddItem(
		tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(helpView, 0, 2, true).
			AddItem(nil, 0, 1, false),
		0, 4, true)
	helpContainer.AddItem(nil, 0, 1, false)

	ctx.Stack.ShowOverlay(helpOverlay, helpContainer)
}
