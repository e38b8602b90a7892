package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/cnharrison/flow-tui/internal/command"
)

func TestSetCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected command.Result
		active   string
		rows     int
	}{
		{
			name:     "set",
			line:     ":set ctype json",
			expected: command.Result{Status: `Content-Type filter set to "json": showing 2/3 flows`},
			active:   "json",
			rows:     2,
		},
		{
			name:     "double quoted",
			line:     `:set ctype "text/plain"`,
			expected: command.Result{Status: `Content-Type filter set to "text/plain": showing 1/3 flows`},
			active:   "text/plain",
			rows:     1,
		},
		{
			name:     "single quoted with spaces",
			line:     `:set ctype 'json; charset'`,
			expected: command.Result{Status: `Content-Type filter set to "json; charset": showing 1/3 flows`},
			active:   "json; charset",
			rows:     1,
		},
		{
			name:     "cleared",
			line:     ":set ctype",
			expected: command.Result{Status: "Content-Type filter cleared: showing 3 flows"},
			rows:     3,
		},
		{
			name:     "cleared with empty quotes",
			line:     `:set ctype ""`,
			expected: command.Result{Status: "Content-Type filter cleared: showing 3 flows"},
			rows:     3,
		},
		{
			name:     "no matches",
			line:     ":set ctype xml",
			expected: command.Result{Status: `No flows match Content-Type "xml" (0/3)`, Bell: true},
			active:   "xml",
			rows:     0,
		},
		{
			name:     "missing option",
			line:     ":set",
			expected: command.Result{Status: setUsage, Bell: true},
			rows:     3,
		},
		{
			name:     "unknown option",
			line:     ":set color red",
			expected: command.Result{Status: "Unknown option: color", Bell: true},
			rows:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, scenarioFlows(), "")
			res := env.list.HandleCommand(tt.line)
			if res != tt.expected {
				t.Errorf("HandleCommand(%q) = %+v, want %+v", tt.line, res, tt.expected)
			}
			if got := env.ctx.Filter.ContentType(); got != tt.active {
				t.Errorf("Active filter = %q, want %q", got, tt.active)
			}
			if got := env.list.table.GetRowCount() - headerRows; got != tt.rows {
				t.Errorf("Expected %d rows after the command, got %d", tt.rows, got)
			}
		})
	}
}

func TestCopyCommand(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		cursor   int
		line     string
		expected command.Result
		copied   string
	}{
		{
			name:     "request body",
			line:     ":cp request",
			expected: command.Result{Status: "Copied request body (7 bytes) to clipboard"},
			copied:   `{"a":1}`,
		},
		{
			name:     "response alias",
			line:     ":cp res",
			expected: command.Result{Status: "Copied response body (2 bytes) to clipboard"},
			copied:   "ok",
		},
		{
			name:     "req alias",
			cursor:   1,
			line:     ":cp req",
			expected: command.Result{Status: "Copied request body (5 bytes) to clipboard"},
			copied:   "hello",
		},
		{
			name:     "response without body",
			cursor:   1,
			line:     ":cp resp",
			expected: command.Result{Status: "Response has no body", Bell: true},
		},
		{
			name:     "no response",
			cursor:   2,
			line:     ":cp response",
			expected: command.Result{Status: "Flow has no response", Bell: true},
		},
		{
			name:     "request without body",
			cursor:   2,
			line:     ":cp request",
			expected: command.Result{Status: "Request has no body", Bell: true},
		},
		{
			name:     "no flow selected",
			filter:   "xml",
			line:     ":cp request",
			expected: command.Result{Status: "No flow selected", Bell: true},
		},
		{
			name:     "curl",
			cursor:   1,
			line:     ":cp curl",
			expected: command.Result{Status: "Copied cURL command (89 bytes) to clipboard"},
			copied:   "curl -X POST 'https://api.example.com/b' -H 'Content-Type: text/plain' --data-raw 'hello'",
		},
		{
			name:     "missing target",
			line:     ":cp",
			expected: command.Result{Status: cpUsage, Bell: true},
		},
		{
			name:     "unknown target",
			line:     ":cp headers",
			expected: command.Result{Status: "Unknown copy target: headers", Bell: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, scenarioFlows(), tt.filter)
			env.list.FocusFlow(tt.cursor)

			res := env.list.HandleCommand(tt.line)
			if res != tt.expected {
				t.Errorf("HandleCommand(%q) = %+v, want %+v", tt.line, res, tt.expected)
			}
			if tt.copied == "" {
				if len(env.clip.writes) != 0 {
					t.Errorf("Expected the clipboard untouched, got %q", env.clip.writes)
				}
				return
			}
			if len(env.clip.writes) != 1 || env.clip.writes[0] != tt.copied {
				t.Errorf("Clipboard got %q, want %q", env.clip.writes, tt.copied)
			}
		})
	}
}

func TestCopyCommand_ClipboardError(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.clip.err = errClipboard()

	res := env.list.HandleCommand(":cp request")
	want := command.Result{Status: "Clipboard error: no clipboard utility available", Bell: true}
	if res != want {
		t.Errorf("HandleCommand = %+v, want %+v", res, want)
	}
}

func TestCopyCommand_Summary(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.list.FocusFlow(2)

	res := env.list.HandleCommand(":cp summary")
	if res.Bell || !strings.HasPrefix(res.Status, "Copied Markdown summary (") {
		t.Fatalf("Unexpected result %+v", res)
	}
	if len(env.clip.writes) != 1 || !strings.Contains(env.clip.writes[0], noResponseText) {
		t.Errorf("Unexpected summary %q", env.clip.writes)
	}
}

func TestDetailCommands(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.press(runeKey('j'), key(tcell.KeyEnter))
	d := env.detail(t)

	if res := d.HandleCommand(":cp request"); res.Status != "Copied request body (5 bytes) to clipboard" {
		t.Errorf("Unexpected cp result %+v", res)
	}
	want := command.Result{Status: "Unknown command: :set ctype json", Bell: true}
	if res := d.HandleCommand(":set ctype json"); res != want {
		t.Errorf("Expected set to be unavailable in Detail, got %+v", res)
	}
	if env.ctx.Filter.Active() {
		t.Error("Detail must not change the filter")
	}

	d.HandleCommand(":help")
	if env.stack.Overlay() != helpOverlay {
		t.Error("Expected :help to open the help overlay")
	}
	env.press(key(tcell.KeyEscape))

	d.HandleCommand(":quit")
	if env.quits != 1 {
		t.Errorf("Expected :quit to quit, got %d", env.quits)
	}
}

func TestDispatch_EmptyAndUnknown(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")

	tests := []struct {
		line     string
		expected command.Result
	}{
		{line: ":", expected: command.Result{Status: "No command entered", Bell: true}},
		{line: ":   ", expected: command.Result{Status: "No command entered", Bell: true}},
		{line: ":bogus", expected: command.Result{Status: "Unknown command: :bogus", Bell: true}},
		{line: " :bogus  now ", expected: command.Result{Status: "Unknown command: :bogus  now", Bell: true}},
	}

	for _, tt := range tests {
		if res := env.list.HandleCommand(tt.line); res != tt.expected {
			t.Errorf("HandleCommand(%q) = %+v, want %+v", tt.line, res, tt.expected)
		}
	}
}

func TestUnknownCommand_LeavesListUnchanged(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.press(runeKey('j'))

	snapshot := func() []string {
		var cells []string
		for row := 0; row < env.list.table.GetRowCount(); row++ {
			for col := 0; col < env.list.table.GetColumnCount(); col++ {
				cells = append(cells, env.list.table.GetCell(row, col).Text)
			}
		}
		return cells
	}
	cursor, rows, cells := env.list.Cursor(), env.list.table.GetRowCount(), snapshot()

	env.press(runeKey(':'))
	env.list.prompt.SetText("bogus")
	env.press(key(tcell.KeyEnter))

	if got := env.list.StatusText(); got != "Unknown command: :bogus" {
		t.Errorf("Unexpected status %q", got)
	}
	if env.bells != 1 {
		t.Errorf("Expected one bell, got %d", env.bells)
	}
	if got := env.list.Cursor(); got != cursor {
		t.Errorf("Expected cursor %d, got %d", cursor, got)
	}
	if got := env.list.table.GetRowCount(); got != rows {
		t.Errorf("Expected %d rows, got %d", rows, got)
	}
	after := snapshot()
	if len(after) != len(cells) {
		t.Fatalf("Expected %d cells, got %d", len(cells), len(after))
	}
	for i := range cells {
		if after[i] != cells[i] {
			t.Errorf("Cell %d changed from %q to %q", i, cells[i], after[i])
		}
	}
	if got := env.ctx.Filter.ContentType(); got != "" {
		t.Errorf("Expected the filter untouched, got %q", got)
	}
}

func TestHelp_ListsCommands(t *testing.T) {
	for _, want := range []string{"List[white]     cp, help, q, set", "Details[white]  cp, help, q\n"} {
		if !strings.Contains(commandIndex+"\n", want) {
			t.Errorf("Expected %q in the command index, got %q", want, commandIndex)
		}
	}
}

func TestCommandLine_Keys(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")

	env.press(runeKey(':'))
	if !env.list.prompt.Active() || env.focused != env.list.prompt.field {
		t.Fatal("Expected ':' to open and focus the prompt")
	}
	env.press(runeKey(':'))
	if got := env.list.prompt.field.GetText(); got != "" {
		t.Errorf("Expected keys while open to be left to the field, got %q", got)
	}

	env.list.prompt.SetText("set ctype json")
	env.press(key(tcell.KeyEnter))
	if env.list.prompt.Active() {
		t.Error("Expected Enter to close the prompt")
	}
	if env.ctx.Filter.ContentType() != "json" {
		t.Errorf("Expected the filter to be applied, got %q", env.ctx.Filter.ContentType())
	}
	if got := env.list.StatusText(); got != `Content-Type filter set to "json": showing 2/3 flows` {
		t.Errorf("Unexpected status %q", got)
	}
	if env.focused != env.list.table {
		t.Error("Expected focus back on the table")
	}

	env.press(runeKey('j'))
	if got := env.list.StatusText(); !strings.HasPrefix(got, "Showing 2/3 flows") {
		t.Errorf("Expected motion to restore the default status, got %q", got)
	}

	env.press(runeKey(':'))
	env.list.prompt.SetText("bogus")
	env.press(key(tcell.KeyEnter))
	if got := env.list.StatusText(); got != "Unknown command: :bogus" {
		t.Errorf("Unexpected status %q", got)
	}
	if env.bells != 1 {
		t.Errorf("Expected one bell for the unknown command, got %d", env.bells)
	}
}

func TestCommandLine_EscapeCancels(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.press(key(tcell.KeyEnter), runeKey(':'))
	d := env.detail(t)

	d.prompt.SetText("cp request")
	env.press(key(tcell.KeyEscape))
	if d.prompt.Active() {
		t.Error("Expected Escape to close the prompt")
	}
	if env.stack.Top() != d {
		t.Error("Escape in the prompt must not leave the Detail screen")
	}
	if len(env.clip.writes) != 0 {
		t.Error("Cancelled command must not run")
	}
	if env.focused != d.requestView {
		t.Error("Expected focus back on the panel")
	}

	env.press(key(tcell.KeyEscape))
	if env.stack.Top() != env.list {
		t.Error("Expected a second Escape to go back")
	}
}
