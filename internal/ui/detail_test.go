package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/cnharrison/flow-tui/internal/flow"
)

func TestInitialPanel(t *testing.T) {
	tests := []struct {
		name     string
		flow     *flow.Flow
		expected Panel
	}{
		{name: "both sides", flow: &flow.Flow{Request: &flow.Request{}, Response: &flow.Response{}}, expected: PanelRequest},
		{name: "request only", flow: &flow.Flow{Request: &flow.Request{}}, expected: PanelRequest},
		{name: "response only", flow: &flow.Flow{Response: &flow.Response{}}, expected: PanelResponse},
		{name: "no data", flow: &flow.Flow{}, expected: PanelRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := initialPanel(tt.flow); got != tt.expected {
				t.Errorf("initialPanel() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDetailScreen_PanelSwitching(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.press(key(tcell.KeyEnter))
	d := env.detail(t)

	if d.ActivePanel() != PanelRequest {
		t.Fatalf("Expected Request panel first, got %v", d.ActivePanel())
	}
	if name, _ := d.panels.GetFrontPage(); name != "Request" {
		t.Errorf("Expected Request page in front, got %q", name)
	}

	steps := []struct {
		ev       *tcell.EventKey
		expected Panel
	}{
		{ev: runeKey('2'), expected: PanelResponse},
		{ev: runeKey('2'), expected: PanelResponse},
		{ev: key(tcell.KeyTab), expected: PanelRequest},
		{ev: key(tcell.KeyTab), expected: PanelResponse},
		{ev: runeKey('1'), expected: PanelRequest},
	}
	for i, step := range steps {
		env.press(step.ev)
		if d.ActivePanel() != step.expected {
			t.Errorf("Step %d: panel = %v, want %v", i, d.ActivePanel(), step.expected)
		}
		if name, _ := d.panels.GetFrontPage(); name != step.expected.String() {
			t.Errorf("Step %d: front page = %q, want %q", i, name, step.expected)
		}
		if env.focused != d.activeView() {
			t.Errorf("Step %d: expected the visible panel to have focus", i)
		}
	}

	if !strings.HasPrefix(d.StatusText(), "Flow 1/3 | Request | ") {
		t.Errorf("Unexpected status %q", d.StatusText())
	}
}

func TestDetailScreen_Navigation(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.press(key(tcell.KeyEnter))
	d := env.detail(t)

	env.press(runeKey('p'))
	if env.bells != 1 || d.Position() != 0 {
		t.Errorf("Expected previous at the first flow to ring the bell, got %d bells at %d", env.bells, d.Position())
	}

	env.press(runeKey('2'), runeKey('n'))
	if d.Position() != 1 || d.SelectedFlow().Request.Path != "/b" {
		t.Fatalf("Expected /b after next, got position %d", d.Position())
	}
	if d.ActivePanel() != PanelRequest {
		t.Error("Expected the panel to reset when changing flow")
	}
	if env.list.Cursor() != 1 {
		t.Errorf("Expected the List cursor to follow, got %d", env.list.Cursor())
	}

	env.press(key(tcell.KeyRight))
	if d.Position() != 2 || env.list.Cursor() != 2 {
		t.Errorf("Expected position 2 and List cursor 2, got %d and %d", d.Position(), env.list.Cursor())
	}
	if !strings.HasPrefix(d.StatusText(), "Flow 3/3 | Request") {
		t.Errorf("Unexpected status %q", d.StatusText())
	}

	if d.Next() {
		t.Error("Expected Next at the last flow to fail")
	}
	if env.bells != 2 {
		t.Errorf("Expected a bell at the end, got %d", env.bells)
	}

	env.press(key(tcell.KeyLeft))
	if d.Position() != 1 || env.list.Cursor() != 1 {
		t.Errorf("Expected to step back to 1, got %d and %d", d.Position(), env.list.Cursor())
	}
}

func TestDetailScreen_Render(t *testing.T) {
	env := newTestEnv(t, scenarioFlows(), "")
	env.press(runeKey('G'), key(tcell.KeyEnter))
	d := env.detail(t)

	request := d.requestView.GetText(true)
	for _, want := range []string{"Method: GET", "Host: api.example.com", "Path: /c", "Scheme: https", "HTTP Version: HTTP/1.1", "Content-Type: application/json; charset=utf-8", noBodyText} {
		if !strings.Contains(request, want) {
			t.Errorf("Expected %q in Request panel:\n%s", want, request)
		}
	}
	if response := d.responseView.GetText(true); !strings.Contains(response, noResponseText) {
		t.Errorf("Expected missing response text, got %q", response)
	}

	env.press(runeKey('g'))
	if d.Position() != 2 {
		t.Error("Scrolling keys must not change the flow")
	}

	env.ctx.Stack.Pop()
	env.press(runeKey('g'), key(tcell.KeyEnter))
	d = env.detail(t)
	request = d.requestView.GetText(true)
	if !strings.Contains(request, "{\n  \"a\": 1\n}") {
		t.Errorf("Expected indented JSON body, got:\n%s", request)
	}
	if response := d.responseView.GetText(true); !strings.Contains(response, "Status: 200") || !strings.Contains(response, "Reason: OK") {
		t.Errorf("Unexpected Response panel:\n%s", response)
	}
}

func TestDetailScreen_BackAndQuit(t *testing.T) {
	backKeys := []tcell.Key{tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2}
	for _, k := range backKeys {
		env := newTestEnv(t, scenarioFlows(), "")
		env.press(key(tcell.KeyEnter), key(k))
		if env.stack.Top() != env.list {
			t.Errorf("Expected key %v to return to the List", k)
		}
	}

	env := newTestEnv(t, scenarioFlows(), "")
	env.press(key(tcell.KeyEnter), runeKey('q'))
	if env.quits != 1 {
		t.Errorf("Expected q to quit from Detail, got %d quits", env.quits)
	}
}

func TestDetailScreen_ResponseOnlyFlow(t *testing.T) {
	flows := []*flow.Flow{{ID: 0, Response: &flow.Response{StatusCode: 204, Reason: "No Content"}}}
	env := newTestEnv(t, flows, "")
	env.press(key(tcell.KeyEnter))
	d := env.detail(t)

	if d.ActivePanel() != PanelResponse {
		t.Errorf("Expected Response panel for a flow without request, got %v", d.ActivePanel())
	}
	if request := d.requestView.GetText(true); !strings.Contains(request, noRequestText) {
		t.Errorf("Expected missing request text, got %q", request)
	}
	if got := env.list.table.GetCell(1, 1).Text; got != "-" {
		t.Errorf("Expected placeholder method, got %q", got)
	}
}
