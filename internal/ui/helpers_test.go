package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cnharrison/flow-tui/internal/filter"
	"github.com/cnharrison/flow-tui/internal/flow"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, text)
	return nil
}

type testEnv struct {
	ctx     *Context
	stack   *Stack
	list    *ListScreen
	clip    *fakeClipboard
	bells   int
	quits   int
	focused tview.Primitive
}

func newTestEnv(t *testing.T, flows []*flow.Flow, contentType string) *testEnv {
	t.Helper()
	env := &testEnv{clip: &fakeClipboard{}}
	env.ctx = &Context{
		Filter:    filter.NewFilterState(flow.NewStore(flows), contentType),
		Source:    "capture.har",
		Clipboard: env.clip,
		Bell:      func() { env.bells++ },
		SetFocus:  func(p tview.Primitive) { env.focused = p },
		Quit:      func() { env.quits++ },
	}
	env.stack = NewStack(env.ctx)
	env.list = NewListScreen(env.ctx)
	env.stack.Push(env.list)
	return env
}

func (env *testEnv) press(events ...*tcell.EventKey) {
	for _, ev := range events {
		env.stack.HandleKey(ev)
	}
}

func (env *testEnv) detail(t *testing.T) *DetailScreen {
	t.Helper()
	d, ok := env.stack.Top().(*DetailScreen)
	if !ok {
		t.Fatalf("Expected a Detail screen on top, got %T", env.stack.Top())
	}
	return d
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func errClipboard() error {
	return errors.New("no clipboard utility available")
}

// scenarioFlows are GET /a 200, POST /b 404 and GET /c without a response.
func scenarioFlows() []*flow.Flow {
	return []*flow.Flow{
		{
			ID: 0,
			Request: &flow.Request{
				Method: "GET", Host: "api.example.com", Path: "/a", Scheme: "https", HTTPVersion: "HTTP/1.1",
				Headers: flow.Headers{{Name: "Content-Type", Value: "application/json"}},
				Body:    `{"a":1}`,
			},
			Response: &flow.Response{
				StatusCode: 200, Reason: "OK", HTTPVersion: "HTTP/1.1",
				Headers: flow.Headers{{Name: "Content-Type", Value: "text/plain"}},
				Body:    "ok",
			},
		},
		{
			ID: 1,
			Request: &flow.Request{
				Method: "POST", Host: "api.example.com", Path: "/b", Scheme: "https", HTTPVersion: "HTTP/1.1",
				Headers: flow.Headers{{Name: "Content-Type", Value: "text/plain"}},
				Body:    "hello",
			},
			Response: &flow.Response{StatusCode: 404, Reason: "Not Found", HTTPVersion: "HTTP/1.1"},
		},
		{
			ID: 2,
			Request: &flow.Request{
				Method: "GET", Host: "api.example.com", Path: "/c", Scheme: "https", HTTPVersion: "HTTP/1.1",
				Headers: flow.Headers{{Name: "Content-Type", Value: "application/json; charset=utf-8"}},
			},
		},
	}
}

func manyFlows(n int) []*flow.Flow {
	flows := make([]*flow.Flow, n)
	for i := range flows {
		flows[i] = &flow.Flow{
			ID:       i,
			Request:  &flow.Request{Method: "GET", Host: "example.com", Path: fmt.Sprintf("/item/%d", i)},
			Response: &flow.Response{StatusCode: 200},
		}
	}
	return flows
}
