// Package command implements the colon-command language: parsing a command
// line, dispatching it through a closed table of handlers, and tracking the
// prompt that collects it.
package command

import (
	"errors"
	"strings"
)

// ErrEmpty is returned by Parse for a line with no command name.
var ErrEmpty = errors.New("no command entered")

// Line is a parsed command line.
type Line struct {
	// Raw is the trimmed original text, leading colon included.
	Raw  string
	Name string
	// Args is the trimmed remainder after the name.
	Args string
}

// Parse splits raw into a command name and its argument remainder. A single
// leading colon is optional.
func Parse(raw string) (Line, error) {
	line := Line{Raw: strings.TrimSpace(raw)}
	body := strings.TrimSpace(strings.TrimPrefix(line.Raw, ":"))
	if body == "" {
		return line, ErrEmpty
	}
	line.Name, line.Args = SplitWord(body)
	return line, nil
}

// Result is the outcome of a command, shown in the status bar.
type Result struct {
	Status string
	Bell   bool
}

// Fail builds a result that rings the bell.
func Fail(status string) Result {
	return Result{Status: status, Bell: true}
}

// OK builds a result that does not ring the bell.
func OK(status string) Result {
	return Result{Status: status}
}

// Handler runs a command against target with its argument remainder.
type Handler[T any] func(target T, args string) Result

// Table maps command names and their aliases to handlers.
type Table[T any] struct {
	handlers map[string]Handler[T]
	names    []string
}

// NewTable creates an empty command table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{handlers: make(map[string]Handler[T])}
}

// Register binds handler to every name given. The first name is the
// canonical one reported by Names.
func (t *Table[T]) Register(handler Handler[T], names ...string) *Table[T] {
	if len(names) == 0 {
		return t
	}
	t.names = append(t.names, names[0])
	for _, name := range names {
		t.handlers[name] = handler
	}
	return t
}

// Names returns the canonical command names in registration order.
func (t *Table[T]) Names() []string {
	return t.names
}

// Lookup reports whether name is bound in the table.
func (t *Table[T]) Lookup(name string) (Handler[T], bool) {
	handler, ok := t.handlers[name]
	return handler, ok
}

// Dispatch parses raw and runs the matching handler against target.
func (t *Table[T]) Dispatch(target T, raw string) Result {
	line, err := Parse(raw)
	if err != nil {
		return Fail("No command entered")
	}
	handler, ok := t.Lookup(line.Name)
	if !ok {
		return Fail("Unknown command: " + line.Raw)
	}
	return handler(target, line.Args)
}
