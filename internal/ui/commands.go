package ui

import (
	"fmt"
	"log"

	"github.com/cnharrison/flow-tui/internal/command"
	"github.com/cnharrison/flow-tui/internal/export"
	"github.com/cnharrison/flow-tui/internal/flow"
)

const (
	setUsage = "Usage: set ctype <value>"
	cpUsage  = "Usage: cp request|response|curl|summary"
)

// commandScope is what the shared commands need from a screen
type commandScope interface {
	context() *Context
	SelectedFlow() *flow.Flow
}

var (
	listCommands   = registerShared(command.NewTable[*ListScreen]()).Register(setCommand, "set")
	detailCommands = registerShared(command.NewTable[*DetailScreen]())
)

// registerShared adds the commands available on every screen
func registerShared[T commandScope](t *command.Table[T]) *command.Table[T] {
	return t.
		Register(func(s T, args string) command.Result {
			return copyCommand(s.context(), s.SelectedFlow(), args)
		}, "cp").
		Register(func(s T, _ string) command.Result {
			showHelp(s.context())
			return command.Result{}
		}, "help", "h").
		Register(func(s T, _ string) command.Result {
			s.context().Quit()
			return command.Result{}
		}, "q", "quit")
}

// setCommand installs or clears the Content-Type filter
func setCommand(l *ListScreen, args string) command.Result {
	option, value := command.SplitWord(args)
	switch option {
	case "":
		return command.Fail(setUsage)
	case "ctype":
	default:
		return command.Fail("Unknown option: " + option)
	}

	fs := l.ctx.Filter
	fs.SetContentType(command.Unquote(value))

	shown, total := len(fs.View()), fs.Total()
	switch {
	case !fs.Active():
		return command.OK(fmt.Sprintf("Content-Type filter cleared: showing %d flows", total))
	case shown == 0:
		return command.Fail(fmt.Sprintf("No flows match Content-Type \"%s\" (0/%d)", fs.ContentType(), total))
	}
	return command.OK(fmt.Sprintf("Content-Type filter set to \"%s\": showing %d/%d flows", fs.ContentType(), shown, total))
}

// copyCommand copies part of f to the clipboard
func copyCommand(ctx *Context, f *flow.Flow, args string) command.Result {
	target, _ := command.SplitWord(args)
	if target == "" {
		return command.Fail(cpUsage)
	}

	var (
		what string
		text string
	)
	switch target {
	case "request", "req":
		if f == nil {
			return command.Fail("No flow selected")
		}
		if f.Request == nil {
			return command.Fail("Flow has no request")
		}
		body, _ := f.Request.Text()
		if body == "" {
			return command.Fail("Request has no body")
		}
		what, text = "request body", body
	case "response", "resp", "res":
		if f == nil {
			return command.Fail("No flow selected")
		}
		if f.Response == nil {
			return command.Fail("Flow has no response")
		}
		body, _ := f.Response.Text()
		if body == "" {
			return command.Fail("Response has no body")
		}
		what, text = "response body", body
	case "curl":
		if f == nil {
			return command.Fail("No flow selected")
		}
		if f.Request == nil {
			return command.Fail("Flow has no request")
		}
		what, text = "cURL command", export.GenerateCurlCommand(f.Request)
	case "summary":
		if f == nil {
			return command.Fail("No flow selected")
		}
		what, text = "Markdown summary", export.GenerateMarkdownSummary(f)
	default:
		return command.Fail("Unknown copy target: " + target)
	}

	if err := ctx.Clipboard.Write(text); err != nil {
		log.Printf("clipboard write failed: %v", err)
		return command.Fail("Clipboard error: " + err.Error())
	}
	return command.OK(fmt.Sprintf("Copied %s (%d bytes) to clipboard", what, len(text)))
}
