package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"

	"github.com/cnharrison/flow-tui/internal/flow"
	"github.com/cnharrison/flow-tui/internal/format"
)

const (
	noRequestText  = "No request data available for this flow."
	noResponseText = "No response data available for this flow."
	noBodyText     = "No body"

	// HTTP status code thresholds
	statusCodeSuccess     = 200
	statusCodeRedirect    = 300
	statusCodeClientError = 400

	startedLayout = "2006-01-02 15:04:05.000 MST"
)

// statusColor picks the tview color for a status code
func statusColor(code int) string {
	switch {
	case code >= statusCodeClientError:
		return "red"
	case code >= statusCodeRedirect:
		return "yellow"
	case code >= statusCodeSuccess:
		return "green"
	}
	return "white"
}

// statusText is the Status column value of a flow
func statusText(f *flow.Flow) string {
	if f.Response == nil {
		return "-"
	}
	return strconv.Itoa(f.Response.StatusCode)
}

// renderRequest builds the Request panel text
func renderRequest(f *flow.Flow, formatter *format.ContentFormatter) string {
	req := f.Request
	if req == nil {
		return "[dim]" + noRequestText + "[white]"
	}

	var b strings.Builder
	writeField(&b, "Method", "[cyan]"+tview.Escape(req.Method)+"[white]")
	writeField(&b, "Host", "[blue]"+tview.Escape(req.Host)+"[white]")
	writeField(&b, "Path", tview.Escape(req.Path))
	writeField(&b, "Scheme", tview.Escape(req.Scheme))
	writeField(&b, "HTTP Version", tview.Escape(req.HTTPVersion))
	if !req.Started.IsZero() {
		writeField(&b, "Started", req.Started.Format(startedLayout))
	}
	writeHeaders(&b, req.Headers)
	body, ok := req.Text()
	writeBody(&b, body, ok, req.Headers, formatter)
	return b.String()
}

// renderResponse builds the Response panel text
func renderResponse(f *flow.Flow, formatter *format.ContentFormatter) string {
	resp := f.Response
	if resp == nil {
		return "[dim]" + noResponseText + "[white]"
	}

	var b strings.Builder
	writeField(&b, "Status", fmt.Sprintf("[%s]%d[white]", statusColor(resp.StatusCode), resp.StatusCode))
	writeField(&b, "Reason", tview.Escape(resp.Reason))
	writeField(&b, "HTTP Version", tview.Escape(resp.HTTPVersion))
	writeHeaders(&b, resp.Headers)
	body, ok := resp.Text()
	writeBody(&b, body, ok, resp.Headers, formatter)
	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "[yellow]%s:[white] %s\n", name, value)
}

func writeHeaders(b *strings.Builder, headers flow.Headers) {
	b.WriteString("\n[yellow]Headers:[white]\n")
	if len(headers) == 0 {
		b.WriteString("  [dim]None[white]\n")
		return
	}
	for _, header := range headers {
		fmt.Fprintf(b, "  [cyan]%s:[white] %s\n", tview.Escape(header.Name), tview.Escape(header.Value))
	}
}

func writeBody(b *strings.Builder, body string, ok bool, headers flow.Headers, formatter *format.ContentFormatter) {
	b.WriteString("\n[yellow]Body:[white]\n")
	if !ok || body == "" {
		b.WriteString("[dim]" + noBodyText + "[white]\n")
		return
	}
	contentType, _ := headers.Get("Content-Type")
	b.WriteString(tview.Escape(formatter.FormatBody(body, contentType)))
	b.WriteString("\n")
}
