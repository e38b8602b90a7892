package export

import (
	"fmt"
	"strings"

	"github.com/cnharrison/flow-tui/internal/flow"
	"github.com/cnharrison/flow-tui/internal/format"
)

const (
	requestBodyLimit  = 500
	responseBodyLimit = 800
	errorBodyLimit    = 1500
)

var (
	importantRequestHeaders  = []string{"authorization", "content-type", "accept", "user-agent", "x-", "cookie", "auth"}
	importantResponseHeaders = []string{"content-type", "content-length", "cache-control", "set-cookie", "location", "server", "x-"}
)

// GenerateMarkdownSummary generates a Markdown report of a flow for sharing
// in tickets and chat
func GenerateMarkdownSummary(f *flow.Flow) string {
	var summary strings.Builder

	req, resp := f.Request, f.Response
	method, host, status := "-", "-", "no response"
	if req != nil {
		method, host = req.Method, req.Host
	}
	if resp != nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}
	summary.WriteString(fmt.Sprintf("# %s %s %s\n\n", method, host, status))

	summary.WriteString("## Request\n\n")
	if req == nil {
		summary.WriteString("No request data available for this flow.\n\n")
	} else {
		if !req.Started.IsZero() {
			summary.WriteString(fmt.Sprintf("- **Date/Time:** %s UTC\n", req.Started.UTC().Format("2006-01-02 15:04:05")))
		}
		summary.WriteString(fmt.Sprintf("- **Method:** %s\n", req.Method))
		summary.WriteString(fmt.Sprintf("- **URL:** `%s`\n", req.URL()))
		if req.HTTPVersion != "" {
			summary.WriteString(fmt.Sprintf("- **HTTP Version:** %s\n", req.HTTPVersion))
		}
		summary.WriteString("\n")

		writeHeaders(&summary, "**Key Headers:**", selectHeaders(req.Headers, importantRequestHeaders), true)
		if body, ok := req.Text(); ok && body != "" {
			writeBody(&summary, "**Body:**", body, req.Headers, requestBodyLimit)
		}
	}

	summary.WriteString("## Response\n\n")
	if resp == nil {
		summary.WriteString("No response data available for this flow.\n\n")
	} else {
		summary.WriteString(fmt.Sprintf("- **Status:** %d %s\n", resp.StatusCode, resp.Reason))
		if resp.HTTPVersion != "" {
			summary.WriteString(fmt.Sprintf("- **HTTP Version:** %s\n", resp.HTTPVersion))
		}
		summary.WriteString("\n")

		if cookies := resp.Headers.Values("Set-Cookie"); len(cookies) > 1 {
			summary.WriteString(fmt.Sprintf("- **Cookies Set:** %d\n\n", len(cookies)))
		}
		writeHeaders(&summary, "**Key Headers:**", selectHeaders(resp.Headers, importantResponseHeaders), false)
		if body, ok := resp.Text(); ok && body != "" {
			label, limit := "**Body:**", responseBodyLimit
			if resp.StatusCode >= 400 {
				label, limit = "**Error Response:**", errorBodyLimit
			}
			writeBody(&summary, label, body, resp.Headers, limit)
		}
	}

	return strings.TrimRight(summary.String(), "\n") + "\n"
}

// selectHeaders keeps the headers whose names contain one of the keywords
func selectHeaders(headers flow.Headers, keywords []string) flow.Headers {
	var selected flow.Headers
	for _, header := range headers {
		lower := strings.ToLower(header.Name)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				selected = append(selected, header)
				break
			}
		}
	}
	return selected
}

func writeHeaders(b *strings.Builder, title string, headers flow.Headers, redact bool) {
	if len(headers) == 0 {
		return
	}
	b.WriteString(title + "\n")
	for _, header := range headers {
		value := header.Value
		if redact && strings.Contains(strings.ToLower(header.Name), "auth") {
			value = redactValue(value)
		}
		b.WriteString(fmt.Sprintf("- **%s:** `%s`\n", header.Name, value))
	}
	b.WriteString("\n")
}

// redactValue keeps only the ends of a credential
func redactValue(value string) string {
	runes := []rune(value)
	if len(runes) <= 14 {
		return "(redacted)"
	}
	return string(runes[:10]) + "..." + string(runes[len(runes)-4:]) + " (redacted)"
}

func writeBody(b *strings.Builder, title, body string, headers flow.Headers, limit int) {
	contentType, _ := headers.Get("Content-Type")
	lang := format.NewContentFormatter().DetectContentType(body, contentType)

	b.WriteString(title + "\n")
	b.WriteString("```" + lang + "\n")
	b.WriteString(format.Preview(body, limit))
	b.WriteString("\n```\n\n")
}
