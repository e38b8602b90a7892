// Package export renders flows in forms meant to leave the viewer: a cURL
// command line and a Markdown summary.
package export

import (
	"fmt"
	"strings"

	"github.com/cnharrison/flow-tui/internal/flow"
)

// GenerateCurlCommand generates a curl command reproducing the request
func GenerateCurlCommand(req *flow.Request) string {
	var cmd strings.Builder
	method := req.Method
	if method == "" {
		method = "GET"
	}
	cmd.WriteString(fmt.Sprintf("curl -X %s %s", method, shellQuote(req.URL())))

	for _, header := range req.Headers {
		if strings.EqualFold(header.Name, "host") || strings.HasPrefix(header.Name, ":") {
			continue
		}
		cmd.WriteString(" -H " + shellQuote(header.Name+": "+header.Value))
	}

	if body, ok := req.Text(); ok && body != "" {
		cmd.WriteString(" --data-raw " + shellQuote(body))
	}

	return cmd.String()
}

// shellQuote wraps s in single quotes for a POSIX shell
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
