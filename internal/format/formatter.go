package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-xmlfmt/xmlfmt"
	"github.com/mattn/go-runewidth"
	"github.com/yosssi/gohtml"
)

// PreviewLimit is the number of runes of a body shown in a preview.
const PreviewLimit = 2000

const ellipsis = "..."

var (
	xmlElementPattern = regexp.MustCompile(`^<[a-zA-Z][^>]*>.*</[a-zA-Z][^>]*>$`)
	htmlTagPattern    = regexp.MustCompile(`<(div|span|p|body|head|script|style|link|meta)\b[^>]*>`)
)

// ContentFormatter turns message bodies into readable previews
type ContentFormatter struct{}

// NewContentFormatter creates a new content formatter
func NewContentFormatter() *ContentFormatter {
	return &ContentFormatter{}
}

// DetectContentType classifies content as json, html, xml or text, trusting
// the MIME type first
func (f *ContentFormatter) DetectContentType(content, mimeType string) string {
	if mimeType != "" {
		lowerMime := strings.ToLower(mimeType)
		switch {
		case strings.Contains(lowerMime, "json"):
			return "json"
		case strings.Contains(lowerMime, "html"):
			return "html"
		case strings.Contains(lowerMime, "xml"):
			return "xml"
		}
	}

	if content != "" {
		detectedType := http.DetectContentType([]byte(content))
		switch {
		case strings.Contains(detectedType, "text/html"):
			return "html"
		case strings.Contains(detectedType, "text/xml") || strings.Contains(detectedType, "application/xml"):
			return "xml"
		}
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "text"
	}

	if (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
		if json.Valid([]byte(trimmed)) {
			return "json"
		}
	}

	if strings.HasPrefix(trimmed, "<?xml") {
		return "xml"
	}
	if xmlElementPattern.MatchString(strings.ReplaceAll(trimmed, "\n", "")) {
		var node struct{}
		if xml.Unmarshal([]byte(trimmed), &node) == nil {
			return "xml"
		}
	}

	lowerTrimmed := strings.ToLower(trimmed)
	if strings.Contains(lowerTrimmed, "<!doctype html") ||
		strings.Contains(lowerTrimmed, "<html") ||
		htmlTagPattern.MatchString(lowerTrimmed) {
		return "html"
	}

	return "text"
}

// FormatBody pretty-prints content according to its detected type and cuts
// the result down to a preview
func (f *ContentFormatter) FormatBody(content, mimeType string) string {
	var formatted string
	switch f.DetectContentType(content, mimeType) {
	case "json":
		formatted = f.formatJSON(content)
	case "html":
		formatted = gohtml.Format(content)
	case "xml":
		formatted = xmlfmt.FormatXML(content, "", "  ")
	default:
		formatted = content
	}
	return Preview(strings.TrimSpace(formatted), PreviewLimit)
}

// formatJSON indents JSON content, leaving invalid input untouched
func (f *ContentFormatter) formatJSON(content string) string {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(content), "", "  "); err != nil {
		return content
	}
	return out.String()
}

// Preview keeps the first limit runes of s, marking a cut with "..."
func Preview(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i] + ellipsis
		}
		count++
	}
	return s
}

// Truncate shortens s to at most width terminal cells, ending in "..." when
// cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}
