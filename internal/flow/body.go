package flow

import (
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// BodyText returns the decoded body text when present, otherwise rawBody
// decoded permissively: with the charset named by the Content-Type header
// when it is known, else as UTF-8 with invalid sequences replaced. The
// boolean reports whether the message has any body at all.
func BodyText(body string, rawBody []byte, headers Headers) (string, bool) {
	if body != "" {
		return body, true
	}
	if len(rawBody) == 0 {
		return "", false
	}

	if name := charsetOf(headers); name != "" {
		if enc, err := htmlindex.Get(name); err == nil {
			if decoded, err := enc.NewDecoder().Bytes(rawBody); err == nil {
				return string(decoded), true
			}
		}
	}

	if utf8.Valid(rawBody) {
		return string(rawBody), true
	}
	return strings.ToValidUTF8(string(rawBody), string(utf8.RuneError)), true
}

func charsetOf(headers Headers) string {
	contentType, ok := headers.Get("Content-Type")
	if !ok {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["charset"])
}
