package flow

import (
	"net/url"
	"strings"

	"github.com/cnharrison/flow-tui/internal/har"
)

// FromHAR converts a decoded HAR entry into the flow at position id.
func FromHAR(id int, entry har.HAREntry) (*Flow, error) {
	f := &Flow{ID: id}

	if req := entry.Request; req != nil {
		r := &Request{
			Method:      req.Method,
			HTTPVersion: req.HTTPVersion,
			Headers:     convertHeaders(req.Headers),
		}
		r.Started, _ = har.ParseStarted(entry.StartedDateTime)
		if u, err := url.Parse(req.URL); err != nil {
			// Keep what was captured rather than dropping the file.
			r.Path = req.URL
		} else if req.URL != "" {
			r.Scheme = u.Scheme
			r.Host = u.Host
			r.Path = u.EscapedPath()
			if r.Path == "" {
				r.Path = "/"
			}
			if u.RawQuery != "" {
				r.Path += "?" + u.RawQuery
			}
		}
		if req.PostData != nil {
			r.Body = req.PostData.Text
		}
		f.Request = r
	}

	// A zero status is the HAR way of saying no response arrived.
	if resp := entry.Response; resp != nil && resp.Status != 0 {
		r := &Response{
			StatusCode:  resp.Status,
			Reason:      resp.StatusText,
			HTTPVersion: resp.HTTPVersion,
			Headers:     convertHeaders(resp.Headers),
		}
		if strings.EqualFold(resp.Content.Encoding, "base64") {
			raw, err := har.DecodeBase64(resp.Content.Text, "base64")
			if err != nil {
				return nil, err
			}
			r.RawBody = raw
		} else {
			r.Body = resp.Content.Text
		}
		f.Response = r
	}

	return f, nil
}

func convertHeaders(headers []har.HARHeader) Headers {
	if len(headers) == 0 {
		return nil
	}
	out := make(Headers, 0, len(headers))
	for _, h := range headers {
		out = append(out, Header{Name: h.Name, Value: h.Value})
	}
	return out
}
