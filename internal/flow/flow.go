// Package flow holds the captured request/response records browsed by the
// viewer, in capture order.
package flow

import (
	"strings"
	"time"
)

// Header is a single header line.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered multi-map of header lines, kept in capture order
// with duplicates preserved.
type Headers []Header

// Get returns the first value for name, compared case-insensitively.
func (h Headers) Get(name string) (string, bool) {
	for _, header := range h {
		if strings.EqualFold(header.Name, name) {
			return header.Value, true
		}
	}
	return "", false
}

// Values returns every value for name in capture order.
func (h Headers) Values(name string) []string {
	var values []string
	for _, header := range h {
		if strings.EqualFold(header.Name, name) {
			values = append(values, header.Value)
		}
	}
	return values
}

// Request is the request half of a flow.
type Request struct {
	Method      string
	Host        string
	Path        string
	Scheme      string
	HTTPVersion string
	Headers     Headers
	Body        string
	RawBody     []byte
	Started     time.Time
}

// Text returns the request body as text. See BodyText.
func (r *Request) Text() (string, bool) {
	return BodyText(r.Body, r.RawBody, r.Headers)
}

// URL reassembles the request target as scheme://host/path.
func (r *Request) URL() string {
	scheme := r.Scheme
	if scheme == "" {
		scheme = "http"
	}
	return scheme + "://" + r.Host + r.Path
}

// Response is the response half of a flow.
type Response struct {
	StatusCode  int
	Reason      string
	HTTPVersion string
	Headers     Headers
	Body        string
	RawBody     []byte
}

// Text returns the response body as text. See BodyText.
func (r *Response) Text() (string, bool) {
	return BodyText(r.Body, r.RawBody, r.Headers)
}

// Flow is one captured request/response pair. Either side may be nil; a
// flow with neither is legal and displays as "no data".
type Flow struct {
	ID       int
	Request  *Request
	Response *Response
}

// Store owns every flow of a capture in capture order. Its content never
// changes after construction.
type Store struct {
	flows []*Flow
}

// NewStore creates a store over flows, which must already be in capture order.
func NewStore(flows []*Flow) *Store {
	return &Store{flows: flows}
}

// All returns the full ordered sequence.
func (s *Store) All() []*Flow {
	return s.flows
}

// Len returns the number of flows in the store.
func (s *Store) Len() int {
	return len(s.flows)
}
