// Package filter narrows the flow store to the flows the operator asked for.
package filter

import (
	"strings"

	"github.com/cnharrison/flow-tui/internal/flow"
)

// MatchesContentType reports whether the flow's request Content-Type header
// contains text, compared case-insensitively. Flows without a request never
// match.
func MatchesContentType(f *flow.Flow, text string) bool {
	if f == nil || f.Request == nil {
		return false
	}
	value, ok := f.Request.Headers.Get("Content-Type")
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(text))
}

// Apply returns the ordered subsequence of flows matching text. Empty text
// returns flows itself.
func Apply(flows []*flow.Flow, text string) []*flow.Flow {
	if text == "" {
		return flows
	}

	filtered := make([]*flow.Flow, 0, len(flows))
	for _, f := range flows {
		if MatchesContentType(f, text) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// FilterState holds the active content-type filter and the view derived
// from it. Observers registered with Subscribe run after every change.
type FilterState struct {
	store       *flow.Store
	contentType string
	view        []*flow.Flow
	observers   []func()
}

// NewFilterState creates a filter state over store with initial applied.
func NewFilterState(store *flow.Store, initial string) *FilterState {
	f := &FilterState{store: store, contentType: strings.TrimSpace(initial)}
	f.view = Apply(store.All(), f.contentType)
	return f
}

// ContentType returns the active filter text, empty when unfiltered.
func (f *FilterState) ContentType() string {
	return f.contentType
}

// Active reports whether a filter is installed.
func (f *FilterState) Active() bool {
	return f.contentType != ""
}

// View returns the live filtered view.
func (f *FilterState) View() []*flow.Flow {
	return f.view
}

// Total returns the number of flows in the underlying store.
func (f *FilterState) Total() int {
	return f.store.Len()
}

// Position returns the index of the flow with id in the live view, or -1.
func (f *FilterState) Position(id int) int {
	for i, fl := range f.view {
		if fl.ID == id {
			return i
		}
	}
	return -1
}

// SetContentType installs value as the filter. An empty value clears it.
// It returns false and does nothing when value matches the active filter.
func (f *FilterState) SetContentType(value string) bool {
	value = strings.TrimSpace(value)
	if value == f.contentType {
		return false
	}

	f.contentType = value
	f.view = Apply(f.store.All(), value)

	for _, observer := range f.observers {
		observer()
	}
	return true
}

// Subscribe registers fn to be called after each filter change.
func (f *FilterState) Subscribe(fn func()) {
	f.observers = append(f.observers, fn)
}
