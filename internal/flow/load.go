package flow

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cnharrison/flow-tui/internal/har"
)

var (
	// ErrNotFound reports a capture path that does not exist.
	ErrNotFound = errors.New("flows file not found")
	// ErrNotFile reports a capture path that is not a regular file.
	ErrNotFile = errors.New("flows path is not a file")
)

// LoadError describes why a capture could not be loaded. Its message is
// meant to be shown to the operator as-is.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return "Flows file not found: " + e.Path
	case errors.Is(e.Err, ErrNotFile):
		return "Flows path is not a file: " + e.Path
	}
	return fmt.Sprintf("Failed to read flows: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads every flow from the HAR capture at path. It either returns the
// complete store or an error; a capture is never partially loaded.
func Load(path string) (*Store, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Path: resolved, Err: ErrNotFound}
		}
		return nil, &LoadError{Path: resolved, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &LoadError{Path: resolved, Err: ErrNotFile}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, &LoadError{Path: resolved, Err: err}
	}
	defer file.Close()

	var flows []*Flow
	err = har.Decode(file, func(index int, entry har.HAREntry) error {
		f, err := FromHAR(index, entry)
		if err != nil {
			return err
		}
		flows = append(flows, f)
		return nil
	})
	if err != nil {
		return nil, &LoadError{Path: resolved, Err: err}
	}

	return NewStore(flows), nil
}

// ResolvePath expands a leading ~ and makes path absolute.
func ResolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
