// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Writer is anything that can receive clipboard text.
type Writer interface {
	Write(text string) error
}

// System copies through the platform clipboard utility. When none is
// available it falls back to an OSC 52 escape sequence written to Terminal,
// which most terminal emulators turn into a clipboard write.
type System struct {
	Terminal io.Writer
}

// NewSystem creates a system clipboard that falls back to stderr.
func NewSystem() *System {
	return &System{Terminal: os.Stderr}
}

// Write implements Writer.
func (s *System) Write(text string) error {
	err := sysclip.WriteAll(text)
	if err == nil {
		return nil
	}
	if s.Terminal == nil {
		return err
	}
	if _, oscErr := osc52Sequence(text).WriteTo(s.Terminal); oscErr != nil {
		return errors.Join(err, fmt.Errorf("osc52: %w", oscErr))
	}
	return nil
}

// osc52Sequence wraps the sequence for terminal multiplexers that would
// swallow it otherwise.
func osc52Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	return seq
}
