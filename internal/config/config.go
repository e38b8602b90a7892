// Package config turns the command line into the options the viewer starts
// with.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// ErrHelp is returned by Parse when -h or --help was given.
var ErrHelp = pflag.ErrHelp

// Options are the startup options of the viewer.
type Options struct {
	// CapturePath is the flows file to load.
	CapturePath string
	// ContentType is the Content-Type filter installed at startup.
	ContentType string
	// LogFile receives diagnostics when set. Logging is discarded otherwise.
	LogFile string
}

// UsageError reports a malformed command line.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Parse parses args, which exclude the program name. Usage text is written
// to output on errors and for --help.
func Parse(name string, args []string, output io.Writer) (Options, error) {
	var opts Options

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVarP(&opts.ContentType, "content-type", "c", "", "only show flows whose request Content-Type contains `TYPE`")
	flags.StringVar(&opts.LogFile, "log-file", "", "write diagnostics to `PATH`")
	flags.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags] <flows-file>\n\nFlags:\n", name)
		flags.PrintDefaults()
		fmt.Fprintln(output, "\nPress ? for help when running")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return opts, ErrHelp
		}
		return opts, &UsageError{Err: err}
	}

	switch flags.NArg() {
	case 1:
		opts.CapturePath = flags.Arg(0)
	case 0:
		flags.Usage()
		return opts, &UsageError{Err: errors.New("missing flows file")}
	default:
		flags.Usage()
		return opts, &UsageError{Err: fmt.Errorf("expected one flows file, got %d arguments", flags.NArg())}
	}

	return opts, nil
}
