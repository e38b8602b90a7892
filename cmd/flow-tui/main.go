package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cnharrison/flow-tui/internal/config"
	"github.com/cnharrison/flow-tui/internal/flow"
	"github.com/cnharrison/flow-tui/internal/ui"
)

const name = "flow-tui"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := config.Parse(name, args, os.Stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 2
	}

	// The terminal belongs to the UI, so diagnostics only go to a file.
	log.SetOutput(io.Discard)
	if opts.LogFile != "" {
		logFile, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	store, err := flow.Load(opts.CapturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	log.Printf("loaded %d flows from %s", store.Len(), opts.CapturePath)

	app := ui.NewApplication(store, ui.Options{
		Source:      opts.CapturePath,
		ContentType: opts.ContentType,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error running application: %v\n", name, err)
		return 1
	}
	return 0
}
