// Package dungeon is the Dungeon demo application: the object the Dungeon
// module's entry trampoline constructs and hands control to.
package dungeon

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Application is a minimal, runnable stand-in for the demo. It understands
// its own command line and reports which level it would enter.
type Application struct {
	out    io.Writer
	logger *slog.Logger
	closed bool
}

// New creates an Application writing to stdout.
func New() *Application {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput creates an Application writing to w.
func NewWithOutput(w io.Writer) *Application {
	return &Application{
		out:    w,
		logger: slog.Default().With("module", "Dungeon"),
	}
}

// Run parses args and prints the start banner. It returns 0 on success and
// 2 on invalid arguments.
func (a *Application) Run(filename string, args []string) int {
	name := filepath.Base(filename)
	if filename == "" {
		name = "dungeon"
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	level := fs.Int("level", 1, "Dungeon level to start on.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		a.logger.Error("Invalid arguments.", "error", err)
		return 2
	}
	if *level < 1 {
		fmt.Fprintf(a.out, "invalid level %d: must be 1 or greater\n", *level)
		return 2
	}

	a.logger.Debug("Dungeon demo starting.", "filename", filename, "level", *level, "extra_args", fs.Args())
	fmt.Fprintf(a.out, "PixelLight dungeon demo (%s): entering level %d\n", name, *level)
	return 0
}

// Close releases the application. Closing twice is harmless.
func (a *Application) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.logger.Debug("Dungeon demo closed.")
	return nil
}
