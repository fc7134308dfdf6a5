package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/dungeon/internal/app"
	"github.com/vk/dungeon/internal/cli"
)

// main is the entrypoint for the dungeon host.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	code, err := run(os.Stderr, os.Args[0], os.Args[1:])
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run encapsulates the main application logic for easier testing and error
// handling. The returned code is the module's exit status.
func run(outW io.Writer, filename string, args []string) (code int, err error) {
	appConfig, shouldExit, err := cli.Parse(filename, args, outW)
	if err != nil {
		return 0, err
	}
	if shouldExit {
		return 0, nil
	}

	// The app panics on critical startup errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			code, err = 0, fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	host := app.NewApp(outW, appConfig)
	defer host.Close()

	if appConfig.ListModules {
		for _, d := range host.Modules() {
			fmt.Fprintln(outW, d.String())
		}
		return 0, nil
	}

	return host.Run(context.Background(), appConfig)
}
