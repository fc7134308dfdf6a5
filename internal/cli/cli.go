package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/vk/dungeon/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults are the option defaults, overridable from the environment.
type envDefaults struct {
	Module      string `env:"DUNGEON_MODULE" envDefault:"Dungeon"`
	ModulesPath string `env:"DUNGEON_MODULES_PATH" envDefault:"modules"`
	LogLevel    string `env:"DUNGEON_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"DUNGEON_LOG_FORMAT" envDefault:"text"`
}

// Parse processes command-line arguments. filename is the path the process
// was invoked with. It returns a populated Config, a boolean indicating if
// the program should exit cleanly, or an ExitError.
func Parse(filename string, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("dungeon", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Dungeon - PixelLight dungeon demo host.

Usage:
  dungeon [options] [--] [ARGS...]

Arguments:
  ARGS
    Passed unchanged to the module's entry point. Use "--" before
    arguments that start with a dash, e.g. "dungeon -- --level 2".

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Environment:
  DUNGEON_MODULE, DUNGEON_MODULES_PATH, DUNGEON_LOG_LEVEL, DUNGEON_LOG_FORMAT
    override the option defaults.
`)
	}

	moduleFlag := flagSet.String("module", defaults.Module, "Name of the module to run.")
	mFlag := flagSet.String("m", "", "Name of the module to run (shorthand).")
	modulesPathFlag := flagSet.String("modules-path", defaults.ModulesPath, "Path to the directory containing module manifests. Empty disables manifest checks.")
	versionFlag := flagSet.String("require-version", "", "Semantic version constraint the module must satisfy, e.g. '>= 1.0'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	listFlag := flagSet.Bool("list", false, "List the compiled-in modules and exit.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	moduleName := *moduleFlag
	if *mFlag != "" {
		moduleName = *mFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ModuleName:        moduleName,
		ModulesPath:       *modulesPathFlag,
		VersionConstraint: *versionFlag,
		ListModules:       *listFlag,
		LogFormat:         logFormat,
		LogLevel:          logLevel,
		Filename:          filename,
		Args:              flagSet.Args(),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
