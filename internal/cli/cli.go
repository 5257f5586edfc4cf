package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vk/ledgen/internal/app"
)

// Exit codes returned by the ledgen binary.
const (
	ExitSuccess = 0
	// ExitFailure indicates the compile failed: unreadable or malformed input,
	// a priority violation, or an output write error.
	ExitFailure = 1
	// ExitUsage indicates invalid command-line arguments.
	ExitUsage = 2
)

// Version is reported by --version.
var Version = "0.1.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExecutableDir returns the directory of the running binary, the default
// input directory. It falls back to the working directory.
var ExecutableDir = func() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		config *app.Config
		opts   options
	)
	cmd := newCommand(&opts, func(cfg *app.Config) { config = cfg })
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	// Help and version are handled by cobra without running the command.
	if config == nil {
		slog.Debug("No compile requested, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

type options struct {
	filename   string
	inputDir   string
	outputDir  string
	outputFile string
	dryRun     bool
	logFormat  string
	logLevel   string
}

func newCommand(opts *options, done func(*app.Config)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledgen",
		Short: "Compile LED group definitions into a static C++ table",
		Long: `ledgen reads an LED group configuration (YAML), checks that every LED
priority is declared exactly once and consistently across all groups, and
writes the generated C++ GroupMap used by the LED manager.

Example:
  ledgen -i ./config -f led.yaml -o ./build
  ledgen --filename custom.yaml --output-file led-gen.hpp --dry-run`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			done(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&opts.filename, "filename", "f", app.DefaultInputFile, "Input file name")
	flags.StringVarP(&opts.inputDir, "input-dir", "i", "", "Input directory (default: directory of the ledgen binary)")
	flags.StringVarP(&opts.outputDir, "output-dir", "o", ".", "Output directory")
	flags.StringVar(&opts.outputFile, "output-file", app.DefaultOutputFile, "Output file name")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Validate the input without writing the output")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	return cmd
}

// config validates flag values and builds the app configuration.
func (o *options) config() (*app.Config, error) {
	logFormat := strings.ToLower(o.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(o.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	inputDir := o.inputDir
	if inputDir == "" {
		inputDir = ExecutableDir()
	}

	cfg, err := app.NewConfig(app.Config{
		InputDir:   inputDir,
		InputFile:  o.filename,
		OutputDir:  o.outputDir,
		OutputFile: o.outputFile,
		DryRun:     o.dryRun,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return cfg, nil
}
