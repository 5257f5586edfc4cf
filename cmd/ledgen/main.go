package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/ledgen/internal/app"
	"github.com/vk/ledgen/internal/cli"
	"github.com/vk/ledgen/internal/yamlconfig"
)

// main is the entrypoint for the ledgen compiler.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Programmer errors surface as panics; report them like any other
	// failure so the exit code stays non-zero.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ledgen: internal error: %v", r)
		}
	}()

	ledgen := app.NewApp(outW, appConfig, yamlconfig.NewLoader())
	return ledgen.Run(context.Background())
}
