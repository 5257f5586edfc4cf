package testutil

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/ledgen/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	// Output is the generated artifact, empty when none was written.
	Output     string
	OutputPath string
	// OutputExists reports whether an artifact exists after the run.
	OutputExists bool
	// OutputDirEntries lists the output directory after the run.
	OutputDirEntries []string
}

// Options tweak a harness run.
type Options struct {
	// Existing, when non-empty, is written to the output path before the run.
	Existing string
	DryRun   bool
}

// RunCompile writes input as led.yaml into a temporary directory, compiles it
// into a separate temporary output directory, and reports what happened.
func RunCompile(t *testing.T, input string) *HarnessResult {
	t.Helper()
	return RunCompileWithOptions(t, input, Options{})
}

// RunCompileWithOptions is RunCompile with explicit options.
func RunCompileWithOptions(t *testing.T, input string, opts Options) *HarnessResult {
	t.Helper()

	inDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inDir, app.DefaultInputFile), []byte(input), 0o644))

	cfg, err := app.NewConfig(app.Config{
		InputDir:   inDir,
		InputFile:  app.DefaultInputFile,
		OutputDir:  outDir,
		OutputFile: app.DefaultOutputFile,
		DryRun:     opts.DryRun,
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	if opts.Existing != "" {
		require.NoError(t, os.WriteFile(cfg.OutputPath(), []byte(opts.Existing), 0o644))
	}

	var logBuffer bytes.Buffer
	runErr := app.NewApp(&logBuffer, cfg, nil).Run(context.Background())

	if os.Getenv("LEDGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result := &HarnessResult{
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		OutputPath: cfg.OutputPath(),
	}

	data, err := os.ReadFile(cfg.OutputPath())
	switch {
	case err == nil:
		result.Output = string(data)
		result.OutputExists = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	for _, e := range entries {
		result.OutputDirEntries = append(result.OutputDirEntries, e.Name())
	}
	return result
}
