package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/ledgen/internal/model"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{InputFile: " led.yaml ", OutputFile: "led-gen.hpp"})
	require.NoError(t, err)
	require.Equal(t, ".", cfg.InputDir)
	require.Equal(t, ".", cfg.OutputDir)
	require.Equal(t, "led.yaml", cfg.InputPath())
	require.Equal(t, "led-gen.hpp", cfg.OutputPath())
}

func TestNewConfig_Paths(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{InputDir: "/in", InputFile: "a.yaml", OutputDir: "/out", OutputFile: "b.hpp"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/in", "a.yaml"), cfg.InputPath())
	require.Equal(t, filepath.Join("/out", "b.hpp"), cfg.OutputPath())
}

func TestNewConfig_Rejects(t *testing.T) {
	t.Parallel()

	testCases := map[string]Config{
		"empty input":        {OutputFile: "x.hpp"},
		"empty output":       {InputFile: "x.yaml"},
		"output with subdir": {InputFile: "x.yaml", OutputFile: "gen/x.hpp"},
	}
	for name, cfg := range testCases {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := NewConfig(cfg)
			require.Error(t, err)
		})
	}
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"msg":"shown"`)
	require.Contains(t, out, `"component":"ledgen"`)
}

type stubLoader struct {
	doc *model.Document
	err error
}

func (s stubLoader) Load(context.Context, string) (*model.Document, error) {
	return s.doc, s.err
}

func TestRun_LoaderErrorIsWrapped(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{InputFile: "led.yaml", OutputDir: t.TempDir(), OutputFile: "led-gen.hpp"})
	require.NoError(t, err)
	boom := errors.New("boom")

	err = NewApp(&bytes.Buffer{}, cfg, stubLoader{err: boom}).Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "failed to load configuration")
}

func TestRun_UsesInjectedLoader(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	cfg, err := NewConfig(Config{InputFile: "unused.yaml", OutputDir: outDir, OutputFile: "led-gen.hpp"})
	require.NoError(t, err)

	p := 2
	doc := &model.Document{Groups: []*model.Group{{Name: "PowerOn", Priority: &p}}}
	require.NoError(t, NewApp(&bytes.Buffer{}, cfg, stubLoader{doc: doc}).Run(context.Background()))
	require.Equal(t, "/xyz/openbmc_project/led/groups/power_on", doc.Groups[0].Path)
}
