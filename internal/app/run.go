package app

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/vk/ledgen/internal/ctxlog"
	"github.com/vk/ledgen/internal/emit"
	"github.com/vk/ledgen/internal/fsutil"
	"github.com/vk/ledgen/internal/validate"
)

const artifactPerm = 0o644

// Run compiles the configured input document into the output artifact. Any
// failure aborts the run; the artifact is either written completely or not
// touched at all.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	inputPath := a.config.InputPath()
	doc, err := a.loader.Load(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded.", "path", inputPath, "groups", len(doc.Groups))

	groups, err := validate.Validate(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}

	table := emit.Build(groups)
	a.logger.Debug("LED table built.", "entries", len(table.Entries), "records", table.Records())

	if a.config.DryRun {
		var discard bytes.Buffer
		if err := emit.Render(&discard, table, a.dialect); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		a.logger.Info("Dry run: configuration is valid, nothing written.", "input", inputPath, "groups", len(table.Entries), "bytes", discard.Len())
		return nil
	}

	outputPath := a.config.OutputPath()
	err = fsutil.WriteAtomic(outputPath, artifactPerm, func(w io.Writer) error {
		return emit.Render(w, table, a.dialect)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	a.logger.Info("LED table generated.", "input", inputPath, "output", outputPath, "groups", len(table.Entries), "indicators", table.Records())
	a.logger.Debug("App.Run method finished.")
	return nil
}
