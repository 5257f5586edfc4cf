package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/ledgen/internal/ctxlog"
	"github.com/vk/ledgen/internal/model"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the model.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ model.Loader = (*Loader)(nil)

// Load reads the document at path and translates it into the model.
func (l *Loader) Load(ctx context.Context, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := l.Parse(ctx, path, data)
	if err != nil {
		return nil, err
	}

	logger.Debug("YAML loading complete.", "path", path, "groups", len(doc.Groups))
	return doc, nil
}

// Parse translates an in-memory document. source names the document in
// diagnostics.
func (l *Loader) Parse(ctx context.Context, source string, data []byte) (*model.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &model.MalformedInputError{Source: source, Reason: "document is empty"}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &model.MalformedInputError{Source: source, Reason: "document is empty"}
		}
		return nil, &model.MalformedInputError{Source: source, Reason: err.Error(), Err: err}
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, &model.MalformedInputError{Source: source, Reason: err.Error(), Err: err}
	default:
		return nil, &model.MalformedInputError{Source: source, Line: extra.Line, Column: extra.Column, Reason: "expected a single document"}
	}

	t := &translator{source: source}
	return t.document(ctx, &root)
}
