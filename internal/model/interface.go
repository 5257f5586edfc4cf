// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration document at path and translates it into
	// the format-agnostic model. Structural defects are reported as
	// *MalformedInputError.
	Load(ctx context.Context, path string) (*Document, error)
}
