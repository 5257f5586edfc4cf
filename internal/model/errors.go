// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"
	"strings"
)

// MalformedInputError reports a structural or syntax defect in the input
// document: bad syntax, the wrong top-level shape, or an attribute value that
// cannot be coerced to its type.
type MalformedInputError struct {
	Source string
	Line   int
	Column int
	Reason string
	Err    error
}

// Error implements the error interface for MalformedInputError.
func (e *MalformedInputError) Error() string {
	var b strings.Builder
	b.WriteString("malformed input")
	if e.Source != "" {
		b.WriteString(" ")
		b.WriteString(e.Source)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
			if e.Column > 0 {
				fmt.Fprintf(&b, ":%d", e.Column)
			}
		}
	} else if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// Unwrap returns the underlying parser or conversion error, if any.
func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
