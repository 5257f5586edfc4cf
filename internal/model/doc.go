// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the format-agnostic, in-memory representation of an
// LED group configuration. It is the single contract between the loader, the
// validator and the emitter.
//
// # Core Concepts
//
//   - Document: The root container. It holds every group in the order the
//     groups appear in the source document.
//
//   - Group: A named collection of indicators that are asserted together. A
//     group is exposed to the runtime under a namespaced path and may carry a
//     group-wide priority.
//
//   - Indicator: A single physical LED as requested by one group. It carries
//     the requested action, blink duty cycle and period, and optionally its
//     own priority.
//
// Why a separate model package?
//
// The loader knows about YAML and nothing else; the validator and emitter know
// about this package and nothing else. Keeping the model free of parser types
// lets each stage be tested against a hand-built Document without touching
// the file system or a parser.
package model
