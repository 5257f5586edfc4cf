// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the group and indicator models.
//
// Raw names are kept as written so that error messages point at what the user
// typed. The normalized forms (ID, Path) are filled in by the validator and are
// the only names the emitter ever looks at.
package model

// Defaults applied by the loader when an indicator omits an attribute.
const (
	DefaultAction = "Off"
	DefaultDutyOn = 50
	DefaultPeriod = 0
)

// Document is the loaded configuration, in source order.
type Document struct {
	// Source names where the document came from. Used in diagnostics only.
	Source string
	Groups []*Group
}

// Group is one top-level entry of the configuration document.
type Group struct {
	Name string // as written in the source
	ID   string // normalized name, set by the validator
	Path string // namespaced object path, set by the validator

	// Priority is the group-wide priority. Nil when the group did not declare one.
	Priority *int

	Indicators []*Indicator

	Line int
}

// HasPriority reports whether the group declared a group-wide priority.
func (g *Group) HasPriority() bool {
	return g != nil && g.Priority != nil
}

// PriorityOrZero returns the group-wide priority, or 0 when none was declared.
func (g *Group) PriorityOrZero() int {
	if !g.HasPriority() {
		return 0
	}
	return *g.Priority
}

// Indicator is one LED entry inside a group.
type Indicator struct {
	Name string // as written in the source
	ID   string // normalized name, set by the validator

	// Action is the requested behavior. Empty when the source set the
	// attribute to null or an empty string; the emitter renders that as the
	// "no action" sentinel.
	Action string
	DutyOn uint8
	Period uint16

	// Priority is the indicator-level priority. Nil when not declared.
	Priority *int

	// EffectivePriority is the resolved priority, set by the validator from
	// either Priority or the enclosing group's priority.
	EffectivePriority int

	Line int
}

// HasAction reports whether the indicator carries an action literal.
func (i *Indicator) HasAction() bool {
	return i.Action != ""
}

// NewIndicator returns an indicator with every attribute at its default.
func NewIndicator(name string) *Indicator {
	return &Indicator{
		Name:   name,
		Action: DefaultAction,
		DutyOn: DefaultDutyOn,
		Period: DefaultPeriod,
	}
}
