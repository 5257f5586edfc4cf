// Package validate enforces the priority invariants of an LED group document
// and normalizes its identifiers.
//
// Every indicator occurrence takes its priority from exactly one source:
// either the enclosing group declares a group-wide priority, or the indicator
// declares its own. Indicator-level priorities are arbitration values for a
// physically shared LED, so one indicator must carry the same value in every
// group that lists it. The PriorityRegistry records the first value seen for
// each indicator and rejects any later mismatch.
//
// Validation is fail-fast: the first violation aborts the run and no partial
// result is returned.
package validate
