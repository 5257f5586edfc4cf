package validate

import "fmt"

// ConflictingPriorityError is returned when an indicator declares its own
// priority inside a group that also declares a group-wide priority.
type ConflictingPriorityError struct {
	Group             string
	Indicator         string
	GroupPriority     int
	IndicatorPriority int
}

func (e *ConflictingPriorityError) Error() string {
	return fmt.Sprintf("indicator '%s' in group '%s': cannot mix group priority (%d) and indicator priority (%d)",
		e.Indicator, e.Group, e.GroupPriority, e.IndicatorPriority)
}

// MissingPriorityError is returned when neither the group nor the indicator
// declares a priority.
type MissingPriorityError struct {
	Group     string
	Indicator string
}

func (e *MissingPriorityError) Error() string {
	return fmt.Sprintf("indicator '%s' in group '%s': no priority declared on the indicator or the group",
		e.Indicator, e.Group)
}

// InconsistentPriorityError is returned when an indicator's priority differs
// from the value first recorded for it in another group.
type InconsistentPriorityError struct {
	Indicator     string
	Group         string
	Priority      int
	FirstGroup    string
	FirstPriority int
}

func (e *InconsistentPriorityError) Error() string {
	return fmt.Sprintf("priority for indicator '%s' is not the same across all groups: group '%s' has %d, group '%s' has %d",
		e.Indicator, e.FirstGroup, e.FirstPriority, e.Group, e.Priority)
}
