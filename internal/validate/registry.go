package validate

// PriorityRegistry maps a normalized indicator name to the indicator-level
// priority it was first declared with. A registry lives for a single
// validation run; it is never shared between documents.
type PriorityRegistry struct {
	entries map[string]registryEntry
}

type registryEntry struct {
	priority int
	group    string
}

// NewPriorityRegistry returns an empty registry.
func NewPriorityRegistry() *PriorityRegistry {
	return &PriorityRegistry{entries: make(map[string]registryEntry)}
}

// Check records priority for indicator on its first sighting. Later sightings
// must carry the same value; otherwise an *InconsistentPriorityError naming
// both groups is returned and the registry is left unchanged.
func (r *PriorityRegistry) Check(indicator, group string, priority int) error {
	first, ok := r.entries[indicator]
	if !ok {
		r.entries[indicator] = registryEntry{priority: priority, group: group}
		return nil
	}
	if first.priority != priority {
		return &InconsistentPriorityError{
			Indicator:     indicator,
			Group:         group,
			Priority:      priority,
			FirstGroup:    first.group,
			FirstPriority: first.priority,
		}
	}
	return nil
}

// Lookup returns the recorded priority for indicator.
func (r *PriorityRegistry) Lookup(indicator string) (int, bool) {
	e, ok := r.entries[indicator]
	return e.priority, ok
}

// Len returns the number of indicators recorded.
func (r *PriorityRegistry) Len() int {
	return len(r.entries)
}
