package emit

import "github.com/vk/ledgen/internal/model"

// Table is the ordered content of the generated group map.
type Table struct {
	Entries []Entry
}

// Entry is one group of the generated map.
type Entry struct {
	Key      string // namespaced group path
	Priority int    // group-wide priority, 0 when the group uses indicator priorities
	Records  []Record
}

// Record is one indicator of a group.
type Record struct {
	Name string
	// Action is the action literal without namespace. Empty renders as the
	// dialect's no-action sentinel.
	Action   string
	DutyOn   uint8
	Period   uint16
	Priority int
}

// Build converts validated groups into a Table, keeping group and indicator
// order. The groups must have been through validation: only normalized
// identifiers and effective priorities are read.
func Build(groups []*model.Group) Table {
	t := Table{Entries: make([]Entry, 0, len(groups))}
	for _, g := range groups {
		e := Entry{
			Key:      g.Path,
			Priority: g.PriorityOrZero(),
			Records:  make([]Record, 0, len(g.Indicators)),
		}
		for _, ind := range g.Indicators {
			e.Records = append(e.Records, Record{
				Name:     ind.ID,
				Action:   ind.Action,
				DutyOn:   ind.DutyOn,
				Period:   ind.Period,
				Priority: ind.EffectivePriority,
			})
		}
		t.Entries = append(t.Entries, e)
	}
	return t
}

// Records returns the total number of indicator records in the table.
func (t Table) Records() int {
	n := 0
	for _, e := range t.Entries {
		n += len(e.Records)
	}
	return n
}
