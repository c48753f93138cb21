package dedupe

// Outcome describes what resolution did to one duplicate group.
type Outcome struct {
	// Panel is the name of the panel the group belongs to.
	Panel string

	// Entity is the entry kind, EntityGenes or EntityRegions.
	Entity string

	// Key is the identity key shared by the group's entries.
	Key string

	// Count is the number of duplicate entries in the group.
	Count int

	// Collapsed is true when the group was reduced to a single entry
	// with mode of inheritance set to "Other".
	Collapsed bool

	// DifferingFields names the fields with more than one distinct
	// value across the group, in comparison order. Empty for fully
	// identical duplicates.
	DifferingFields []string
}

// Report summarizes one dedupe run.
type Report struct {
	// Panels is the number of panels processed.
	Panels int

	// SkippedEntries is the number of entries excluded from duplicate
	// detection because their identity key was unset.
	SkippedEntries int

	// Outcomes holds one entry per duplicate group processed, in
	// assembly order.
	Outcomes []Outcome
}

// Collapsed returns the number of groups merged to a single entry.
func (r *Report) Collapsed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Collapsed {
			n++
		}
	}
	return n
}

// Unreconciled returns the groups whose variants were all retained.
func (r *Report) Unreconciled() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Collapsed {
			out = append(out, o)
		}
	}
	return out
}

// Groups returns the total number of duplicate groups processed.
func (r *Report) Groups() int {
	return len(r.Outcomes)
}
