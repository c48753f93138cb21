package dedupe

import (
	"context"

	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

// Resolver decides, for each duplicate group, whether to collapse it to
// a single entry or retain every variant.
//
// A group collapses only when the entries disagree in mode of
// inheritance and nothing else: the first entry is copied verbatim with
// mode of inheritance overridden to "Other". Resolution never
// fabricates values beyond that one override.
type Resolver struct{}

// NewResolver creates a new conflict resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Genes resolves one gene duplicate group. The input must hold at
// least two entries sharing the same gene symbol.
func (r *Resolver) Genes(ctx context.Context, panelName, symbol string, dups []panels.GeneEntry) ([]panels.GeneEntry, Outcome) {
	differing := differingGeneFields(dups)
	outcome := Outcome{
		Panel:           panelName,
		Entity:          EntityGenes,
		Key:             symbol,
		Count:           len(dups),
		DifferingFields: differing,
	}

	if collapsible(differing) {
		merged := dups[0].Clone()
		other := panels.ModeOther
		merged.ModeOfInheritance = &other

		outcome.Collapsed = true
		r.logOutcome(ctx, outcome)
		return []panels.GeneEntry{merged}, outcome
	}

	r.logOutcome(ctx, outcome)
	return dups, outcome
}

// Regions resolves one region duplicate group. The input must hold at
// least two entries sharing the same region name.
func (r *Resolver) Regions(ctx context.Context, panelName, name string, dups []panels.RegionEntry) ([]panels.RegionEntry, Outcome) {
	differing := differingRegionFields(dups)
	outcome := Outcome{
		Panel:           panelName,
		Entity:          EntityRegions,
		Key:             name,
		Count:           len(dups),
		DifferingFields: differing,
	}

	if collapsible(differing) {
		merged := dups[0].Clone()
		other := panels.ModeOther
		merged.ModeOfInheritance = &other

		outcome.Collapsed = true
		r.logOutcome(ctx, outcome)
		return []panels.RegionEntry{merged}, outcome
	}

	r.logOutcome(ctx, outcome)
	return dups, outcome
}

// collapsible reports whether a group may be reduced to one entry:
// there must be at least one differing field and every differing field
// must be mode of inheritance. Fully identical duplicates have no
// differing fields, so they do not collapse; they are retained and
// surfaced like any other unresolved group.
func collapsible(differing []string) bool {
	if len(differing) == 0 {
		return false
	}
	for _, name := range differing {
		if name != panels.FieldModeOfInheritance {
			return false
		}
	}
	return true
}

// differingGeneFields returns the names of the comparable gene fields
// holding more than one distinct value across the group, in field
// table order.
func differingGeneFields(dups []panels.GeneEntry) []string {
	var differing []string
	for _, field := range panels.GeneFields {
		values := make(map[any]struct{}, len(dups))
		for _, dup := range dups {
			values[field.Get(dup)] = struct{}{}
		}
		if len(values) > 1 {
			differing = append(differing, field.Name)
		}
	}
	return differing
}

// differingRegionFields is the region counterpart of
// differingGeneFields.
func differingRegionFields(dups []panels.RegionEntry) []string {
	var differing []string
	for _, field := range panels.RegionFields {
		values := make(map[any]struct{}, len(dups))
		for _, dup := range dups {
			values[field.Get(dup)] = struct{}{}
		}
		if len(values) > 1 {
			differing = append(differing, field.Name)
		}
	}
	return differing
}

// logOutcome emits exactly one diagnostic line per duplicate group.
func (r *Resolver) logOutcome(ctx context.Context, o Outcome) {
	log := logging.Ctx(ctx)

	if o.Collapsed {
		log.Info().
			Str("panel", o.Panel).
			Str(entityField(o.Entity), o.Key).
			Int("duplicates", o.Count).
			Msgf("Only the mode of inheritance differs between duplicates, collapsing to one entry with mode of inheritance %q", panels.ModeOther)
		return
	}

	event := log.Warn().
		Str("panel", o.Panel).
		Str(entityField(o.Entity), o.Key).
		Int("duplicates", o.Count)
	if len(o.DifferingFields) > 0 {
		event = event.Strs("differing_fields", o.DifferingFields)
	}
	event.Msg("Duplicates could not be reconciled, retaining all entries for manual review")
}

func entityField(entity string) string {
	if entity == EntityRegions {
		return "region"
	}
	return "gene"
}
