package dedupe

import (
	"context"

	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/panels"
)

// Assembler rebuilds each panel's entry lists with resolved duplicate
// groups substituted back in. Panel metadata is never changed.
type Assembler struct {
	resolver *Resolver
}

// NewAssembler creates an assembler using the given resolver.
func NewAssembler(resolver *Resolver) *Assembler {
	if resolver == nil {
		resolver = NewResolver()
	}
	return &Assembler{resolver: resolver}
}

// Assemble returns a new panel list in which each duplicated identity
// key is replaced, at the position of its first occurrence, by that
// key's resolved entry list; later occurrences of the key are
// suppressed. Entries without duplicates, including entries with no
// identity key, pass through unchanged in their original order.
//
// The output panel count must equal the input panel count; a mismatch
// returns a PanelCountError and no panels, since it signals an
// assembly logic defect and nothing may be emitted after it.
func (a *Assembler) Assemble(ctx context.Context, ps panels.Panels, duplicates Duplicates) (panels.Panels, *Report, error) {
	report := &Report{Panels: len(ps)}

	final := make(panels.Panels, 0, len(ps))
	for _, panel := range ps {
		rebuilt := panel
		rebuilt.Genes = a.assembleGenes(ctx, panel, duplicates, report)
		rebuilt.Regions = a.assembleRegions(ctx, panel, duplicates, report)
		final = append(final, rebuilt)
	}

	if len(final) != len(ps) {
		return nil, nil, errors.NewPanelCountError(len(ps), len(final))
	}

	return final, report, nil
}

func (a *Assembler) assembleGenes(ctx context.Context, panel panels.Panel, duplicates Duplicates, report *Report) []panels.GeneEntry {
	updated := make([]panels.GeneEntry, 0, len(panel.Genes))
	processed := make(map[string]bool)

	for _, gene := range panel.Genes {
		key, ok := gene.Identity()
		if !ok {
			// No identity key: untouched by detection, passes through.
			updated = append(updated, gene)
			continue
		}

		group := duplicates.GeneGroup(panel.Name, key)
		if group == nil {
			updated = append(updated, gene)
			processed[key] = true
			continue
		}

		if processed[key] {
			continue
		}
		resolved, outcome := a.resolver.Genes(ctx, panel.Name, key, group)
		updated = append(updated, resolved...)
		report.Outcomes = append(report.Outcomes, outcome)
		processed[key] = true
	}

	return updated
}

func (a *Assembler) assembleRegions(ctx context.Context, panel panels.Panel, duplicates Duplicates, report *Report) []panels.RegionEntry {
	updated := make([]panels.RegionEntry, 0, len(panel.Regions))
	processed := make(map[string]bool)

	for _, region := range panel.Regions {
		key, ok := region.Identity()
		if !ok {
			updated = append(updated, region)
			continue
		}

		group := duplicates.RegionGroup(panel.Name, key)
		if group == nil {
			updated = append(updated, region)
			processed[key] = true
			continue
		}

		if processed[key] {
			continue
		}
		resolved, outcome := a.resolver.Regions(ctx, panel.Name, key, group)
		updated = append(updated, resolved...)
		report.Outcomes = append(report.Outcomes, outcome)
		processed[key] = true
	}

	return updated
}
