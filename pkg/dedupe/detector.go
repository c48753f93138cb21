package dedupe

import (
	"context"

	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

// Detector scans each panel's gene and region lists for entries
// sharing an identity key. It never modifies its input.
type Detector struct{}

// NewDetector creates a new duplicate detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Find returns the duplicate groups for every panel, restricted to
// identity keys carried by at least two entries, plus the entries that
// had to be excluded from scanning because their identity key is unset.
// Skipped entries are advisory: they stay in their panel and pass
// through assembly untouched.
func (d *Detector) Find(ctx context.Context, ps panels.Panels) (Duplicates, []*errors.MissingIdentityError) {
	log := logging.Ctx(ctx)

	duplicates := make(Duplicates)
	var skipped []*errors.MissingIdentityError

	for _, panel := range ps {
		genes := make(map[string][]panels.GeneEntry)
		geneOrder := make([]string, 0, len(panel.Genes))
		for i, gene := range panel.Genes {
			key, ok := gene.Identity()
			if !ok {
				skip := errors.NewMissingIdentityError(panel.Name, EntityGenes, i)
				skipped = append(skipped, skip)
				log.Warn().
					Str("panel", panel.Name).
					Int("index", i).
					Msg("Gene entry has no gene symbol, excluded from duplicate detection")
				continue
			}
			if _, seen := genes[key]; !seen {
				geneOrder = append(geneOrder, key)
			}
			genes[key] = append(genes[key], gene)
		}

		regions := make(map[string][]panels.RegionEntry)
		regionOrder := make([]string, 0, len(panel.Regions))
		for i, region := range panel.Regions {
			key, ok := region.Identity()
			if !ok {
				skip := errors.NewMissingIdentityError(panel.Name, EntityRegions, i)
				skipped = append(skipped, skip)
				log.Warn().
					Str("panel", panel.Name).
					Int("index", i).
					Msg("Region entry has no name, excluded from duplicate detection")
				continue
			}
			if _, seen := regions[key]; !seen {
				regionOrder = append(regionOrder, key)
			}
			regions[key] = append(regions[key], region)
		}

		pd := PanelDuplicates{}
		for _, key := range geneOrder {
			if group := genes[key]; len(group) > 1 {
				if pd.Genes == nil {
					pd.Genes = make(map[string][]panels.GeneEntry)
				}
				pd.Genes[key] = group
			}
		}
		for _, key := range regionOrder {
			if group := regions[key]; len(group) > 1 {
				if pd.Regions == nil {
					pd.Regions = make(map[string][]panels.RegionEntry)
				}
				pd.Regions[key] = group
			}
		}

		if !pd.Empty() {
			duplicates[panel.Name] = pd
		}
	}

	if duplicates.Empty() {
		log.Info().Msg("No duplicate genes or regions found for any panels")
	} else {
		log.Info().
			Int("groups", duplicates.GroupCount()).
			Int("panels", len(duplicates)).
			Msg("Duplicate groups found")
	}

	return duplicates, skipped
}
