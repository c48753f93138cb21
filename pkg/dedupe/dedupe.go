// Package dedupe implements the duplicate-detection and
// conflict-resolution engine used when assembling a panel dump.
//
// The pipeline is a single-pass, deterministic batch transform:
//
//	panels → Detector (duplicate groups) → Resolver (resolved groups) →
//	Assembler (final panel list)
//
// Duplicate entries commonly appear when a panel is a superpanel built
// from several source panels that assert different inheritance modes
// for the same gene or region. That one disagreement is reconcilable:
// the group collapses to a single entry with mode of inheritance set to
// "Other". Any other disagreement is a data-quality signal; all
// variants are retained and surfaced for manual review, never silently
// decided.
package dedupe

import (
	"github.com/woook/paneldump/pkg/panels"
)

// Entity type labels used in duplicate bookkeeping and diagnostics.
const (
	EntityGenes   = "genes"
	EntityRegions = "regions"
)

// PanelDuplicates holds the duplicate groups found within one panel,
// keyed by identity key. Group entries keep their panel order.
type PanelDuplicates struct {
	Genes   map[string][]panels.GeneEntry
	Regions map[string][]panels.RegionEntry
}

// Empty reports whether the panel has no duplicate groups.
func (pd PanelDuplicates) Empty() bool {
	return len(pd.Genes) == 0 && len(pd.Regions) == 0
}

// Duplicates maps panel name to the duplicate groups found in that
// panel. Panels without duplicates have no key.
type Duplicates map[string]PanelDuplicates

// Empty reports whether no duplicate groups were found at all.
func (d Duplicates) Empty() bool {
	for _, pd := range d {
		if !pd.Empty() {
			return false
		}
	}
	return true
}

// GroupCount returns the total number of duplicate groups.
func (d Duplicates) GroupCount() int {
	n := 0
	for _, pd := range d {
		n += len(pd.Genes) + len(pd.Regions)
	}
	return n
}

// GeneGroup returns the duplicate group for a gene symbol in a panel,
// or nil when the symbol has no duplicates there.
func (d Duplicates) GeneGroup(panel, symbol string) []panels.GeneEntry {
	return d[panel].Genes[symbol]
}

// RegionGroup returns the duplicate group for a region name in a panel,
// or nil when the name has no duplicates there.
func (d Duplicates) RegionGroup(panel, name string) []panels.RegionEntry {
	return d[panel].Regions[name]
}
