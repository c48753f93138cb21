package panelapp

import (
	"strings"

	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

// confidenceGreen is the only curation tier retained in a dump.
const confidenceGreen = "3"

// extractPanel normalizes one raw panel into the canonical record.
// Only confidence level 3 genes and regions are kept; genes without an
// HGNC ID are skipped with a log line. Raw entries that normalize to
// an entry already present are not appended again.
func extractPanel(detail panelDetail) panels.Panel {
	panel := panels.Panel{
		Source:     panels.SourcePanelApp,
		Name:       detail.Name,
		ExternalID: detail.ID,
		Version:    detail.Version,
		Genes:      []panels.GeneEntry{},
		Regions:    []panels.RegionEntry{},
	}

	for _, raw := range detail.Genes {
		if raw.ConfidenceLevel != confidenceGreen {
			continue
		}
		if raw.GeneData.HGNCID == "" {
			logging.Warn().
				Str("panel", detail.Name).
				Str("gene_symbol", raw.GeneData.GeneSymbol).
				Msg("Skipping gene with no HGNC ID")
			continue
		}

		entry := extractGene(raw)
		if !containsGene(panel.Genes, entry) {
			panel.Genes = append(panel.Genes, entry)
		}
	}

	for _, raw := range detail.Regions {
		if raw.ConfidenceLevel != confidenceGreen {
			continue
		}

		entry := extractRegion(raw)
		if !containsRegion(panel.Regions, entry) {
			panel.Regions = append(panel.Regions, entry)
		}
	}

	return panel
}

// extractGene normalizes one raw gene record.
func extractGene(raw rawGene) panels.GeneEntry {
	return panels.GeneEntry{
		Transcript:              cleanList(raw.Transcript),
		HGNCID:                  clean(raw.GeneData.HGNCID),
		ConfidenceLevel:         clean(raw.ConfidenceLevel),
		ModeOfInheritance:       clean(raw.ModeOfInheritance),
		ModeOfPathogenicity:     clean(raw.ModeOfPathogenicity),
		Penetrance:              clean(raw.Penetrance),
		GeneJustification:       panels.SourcePanelApp,
		TranscriptJustification: panels.SourcePanelApp,
		AliasSymbols:            cleanList(raw.GeneData.Alias),
		GeneSymbol:              clean(raw.GeneData.GeneSymbol),
	}
}

// extractRegion normalizes one raw region record.
func extractRegion(raw rawRegion) panels.RegionEntry {
	start37, end37 := coordinates(raw.GRCh37Coordinates)
	start38, end38 := coordinates(raw.GRCh38Coordinates)

	return panels.RegionEntry{
		ConfidenceLevel:     clean(raw.ConfidenceLevel),
		ModeOfInheritance:   clean(raw.ModeOfInheritance),
		ModeOfPathogenicity: clean(raw.ModeOfPathogenicity),
		Penetrance:          clean(raw.Penetrance),
		Name:                clean(raw.VerboseName),
		Chrom:               clean(raw.Chromosome),
		Start37:             start37,
		End37:               end37,
		Start38:             start38,
		End38:               end38,
		Type:                panels.RegionTypeCNV,
		VariantType:         clean(raw.TypeOfVariants),
		RequiredOverlap:     raw.RequiredOverlap,
		Haploinsufficiency:  clean(raw.Haploinsufficiency),
		Triplosensitivity:   clean(raw.Triplosensitivity),
		Justification:       panels.SourcePanelApp,
	}
}

// clean trims a raw string value; empty values normalize to nil so
// they serialize as null.
func clean(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// cleanList joins a raw list value to one comma-separated string;
// empty lists normalize to nil.
func cleanList(vals []string) *string {
	if len(vals) == 0 {
		return nil
	}
	joined := strings.Join(vals, ",")
	return &joined
}

// coordinates unpacks a [start, end] coordinate pair, nil when the
// build is not annotated.
func coordinates(pair []int) (*int, *int) {
	if len(pair) != 2 {
		return nil, nil
	}
	start, end := pair[0], pair[1]
	return &start, &end
}

func containsGene(entries []panels.GeneEntry, entry panels.GeneEntry) bool {
	for _, existing := range entries {
		if existing.Equal(entry) {
			return true
		}
	}
	return false
}

func containsRegion(entries []panels.RegionEntry, entry panels.RegionEntry) bool {
	for _, existing := range entries {
		if existing.Equal(entry) {
			return true
		}
	}
	return false
}
