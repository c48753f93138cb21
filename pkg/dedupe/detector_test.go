package dedupe_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woook/paneldump/internal/utils/ptr"
	"github.com/woook/paneldump/pkg/dedupe"
	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

// gene builds a minimal gene entry for tests.
func gene(symbol, moi string) panels.GeneEntry {
	g := panels.GeneEntry{
		HGNCID:                  ptr.String("HGNC:0000"),
		ConfidenceLevel:         ptr.String("3"),
		GeneJustification:       panels.SourcePanelApp,
		TranscriptJustification: panels.SourcePanelApp,
	}
	if symbol != "" {
		g.GeneSymbol = ptr.String(symbol)
	}
	if moi != "" {
		g.ModeOfInheritance = ptr.String(moi)
	}
	return g
}

// region builds a minimal region entry for tests.
func region(name, moi string) panels.RegionEntry {
	r := panels.RegionEntry{
		ConfidenceLevel: ptr.String("3"),
		Chrom:           ptr.String("16"),
		Start38:         ptr.Int(21558792),
		End38:           ptr.Int(21729102),
		Type:            panels.RegionTypeCNV,
		Justification:   panels.SourcePanelApp,
	}
	if name != "" {
		r.Name = ptr.String(name)
	}
	if moi != "" {
		r.ModeOfInheritance = ptr.String(moi)
	}
	return r
}

func TestDetectorFindsGeneDuplicates(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := panels.Panels{
		{
			Name: "CardiacPanel",
			Genes: []panels.GeneEntry{
				gene("MYH7", "MONOALLELIC"),
				gene("TTN", "BIALLELIC"),
				gene("MYH7", "BIALLELIC"),
			},
		},
	}

	dups, skipped := dedupe.NewDetector().Find(context.Background(), input)

	require.Empty(t, skipped)
	require.Len(t, dups, 1)

	group := dups.GeneGroup("CardiacPanel", "MYH7")
	require.Len(t, group, 2)
	assert.Equal(t, "MONOALLELIC", *group[0].ModeOfInheritance)
	assert.Equal(t, "BIALLELIC", *group[1].ModeOfInheritance)

	assert.Nil(t, dups.GeneGroup("CardiacPanel", "TTN"), "singletons are not groups")
}

func TestDetectorFindsRegionDuplicates(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := panels.Panels{
		{
			Name: "RenalPanel",
			Regions: []panels.RegionEntry{
				region("Region X", "Other"),
				region("Region X", "MONOALLELIC"),
				region("Region Y", "Other"),
			},
		},
	}

	dups, skipped := dedupe.NewDetector().Find(context.Background(), input)

	require.Empty(t, skipped)
	assert.Equal(t, 1, dups.GroupCount())
	assert.Len(t, dups.RegionGroup("RenalPanel", "Region X"), 2)
}

func TestDetectorSkipsEntriesWithoutIdentityKey(t *testing.T) {
	log := logging.CaptureLoggingForTest(t)

	input := panels.Panels{
		{
			Name: "CardiacPanel",
			Genes: []panels.GeneEntry{
				gene("", "MONOALLELIC"), // no gene symbol
				gene("MYH7", "MONOALLELIC"),
			},
			Regions: []panels.RegionEntry{
				region("", "Other"), // no name
			},
		},
	}

	dups, skipped := dedupe.NewDetector().Find(context.Background(), input)

	assert.True(t, dups.Empty())
	require.Len(t, skipped, 2)
	assert.True(t, errors.IsMissingIdentity(skipped[0]))
	assert.Equal(t, dedupe.EntityGenes, skipped[0].Entity)
	assert.Equal(t, dedupe.EntityRegions, skipped[1].Entity)
	assert.True(t, log.Contains("excluded from duplicate detection"))
}

func TestDetectorGroupsKeysAcrossPanelsSeparately(t *testing.T) {
	logging.DisableLoggingForTest(t)

	// The same gene in two different panels is not a duplicate.
	input := panels.Panels{
		{Name: "Panel A", Genes: []panels.GeneEntry{gene("MYH7", "MONOALLELIC")}},
		{Name: "Panel B", Genes: []panels.GeneEntry{gene("MYH7", "BIALLELIC")}},
	}

	dups, _ := dedupe.NewDetector().Find(context.Background(), input)
	assert.True(t, dups.Empty())
}

func TestDetectorDoesNotMutateInput(t *testing.T) {
	logging.DisableLoggingForTest(t)

	input := panels.Panels{
		{
			Name: "CardiacPanel",
			Genes: []panels.GeneEntry{
				gene("MYH7", "MONOALLELIC"),
				gene("MYH7", "BIALLELIC"),
			},
		},
	}
	snapshot := input[0].Clone()

	_, _ = dedupe.NewDetector().Find(context.Background(), input)

	if diff := cmp.Diff(snapshot, input[0]); diff != "" {
		t.Errorf("detector mutated its input (-want +got):\n%s", diff)
	}
}
