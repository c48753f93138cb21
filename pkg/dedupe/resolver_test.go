package dedupe_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woook/paneldump/internal/utils/ptr"
	"github.com/woook/paneldump/pkg/dedupe"
	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

func TestResolverCollapsesModeOfInheritanceOnlyGroup(t *testing.T) {
	logging.DisableLoggingForTest(t)

	first := gene("MYH7", "MONOALLELIC")
	first.Transcript = ptr.String("NM_000257.4")
	second := gene("MYH7", "BIALLELIC")
	second.Transcript = ptr.String("NM_000257.4")

	resolved, outcome := dedupe.NewResolver().Genes(
		context.Background(), "CardiacPanel", "MYH7",
		[]panels.GeneEntry{first, second})

	require.Len(t, resolved, 1)
	assert.Equal(t, panels.ModeOther, *resolved[0].ModeOfInheritance)

	// Every other field comes from the first duplicate.
	expected := first.Clone()
	expected.ModeOfInheritance = ptr.String(panels.ModeOther)
	if diff := cmp.Diff(expected, resolved[0]); diff != "" {
		t.Errorf("merged entry mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, outcome.Collapsed)
	assert.Equal(t, []string{panels.FieldModeOfInheritance}, outcome.DifferingFields)
	assert.Equal(t, 2, outcome.Count)
}

func TestResolverDoesNotMutateGroupOnCollapse(t *testing.T) {
	logging.DisableLoggingForTest(t)

	first := gene("MYH7", "MONOALLELIC")
	second := gene("MYH7", "BIALLELIC")

	_, _ = dedupe.NewResolver().Genes(
		context.Background(), "CardiacPanel", "MYH7",
		[]panels.GeneEntry{first, second})

	assert.Equal(t, "MONOALLELIC", *first.ModeOfInheritance,
		"collapse must copy the first entry, not mutate it")
}

func TestResolverRetainsGroupWithOtherDifferences(t *testing.T) {
	log := logging.CaptureLoggingForTest(t)

	first := region("Region X", "Other")
	first.Haploinsufficiency = ptr.String("30")
	second := region("Region X", "Other")
	second.Haploinsufficiency = ptr.String("40")

	resolved, outcome := dedupe.NewResolver().Regions(
		context.Background(), "RenalPanel", "Region X",
		[]panels.RegionEntry{first, second})

	require.Len(t, resolved, 2)
	if diff := cmp.Diff([]panels.RegionEntry{first, second}, resolved); diff != "" {
		t.Errorf("retained group changed (-want +got):\n%s", diff)
	}

	assert.False(t, outcome.Collapsed)
	assert.Equal(t, []string{"haploinsufficiency"}, outcome.DifferingFields)
	assert.True(t, log.Contains("haploinsufficiency"))
	assert.True(t, log.Contains("RenalPanel"))
	assert.True(t, log.Contains("Region X"))
}

func TestResolverRetainsGroupWhenInheritanceAndMoreDiffer(t *testing.T) {
	logging.DisableLoggingForTest(t)

	first := gene("MYH7", "MONOALLELIC")
	first.ConfidenceLevel = ptr.String("3")
	second := gene("MYH7", "BIALLELIC")
	second.ConfidenceLevel = ptr.String("2")

	resolved, outcome := dedupe.NewResolver().Genes(
		context.Background(), "CardiacPanel", "MYH7",
		[]panels.GeneEntry{first, second})

	require.Len(t, resolved, 2)
	assert.False(t, outcome.Collapsed)
	assert.Equal(t,
		[]string{"confidence_level", panels.FieldModeOfInheritance},
		outcome.DifferingFields)
}

func TestResolverRetainsFullyIdenticalDuplicates(t *testing.T) {
	// When every field is identical the differing set is empty, so the
	// collapse condition is not met and all entries come back.
	log := logging.CaptureLoggingForTest(t)

	entry := gene("MYH7", "MONOALLELIC")
	group := []panels.GeneEntry{entry, entry.Clone(), entry.Clone()}

	resolved, outcome := dedupe.NewResolver().Genes(
		context.Background(), "CardiacPanel", "MYH7", group)

	require.Len(t, resolved, 3)
	assert.False(t, outcome.Collapsed)
	assert.Empty(t, outcome.DifferingFields)
	assert.Equal(t, 3, outcome.Count)
	assert.True(t, log.Contains("could not be reconciled"))
}

func TestResolverDistinguishesNilFromEmptyValues(t *testing.T) {
	logging.DisableLoggingForTest(t)

	first := gene("MYH7", "MONOALLELIC")
	first.Penetrance = nil
	second := gene("MYH7", "MONOALLELIC")
	second.Penetrance = ptr.String("")

	_, outcome := dedupe.NewResolver().Genes(
		context.Background(), "CardiacPanel", "MYH7",
		[]panels.GeneEntry{first, second})

	assert.Equal(t, []string{"penetrance"}, outcome.DifferingFields)
}

func TestResolverCollapsesRegionGroup(t *testing.T) {
	logging.DisableLoggingForTest(t)

	first := region("Region X", "Other")
	second := region("Region X", "MONOALLELIC, autosomal or pseudoautosomal, imprinted status unknown")

	resolved, outcome := dedupe.NewResolver().Regions(
		context.Background(), "Paediatric disorders", "Region X",
		[]panels.RegionEntry{first, second})

	require.Len(t, resolved, 1)
	assert.True(t, outcome.Collapsed)
	assert.Equal(t, panels.ModeOther, *resolved[0].ModeOfInheritance)
	assert.Equal(t, *first.Start38, *resolved[0].Start38)
}
