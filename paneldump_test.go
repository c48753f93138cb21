package paneldump

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woook/paneldump/internal/utils/ptr"
	"github.com/woook/paneldump/pkg/panels"
)

func testPanel(name string, genes ...panels.GeneEntry) panels.Panel {
	return panels.Panel{
		Source:  panels.SourcePanelApp,
		Name:    name,
		Version: "1.0",
		Genes:   genes,
	}
}

func testGene(symbol, moi string) panels.GeneEntry {
	return panels.GeneEntry{
		GeneSymbol:        ptr.String(symbol),
		HGNCID:            ptr.String("HGNC:1100"),
		ConfidenceLevel:   ptr.String("3"),
		ModeOfInheritance: ptr.String(moi),
	}
}

func TestNewDefaults(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Nil(t, d.config.keep)
}

func TestReconcileCollapsesInheritanceConflicts(t *testing.T) {
	ps := panels.Panels{
		testPanel("Inherited breast cancer",
			testGene("BRCA1", "BIALLELIC"),
			testGene("BRCA1", "MONOALLELIC"),
			testGene("TP53", "MONOALLELIC"),
		),
	}

	final, report, err := newTestDumper(t).Reconcile(context.Background(), ps)
	require.NoError(t, err)

	require.Len(t, final, 1)
	require.Len(t, final[0].Genes, 2)
	assert.Equal(t, "BRCA1", *final[0].Genes[0].GeneSymbol)
	assert.Equal(t, panels.ModeOther, *final[0].Genes[0].ModeOfInheritance)
	assert.Equal(t, "TP53", *final[0].Genes[1].GeneSymbol)

	assert.Equal(t, 1, report.Panels)
	assert.Equal(t, 1, report.Collapsed())
	assert.Empty(t, report.Unreconciled())

	// Input untouched.
	assert.Len(t, ps[0].Genes, 3)
	assert.Equal(t, "BIALLELIC", *ps[0].Genes[0].ModeOfInheritance)
}

// newTestDumper builds a Dumper for tests that never touch the network.
func newTestDumper(t *testing.T) *Dumper {
	t.Helper()
	d, err := New()
	require.NoError(t, err)
	return d
}

func TestReconcileRetainsWiderConflicts(t *testing.T) {
	first := testGene("SHOX", "XLR")
	first.Transcript = ptr.String("NM_000451.4")
	second := testGene("SHOX", "XLD")
	second.Transcript = ptr.String("NM_006883.2")

	ps := panels.Panels{testPanel("Skeletal dysplasia", first, second)}

	final, report, err := newTestDumper(t).Reconcile(context.Background(), ps)
	require.NoError(t, err)

	require.Len(t, final[0].Genes, 2)
	assert.Equal(t, "XLR", *final[0].Genes[0].ModeOfInheritance)
	assert.Equal(t, "XLD", *final[0].Genes[1].ModeOfInheritance)

	require.Len(t, report.Unreconciled(), 1)
	assert.Contains(t, report.Unreconciled()[0].DifferingFields, "transcript")
}

func TestDumpAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"count": 1,
			"next": null,
			"results": [{
				"id": 398,
				"name": "Severe combined immunodeficiency",
				"version": "3.1",
				"genes": [
					{
						"gene_data": {"hgnc_id": "HGNC:186", "gene_symbol": "ADA", "alias": []},
						"confidence_level": "3",
						"mode_of_inheritance": "BIALLELIC",
						"mode_of_pathogenicity": "",
						"penetrance": "Complete",
						"transcript": []
					},
					{
						"gene_data": {"hgnc_id": "HGNC:186", "gene_symbol": "ADA", "alias": []},
						"confidence_level": "3",
						"mode_of_inheritance": "MONOALLELIC",
						"mode_of_pathogenicity": "",
						"penetrance": "Complete",
						"transcript": []
					}
				],
				"regions": []
			}]
		}`)
	}))
	defer server.Close()

	d, err := New(WithBaseURL(server.URL), WithKeepPanels(398))
	require.NoError(t, err)

	final, report, err := d.Dump(context.Background())
	require.NoError(t, err)

	require.Len(t, final, 1)
	assert.Equal(t, 398, final[0].ExternalID)
	require.Len(t, final[0].Genes, 1)
	assert.Equal(t, panels.ModeOther, *final[0].Genes[0].ModeOfInheritance)
	assert.Equal(t, 1, report.Collapsed())
}

func TestWithKeepPanelsAccumulates(t *testing.T) {
	d, err := New(WithKeepPanels(398), WithKeepPanels(23, 700))
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{398: true, 23: true, 700: true}, d.config.keep)
}
