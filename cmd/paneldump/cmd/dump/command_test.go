package dump

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woook/paneldump"
	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/save"
)

type stubApp struct {
	baseURL string
}

func (s *stubApp) DumperWithOptions(opts ...paneldump.Option) (*paneldump.Dumper, error) {
	all := append([]paneldump.Option{paneldump.WithBaseURL(s.baseURL)}, opts...)
	return paneldump.New(all...)
}

func (s *stubApp) Logger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestKeepIDs(t *testing.T) {
	// Extra IDs without a genepanels file is a usage error.
	_, err := keepIDs("", "398,700")
	require.Error(t, err)
	var verr *errors.ValidationError
	assert.ErrorAs(t, err, &verr)

	// No restriction at all keeps everything.
	ids, err := keepIDs("", "")
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestKeepIDsMergesExtraPanels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genepanels.tsv")
	require.NoError(t, os.WriteFile(path, []byte("Panel A\t1.0\tHGNC:5\t398\n"), 0o644))

	ids, err := keepIDs(path, "700")
	require.NoError(t, err)
	assert.Equal(t, []int{398, 700}, ids)
}

func TestDumpCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"count": 1,
			"next": null,
			"results": [{
				"id": 398,
				"name": "Severe combined immunodeficiency",
				"version": "3.1",
				"genes": [{
					"gene_data": {"hgnc_id": "HGNC:186", "gene_symbol": "ADA", "alias": []},
					"confidence_level": "3",
					"mode_of_inheritance": "BIALLELIC",
					"mode_of_pathogenicity": "",
					"penetrance": "Complete",
					"transcript": []
				}],
				"regions": []
			}]
		}`)
	}))
	defer server.Close()

	output := filepath.Join(t.TempDir(), "panels.json")

	cmd := NewCommand(&stubApp{baseURL: server.URL})
	cmd.SetArgs([]string{"-o", output})
	require.NoError(t, cmd.Execute())

	ps, err := save.Load(output)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Severe combined immunodeficiency", ps[0].Name)
	require.Len(t, ps[0].Genes, 1)
}

func TestDumpCommandRejectsBadFormat(t *testing.T) {
	cmd := NewCommand(&stubApp{})
	cmd.SetArgs([]string{"-o", "out.json", "--format", "xml"})
	err := cmd.Execute()
	require.Error(t, err)

	var verr *errors.ValidationError
	assert.ErrorAs(t, err, &verr)
}
