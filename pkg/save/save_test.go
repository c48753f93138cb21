package save_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woook/paneldump/internal/utils/ptr"
	"github.com/woook/paneldump/pkg/panels"
	"github.com/woook/paneldump/pkg/save"
)

func testPanels() panels.Panels {
	return panels.Panels{
		{
			Source:     panels.SourcePanelApp,
			Name:       "CardiacPanel",
			ExternalID: 749,
			Version:    "5.0",
			Genes: []panels.GeneEntry{
				{
					HGNCID:                  ptr.String("HGNC:7577"),
					ConfidenceLevel:         ptr.String("3"),
					ModeOfInheritance:       ptr.String("MONOALLELIC"),
					GeneJustification:       panels.SourcePanelApp,
					TranscriptJustification: panels.SourcePanelApp,
					GeneSymbol:              ptr.String("MYH7"),
				},
			},
			Regions: []panels.RegionEntry{},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name   string
		want   save.Format
		wantOK bool
	}{
		{name: "json", want: save.FormatJSON, wantOK: true},
		{name: "yaml", want: save.FormatYAML, wantOK: true},
		{name: "yml", want: save.FormatYAML, wantOK: true},
		{name: "", want: save.FormatJSON, wantOK: true},
		{name: "xml", wantOK: false},
	}

	for _, tt := range tests {
		t.Run("format "+tt.name, func(t *testing.T) {
			got, ok := save.ParseFormat(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSaveJSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := save.Panels(testPanels(), save.WithWriter(&buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"panel_name": "CardiacPanel"`)
	// Unset fields serialize as explicit nulls, never omitted.
	assert.Contains(t, out, `"transcript": null`)
	assert.Contains(t, out, `"penetrance": null`)
}

func TestSaveYAMLToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := save.Panels(testPanels(), save.WithWriter(&buf), save.WithFormat(save.FormatYAML))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "panel_name: CardiacPanel")
	assert.Contains(t, out, "transcript: null")
}

func TestSaveRequiresPathOrWriter(t *testing.T) {
	err := save.Panels(testPanels())
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")

	require.NoError(t, save.Panels(testPanels(), save.WithPath(path)))

	loaded, err := save.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "CardiacPanel", loaded[0].Name)
	require.Len(t, loaded[0].Genes, 1)
	assert.Equal(t, "MYH7", *loaded[0].Genes[0].GeneSymbol)
	assert.Nil(t, loaded[0].Genes[0].Transcript)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := save.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSaveListOrderPreserved(t *testing.T) {
	ps := panels.Panels{
		{Name: "Zebra", Genes: []panels.GeneEntry{}, Regions: []panels.RegionEntry{}},
		{Name: "Alpha", Genes: []panels.GeneEntry{}, Regions: []panels.RegionEntry{}},
	}

	var buf bytes.Buffer
	require.NoError(t, save.Panels(ps, save.WithWriter(&buf)))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Zebra", decoded[0]["panel_name"])
	assert.Equal(t, "Alpha", decoded[1]["panel_name"])
}
