package check

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woook/paneldump"
	"github.com/woook/paneldump/internal/utils/ptr"
	"github.com/woook/paneldump/pkg/panels"
	"github.com/woook/paneldump/pkg/save"
)

type stubApp struct{}

func (s *stubApp) Dumper() (*paneldump.Dumper, error) {
	return paneldump.New()
}

func (s *stubApp) Logger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func writeDump(t *testing.T, ps panels.Panels) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panels.json")
	require.NoError(t, save.Panels(ps, save.WithPath(path)))
	return path
}

func TestCheckCleanDump(t *testing.T) {
	path := writeDump(t, panels.Panels{{
		Source:  panels.SourcePanelApp,
		Name:    "Clean panel",
		Version: "1.0",
		Genes: []panels.GeneEntry{
			{GeneSymbol: ptr.String("ADA"), ModeOfInheritance: ptr.String("BIALLELIC")},
		},
	}})

	cmd := NewCommand(&stubApp{})
	cmd.SetArgs([]string{path})
	assert.NoError(t, cmd.Execute())
}

func TestCheckReportsUnresolvableDuplicates(t *testing.T) {
	path := writeDump(t, panels.Panels{{
		Source:  panels.SourcePanelApp,
		Name:    "Dirty panel",
		Version: "1.0",
		Genes: []panels.GeneEntry{
			{GeneSymbol: ptr.String("SHOX"), Penetrance: ptr.String("Complete")},
			{GeneSymbol: ptr.String("SHOX"), Penetrance: ptr.String("Incomplete")},
		},
	}})

	cmd := NewCommand(&stubApp{})
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manual review")
}

func TestCheckMissingFile(t *testing.T) {
	cmd := NewCommand(&stubApp{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.json")})
	assert.Error(t, cmd.Execute())
}
