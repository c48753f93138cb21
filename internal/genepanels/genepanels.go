// Package genepanels reads the genepanels TSV that lists the panels a
// laboratory tests for, and turns it into the set of PanelApp panel
// IDs a dump should retain.
package genepanels

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/logging"
)

// columnCount is the expected genepanels layout: panel name, panel
// version, gene ID, panel ID.
const columnCount = 4

// PanelIDs reads a genepanels TSV and returns the unique panel IDs in
// file order. Rows without a panel ID are skipped; a file yielding no
// IDs at all is an error.
func PanelIDs(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1 // validated per row below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("tsv", path, err)
	}

	var ids []int
	seen := make(map[int]bool)
	for i, record := range records {
		if len(record) < columnCount {
			return nil, errors.NewParseError("tsv", path,
				"row "+strconv.Itoa(i+1)+" has fewer than 4 columns", nil)
		}

		raw := strings.TrimSpace(record[columnCount-1])
		if raw == "" {
			continue
		}

		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.NewParseError("tsv", path,
				"row "+strconv.Itoa(i+1)+" has a non-numeric panel ID "+strconv.Quote(raw), err)
		}

		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, &errors.ValidationError{
			Field:   "panel_id",
			Message: "no panel IDs found in the genepanels file",
		}
	}

	logging.Info().
		Int("panel_ids", len(ids)).
		Str("path", path).
		Msg("Unique panel IDs to keep from genepanels file")

	return ids, nil
}

// ParseExtraIDs parses a comma-separated panel ID list supplied on the
// command line.
func ParseExtraIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, &errors.ValidationError{
				Field:   "extra_panels",
				Value:   part,
				Message: "panel IDs must be numeric",
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// KeepSet merges panel ID lists into the lookup set the extractor
// filters with.
func KeepSet(lists ...[]int) map[int]bool {
	keep := make(map[int]bool)
	for _, ids := range lists {
		for _, id := range ids {
			keep[id] = true
		}
	}
	return keep
}
