// Package panels defines the normalized panel records the paneldump
// pipeline operates on: a Panel with ordered gene and region entries,
// identity-key helpers for duplicate detection, and explicit field
// accessor tables for conflict comparison.
//
// Optional entry fields are pointers so that an unset value serializes
// as an explicit null rather than being omitted. Entry lists keep their
// source order throughout the pipeline.
package panels

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SourcePanelApp is the source label for records normalized from the
// PanelApp API, also used for justification fields.
const SourcePanelApp = "PanelApp"

// ModeOther is the sentinel mode of inheritance assigned when duplicate
// entries agree on everything except their inheritance mode. PanelApp
// itself uses "Other" for mixed-inheritance superpanel entries.
const ModeOther = "Other"

// Panel represents one signed-off clinical panel with its gene and
// region entries. Name is the panel's identity and is unique per run.
type Panel struct {
	Source     string        `json:"panel_source" yaml:"panel_source"`
	Name       string        `json:"panel_name" yaml:"panel_name"`
	ExternalID int           `json:"external_id" yaml:"external_id"`
	Version    string        `json:"panel_version" yaml:"panel_version"`
	Genes      []GeneEntry   `json:"genes" yaml:"genes"`
	Regions    []RegionEntry `json:"regions" yaml:"regions"`
}

// Clone returns a deep copy of the panel.
func (p Panel) Clone() Panel {
	out := p
	out.Genes = make([]GeneEntry, len(p.Genes))
	for i, g := range p.Genes {
		out.Genes[i] = g.Clone()
	}
	out.Regions = make([]RegionEntry, len(p.Regions))
	for i, r := range p.Regions {
		out.Regions[i] = r.Clone()
	}
	return out
}

// Panels is an ordered list of panels as produced by the extractor and
// consumed by the dedupe pipeline.
type Panels []Panel

// Names returns the panel names in collated order for human-facing
// summaries. Pipeline order is never changed by this.
func (ps Panels) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	c := collate.New(language.English, collate.IgnoreCase)
	c.SortStrings(names)
	return names
}

// FilterByExternalID returns the panels whose external ID is in keep,
// preserving order. An empty keep set returns the input unchanged.
func (ps Panels) FilterByExternalID(keep map[int]bool) Panels {
	if len(keep) == 0 {
		return ps
	}
	out := make(Panels, 0, len(ps))
	for _, p := range ps {
		if keep[p.ExternalID] {
			out = append(out, p)
		}
	}
	return out
}

// GeneCount returns the total gene entry count across all panels.
func (ps Panels) GeneCount() int {
	n := 0
	for _, p := range ps {
		n += len(p.Genes)
	}
	return n
}

// RegionCount returns the total region entry count across all panels.
func (ps Panels) RegionCount() int {
	n := 0
	for _, p := range ps {
		n += len(p.Regions)
	}
	return n
}
