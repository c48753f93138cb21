package panels

// Conflict comparison works over fixed accessor tables rather than
// reflection, so the set of compared fields is explicit and checked at
// compile time. Each accessor returns the field as a comparable value:
// nil for unset, otherwise the dereferenced string or int.

// GeneField names one comparable gene field and extracts its value.
type GeneField struct {
	Name string
	Get  func(GeneEntry) any
}

// RegionField names one comparable region field and extracts its value.
type RegionField struct {
	Name string
	Get  func(RegionEntry) any
}

// FieldModeOfInheritance is the single field a duplicate group may
// disagree on and still collapse to one entry.
const FieldModeOfInheritance = "mode_of_inheritance"

// GeneFields lists every comparable gene field. The identity key
// (gene_symbol) is deliberately absent: entries in a duplicate group
// share it by construction.
var GeneFields = []GeneField{
	{Name: "transcript", Get: func(g GeneEntry) any { return stringValue(g.Transcript) }},
	{Name: "hgnc_id", Get: func(g GeneEntry) any { return stringValue(g.HGNCID) }},
	{Name: "confidence_level", Get: func(g GeneEntry) any { return stringValue(g.ConfidenceLevel) }},
	{Name: FieldModeOfInheritance, Get: func(g GeneEntry) any { return stringValue(g.ModeOfInheritance) }},
	{Name: "mode_of_pathogenicity", Get: func(g GeneEntry) any { return stringValue(g.ModeOfPathogenicity) }},
	{Name: "penetrance", Get: func(g GeneEntry) any { return stringValue(g.Penetrance) }},
	{Name: "gene_justification", Get: func(g GeneEntry) any { return g.GeneJustification }},
	{Name: "transcript_justification", Get: func(g GeneEntry) any { return g.TranscriptJustification }},
	{Name: "alias_symbols", Get: func(g GeneEntry) any { return stringValue(g.AliasSymbols) }},
}

// RegionFields lists every comparable region field. The identity key
// (name) is deliberately absent.
var RegionFields = []RegionField{
	{Name: "confidence_level", Get: func(r RegionEntry) any { return stringValue(r.ConfidenceLevel) }},
	{Name: FieldModeOfInheritance, Get: func(r RegionEntry) any { return stringValue(r.ModeOfInheritance) }},
	{Name: "mode_of_pathogenicity", Get: func(r RegionEntry) any { return stringValue(r.ModeOfPathogenicity) }},
	{Name: "penetrance", Get: func(r RegionEntry) any { return stringValue(r.Penetrance) }},
	{Name: "chrom", Get: func(r RegionEntry) any { return stringValue(r.Chrom) }},
	{Name: "start_37", Get: func(r RegionEntry) any { return intValue(r.Start37) }},
	{Name: "end_37", Get: func(r RegionEntry) any { return intValue(r.End37) }},
	{Name: "start_38", Get: func(r RegionEntry) any { return intValue(r.Start38) }},
	{Name: "end_38", Get: func(r RegionEntry) any { return intValue(r.End38) }},
	{Name: "type", Get: func(r RegionEntry) any { return r.Type }},
	{Name: "variant_type", Get: func(r RegionEntry) any { return stringValue(r.VariantType) }},
	{Name: "required_overlap", Get: func(r RegionEntry) any { return intValue(r.RequiredOverlap) }},
	{Name: "haploinsufficiency", Get: func(r RegionEntry) any { return stringValue(r.Haploinsufficiency) }},
	{Name: "triplosensitivity", Get: func(r RegionEntry) any { return stringValue(r.Triplosensitivity) }},
	{Name: "justification", Get: func(r RegionEntry) any { return r.Justification }},
}

func stringValue(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func intValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
