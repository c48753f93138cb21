package panels

// GeneEntry is one normalized gene record within a panel. The identity
// key for duplicate detection is GeneSymbol. Optional fields are
// pointers; nil serializes as null.
type GeneEntry struct {
	Transcript              *string `json:"transcript" yaml:"transcript"`
	HGNCID                  *string `json:"hgnc_id" yaml:"hgnc_id"`
	ConfidenceLevel         *string `json:"confidence_level" yaml:"confidence_level"`
	ModeOfInheritance       *string `json:"mode_of_inheritance" yaml:"mode_of_inheritance"`
	ModeOfPathogenicity     *string `json:"mode_of_pathogenicity" yaml:"mode_of_pathogenicity"`
	Penetrance              *string `json:"penetrance" yaml:"penetrance"`
	GeneJustification       string  `json:"gene_justification" yaml:"gene_justification"`
	TranscriptJustification string  `json:"transcript_justification" yaml:"transcript_justification"`
	AliasSymbols            *string `json:"alias_symbols" yaml:"alias_symbols"`
	GeneSymbol              *string `json:"gene_symbol" yaml:"gene_symbol"`
}

// Identity returns the duplicate-detection key for the entry and
// whether it is set. Entries without an identity key are excluded from
// duplicate scanning but stay in the panel.
func (g GeneEntry) Identity() (string, bool) {
	if g.GeneSymbol == nil || *g.GeneSymbol == "" {
		return "", false
	}
	return *g.GeneSymbol, true
}

// Clone returns a deep copy of the entry.
func (g GeneEntry) Clone() GeneEntry {
	out := g
	out.Transcript = cloneString(g.Transcript)
	out.HGNCID = cloneString(g.HGNCID)
	out.ConfidenceLevel = cloneString(g.ConfidenceLevel)
	out.ModeOfInheritance = cloneString(g.ModeOfInheritance)
	out.ModeOfPathogenicity = cloneString(g.ModeOfPathogenicity)
	out.Penetrance = cloneString(g.Penetrance)
	out.AliasSymbols = cloneString(g.AliasSymbols)
	out.GeneSymbol = cloneString(g.GeneSymbol)
	return out
}

// Equal reports whether two entries hold the same values field for
// field, treating nil and the empty string as distinct.
func (g GeneEntry) Equal(other GeneEntry) bool {
	return stringEqual(g.Transcript, other.Transcript) &&
		stringEqual(g.HGNCID, other.HGNCID) &&
		stringEqual(g.ConfidenceLevel, other.ConfidenceLevel) &&
		stringEqual(g.ModeOfInheritance, other.ModeOfInheritance) &&
		stringEqual(g.ModeOfPathogenicity, other.ModeOfPathogenicity) &&
		stringEqual(g.Penetrance, other.Penetrance) &&
		g.GeneJustification == other.GeneJustification &&
		g.TranscriptJustification == other.TranscriptJustification &&
		stringEqual(g.AliasSymbols, other.AliasSymbols) &&
		stringEqual(g.GeneSymbol, other.GeneSymbol)
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func stringEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func intEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
