package panels

// RegionTypeCNV is the only region type the extractor produces.
const RegionTypeCNV = "CNV"

// RegionEntry is one normalized genomic-region record within a panel.
// The identity key for duplicate detection is Name. Coordinates are
// kept for both GRCh37 and GRCh38; a build the panel does not define
// stays nil and serializes as null.
type RegionEntry struct {
	ConfidenceLevel     *string `json:"confidence_level" yaml:"confidence_level"`
	ModeOfInheritance   *string `json:"mode_of_inheritance" yaml:"mode_of_inheritance"`
	ModeOfPathogenicity *string `json:"mode_of_pathogenicity" yaml:"mode_of_pathogenicity"`
	Penetrance          *string `json:"penetrance" yaml:"penetrance"`
	Name                *string `json:"name" yaml:"name"`
	Chrom               *string `json:"chrom" yaml:"chrom"`
	Start37             *int    `json:"start_37" yaml:"start_37"`
	End37               *int    `json:"end_37" yaml:"end_37"`
	Start38             *int    `json:"start_38" yaml:"start_38"`
	End38               *int    `json:"end_38" yaml:"end_38"`
	Type                string  `json:"type" yaml:"type"`
	VariantType         *string `json:"variant_type" yaml:"variant_type"`
	RequiredOverlap     *int    `json:"required_overlap" yaml:"required_overlap"`
	Haploinsufficiency  *string `json:"haploinsufficiency" yaml:"haploinsufficiency"`
	Triplosensitivity   *string `json:"triplosensitivity" yaml:"triplosensitivity"`
	Justification       string  `json:"justification" yaml:"justification"`
}

// Identity returns the duplicate-detection key for the entry and
// whether it is set.
func (r RegionEntry) Identity() (string, bool) {
	if r.Name == nil || *r.Name == "" {
		return "", false
	}
	return *r.Name, true
}

// Clone returns a deep copy of the entry.
func (r RegionEntry) Clone() RegionEntry {
	out := r
	out.ConfidenceLevel = cloneString(r.ConfidenceLevel)
	out.ModeOfInheritance = cloneString(r.ModeOfInheritance)
	out.ModeOfPathogenicity = cloneString(r.ModeOfPathogenicity)
	out.Penetrance = cloneString(r.Penetrance)
	out.Name = cloneString(r.Name)
	out.Chrom = cloneString(r.Chrom)
	out.Start37 = cloneInt(r.Start37)
	out.End37 = cloneInt(r.End37)
	out.Start38 = cloneInt(r.Start38)
	out.End38 = cloneInt(r.End38)
	out.VariantType = cloneString(r.VariantType)
	out.RequiredOverlap = cloneInt(r.RequiredOverlap)
	out.Haploinsufficiency = cloneString(r.Haploinsufficiency)
	out.Triplosensitivity = cloneString(r.Triplosensitivity)
	return out
}

// Equal reports whether two entries hold the same values field for
// field, treating nil and the zero value as distinct.
func (r RegionEntry) Equal(other RegionEntry) bool {
	return stringEqual(r.ConfidenceLevel, other.ConfidenceLevel) &&
		stringEqual(r.ModeOfInheritance, other.ModeOfInheritance) &&
		stringEqual(r.ModeOfPathogenicity, other.ModeOfPathogenicity) &&
		stringEqual(r.Penetrance, other.Penetrance) &&
		stringEqual(r.Name, other.Name) &&
		stringEqual(r.Chrom, other.Chrom) &&
		intEqual(r.Start37, other.Start37) &&
		intEqual(r.End37, other.End37) &&
		intEqual(r.Start38, other.Start38) &&
		intEqual(r.End38, other.End38) &&
		r.Type == other.Type &&
		stringEqual(r.VariantType, other.VariantType) &&
		intEqual(r.RequiredOverlap, other.RequiredOverlap) &&
		stringEqual(r.Haploinsufficiency, other.Haploinsufficiency) &&
		stringEqual(r.Triplosensitivity, other.Triplosensitivity) &&
		r.Justification == other.Justification
}
