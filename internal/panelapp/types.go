package panelapp

// Raw response structures for the PanelApp REST API. Only the fields
// the extractor consumes are declared.

// page is one page of the paginated signed-off panels listing.
type page struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []panelDetail `json:"results"`
}

// panelDetail is a single panel as returned by the API, with its gene
// and region lists.
type panelDetail struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Version string       `json:"version"`
	Genes   []rawGene    `json:"genes"`
	Regions []rawRegion  `json:"regions"`
	Types   []panelType  `json:"types"`
	Stats   *panelCounts `json:"stats"`
}

type panelType struct {
	Name string `json:"name"`
}

type panelCounts struct {
	NumberOfGenes   int `json:"number_of_genes"`
	NumberOfRegions int `json:"number_of_regions"`
}

// rawGene is one gene record on a panel.
type rawGene struct {
	GeneData            geneData `json:"gene_data"`
	ConfidenceLevel     string   `json:"confidence_level"`
	ModeOfInheritance   string   `json:"mode_of_inheritance"`
	ModeOfPathogenicity string   `json:"mode_of_pathogenicity"`
	Penetrance          string   `json:"penetrance"`
	Transcript          []string `json:"transcript"`
}

// geneData is the nested gene identity block.
type geneData struct {
	HGNCID     string   `json:"hgnc_id"`
	GeneSymbol string   `json:"gene_symbol"`
	Alias      []string `json:"alias"`
}

// rawRegion is one region record on a panel. Coordinate pairs are
// [start, end] arrays, null when the build is not annotated.
type rawRegion struct {
	ConfidenceLevel     string  `json:"confidence_level"`
	ModeOfInheritance   string  `json:"mode_of_inheritance"`
	ModeOfPathogenicity string  `json:"mode_of_pathogenicity"`
	Penetrance          string  `json:"penetrance"`
	VerboseName         string  `json:"verbose_name"`
	Chromosome          string  `json:"chromosome"`
	GRCh37Coordinates   []int   `json:"grch37_coordinates"`
	GRCh38Coordinates   []int   `json:"grch38_coordinates"`
	TypeOfVariants      string  `json:"type_of_variants"`
	RequiredOverlap     *int    `json:"required_overlap_percentage"`
	Haploinsufficiency  string  `json:"haploinsufficiency_score"`
	Triplosensitivity   string  `json:"triplosensitivity_score"`
}
