package models

import "time"

// Species is a catalog entry describing an endangered animal species:
// taxonomic chain, conservation assessment, and geographic/ecological
// descriptors.
//
// The geographic fields (States, Region, Biome, HydrographicBasin and the
// protected-area fields) are deliberately free text: submitters are not
// constrained to a controlled vocabulary, and a single field may contain
// zero, one, or many comma/pipe-delimited tokens naming either states or
// whole macro-regions. Downstream consumers resolve the tokens; the store
// never interprets them.
type Species struct {
	// SpeciesID is the internal unique identifier of the record.
	SpeciesID int64 `json:"id"`

	// Taxonomic chain, kingdom down to genus.
	Kingdom string `json:"kingdom"`
	Phylum  string `json:"phylum"`
	Class   string `json:"class"`
	Order   string `json:"order"`
	Family  string `json:"family"`
	Genus   string `json:"genus"`

	// ScientificName is the primary search key. Unique across the catalog.
	ScientificName string `json:"scientific_name"`

	// PreviousScientificName records an earlier accepted name, if any.
	PreviousScientificName string `json:"previous_scientific_name,omitempty"`

	// Author is the author citation of the scientific name.
	Author string `json:"author"`

	// CommonName is the vernacular name (may list several variants).
	CommonName string `json:"common_name"`

	// Group is the coarse taxonomic group label (e.g. birds, mammals).
	Group string `json:"group"`

	// AssessmentPeriod is the month/year of the conservation assessment,
	// kept as free text exactly as assessed.
	AssessmentPeriod string `json:"assessment_period"`

	// Category is the conservation category (e.g. EN, VU, CR).
	Category string `json:"category"`

	// PossiblyExtinct flags species assessed as possibly extinct.
	PossiblyExtinct bool `json:"possibly_extinct"`

	// Criteria is the assessment criteria text.
	Criteria string `json:"criteria"`

	// Justification is the assessment justification text.
	Justification string `json:"justification"`

	// EndemicToBrazil flags species occurring only in Brazil.
	EndemicToBrazil bool `json:"endemic_to_brazil"`

	// OnNationalList flags membership in the official national list.
	OnNationalList bool `json:"on_national_list"`

	// Geographic and ecological descriptors. Free text, possibly
	// delimiter-separated multi-value.
	States               string `json:"states"`
	Region               string `json:"region"`
	Biome                string `json:"biome"`
	HydrographicBasin    string `json:"hydrographic_basin"`
	FederalProtectedArea string `json:"federal_protected_area"`
	StateProtectedArea   string `json:"state_protected_area"`
	PrivateReserve       string `json:"private_reserve"`

	// Migratory flags migratory species.
	Migratory bool `json:"migratory"`

	// PopulationTrend describes the assessed population trend.
	PopulationTrend string `json:"population_trend"`

	// Threats, Uses, ConservationActions, ActionPlan and TreatyLists carry
	// the remaining assessment narrative fields.
	Threats             string `json:"threats"`
	Uses                string `json:"uses"`
	ConservationActions string `json:"conservation_actions"`
	ActionPlan          string `json:"action_plan"`
	TreatyLists         string `json:"treaty_lists"`

	// SubmitterID references the researcher or institution account that
	// authored the record. Always set; a species never exists without a
	// submitter.
	SubmitterID int64 `json:"submitter_id"`

	// CreatedAt is the timestamp when the record was submitted.
	CreatedAt time.Time `json:"created_at"`
}

// Suggestion is a single autocomplete entry: the common and scientific name
// of one catalog record.
type Suggestion struct {
	Common     string `json:"common"`
	Scientific string `json:"scientific"`
}

// SuggestionMode selects which name field autocomplete matches against.
type SuggestionMode string

const (
	// SuggestByCommonName matches the query against common names.
	SuggestByCommonName SuggestionMode = "common"

	// SuggestByScientificName matches the query against scientific names.
	SuggestByScientificName SuggestionMode = "scientific"
)

// Valid reports whether m is a recognised suggestion mode.
func (m SuggestionMode) Valid() bool {
	return m == SuggestByCommonName || m == SuggestByScientificName
}
