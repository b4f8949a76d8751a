package models

// SearchResult is the payload of GET /search/result. Found is false when no
// record survived any resolution tier; an empty result is a valid response,
// not an error.
//
// ImageURL and MapPath are best-effort enrichments: ImageURL falls back to a
// static placeholder when the external lookup fails, and MapPath is empty
// when no map could be rendered. Callers must treat an empty MapPath as an
// optional absence.
type SearchResult struct {
	Found    bool     `json:"found"`
	Species  *Species `json:"species,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	MapPath  string   `json:"map_path,omitempty"`
}
