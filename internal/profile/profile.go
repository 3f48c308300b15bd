// Package profile turns loosely formatted profile/resume text into
// structured person records. Extraction is a pure, single-pass computation:
// classify each non-blank line, then fold the classified lines into records.
package profile

// Record is the extracted profile for one person.
type Record struct {
	Name     string   `json:"name"`
	Location string   `json:"location,omitempty"`
	Titles   []string `json:"titles"`
}

// Result is the aggregate returned to the caller: the ordered records plus
// deduplicated first-seen projections used by the presentation layer. The
// projections are computed from People, never maintained separately.
type Result struct {
	Names     []string `json:"names"`
	Locations []string `json:"locations"`
	Titles    []string `json:"titles"`
	People    []Record `json:"people"`
}
