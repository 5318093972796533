package models

// PersonItem is the person result shape (spec.md §3 "PersonItem").
type PersonItem struct {
	Item

	KnownForDepartment string   `json:"known_for_department,omitempty"`
	Birthday           string   `json:"birthday,omitempty"`
	Deathday           string   `json:"deathday,omitempty"`
	PlaceOfBirth       string   `json:"place_of_birth,omitempty"`
	Age                int      `json:"age,omitempty"`
	IsDeceased         bool     `json:"is_deceased"`
	KnownForTitles     []string `json:"known_for_titles,omitempty"`

	// AlsoKnownAs is pipe-separated alternate names, matching the stored
	// document shape (spec.md §3); callers that need a slice split on "|".
	AlsoKnownAs string `json:"also_known_as,omitempty"`
}
