package model

// CategoryStatus is the verification state of a known-unknown category.
// Transitions are monotone within a run: a category never moves back from
// VERIFIED to UNKNOWN.
type CategoryStatus string

const (
	CategoryUnknown  CategoryStatus = "UNKNOWN"
	CategoryVerified CategoryStatus = "VERIFIED"
)

// KnownUnknown is the per-run assessment of one operational-risk category.
type KnownUnknown struct {
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Status      CategoryStatus   `json:"status"`
	Evidence    []EvidenceAnchor `json:"evidence"`
	Notes       string           `json:"notes"`
	ResolveWith string           `json:"resolve_with"`
}
