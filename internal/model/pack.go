package model

import "time"

// EvidencePackVersion is the schema version of the pack document.
const EvidencePackVersion = "1.0"

// EvidencePack is the single canonical snapshot of one analysis run. It is
// built once by the assembler, persisted once, and is the only input to the
// report renderers. All collections are in deterministic order.
type EvidencePack struct {
	Version     string          `json:"evidence_pack_version"`
	GeneratedAt time.Time       `json:"generated_at"`
	Mode        string          `json:"mode"`
	RunID       string          `json:"run_id"`
	Verified    []SectionGroup  `json:"verified"`
	Structural  StructuralView  `json:"verified_structural"`
	Unknowns    []KnownUnknown  `json:"unknowns"`
	Metrics     Metrics         `json:"metrics"`
	Hashes      HashIndex       `json:"hashes"`
	Summary     Summary         `json:"summary"`
	Profile     *ProfileSummary `json:"execution_profile,omitempty"`
}

// SectionGroup holds the verified claims of one producer-assigned section,
// in first-seen order.
type SectionGroup struct {
	Section string          `json:"section"`
	Claims  []VerifiedClaim `json:"claims"`
}

// StructuralView is the best-effort surface-area classification of verified
// claims. It is advisory and must never be confused with the canonical
// section grouping in Verified.
type StructuralView struct {
	Routes       []VerifiedClaim `json:"routes"`
	Dependencies []VerifiedClaim `json:"dependencies"`
	Schemas      []VerifiedClaim `json:"schemas"`
	Enforcement  []VerifiedClaim `json:"enforcement"`
}

// Metrics carries the two independently labeled run metrics.
type Metrics struct {
	Completeness     Metric `json:"completeness_index"`
	ClaimsVisibility Metric `json:"claims_visibility"`
}

// Metric is a scored measurement with its formula recorded for transparency.
type Metric struct {
	Score          float64           `json:"score"`
	Label          string            `json:"label"`
	Formula        string            `json:"formula"`
	Components     []MetricComponent `json:"components,omitempty"`
	Interpretation string            `json:"interpretation"`
}

// MetricComponent is one named input to a composite metric.
type MetricComponent struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// HashIndex is the sorted set of distinct snippet hashes referenced by
// verified claims and howto steps, for external tamper-evidence use.
type HashIndex struct {
	Snippets []string `json:"snippets"`
}

// Summary holds the headline counts of the run.
type Summary struct {
	TotalFiles         int `json:"total_files"`
	TotalClaims        int `json:"total_claims"`
	VerifiedClaims     int `json:"verified_claims"`
	UnknownCategories  int `json:"unknown_categories"`
	VerifiedCategories int `json:"verified_categories"`
}

// ProfileSummary is the condensed execution profile carried in the pack.
type ProfileSummary struct {
	RunCommand string `json:"run_command,omitempty"`
	Language   string `json:"language,omitempty"`
	Port       int    `json:"port,omitempty"`
}
