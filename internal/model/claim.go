package model

import "encoding/json"

// Claim is an externally produced assertion about the target system. Claims
// are untrusted input: the verifier normalizes their evidence and may demote
// their confidence, after which they are treated as read-only.
type Claim struct {
	ID         string        `json:"id"`
	Section    string        `json:"section"`
	Statement  string        `json:"statement"`
	Confidence float64       `json:"confidence"`
	Evidence   []EvidenceEntry `json:"evidence"`
	Status     ClaimStatus   `json:"status,omitempty"`
}

// ClaimStatus reflects the producer's own assessment, except "unverified"
// which only the verifier assigns.
type ClaimStatus string

const (
	StatusEvidenced  ClaimStatus = "evidenced"
	StatusInferred   ClaimStatus = "inferred"
	StatusUnknown    ClaimStatus = "unknown"
	StatusUnverified ClaimStatus = "unverified"
)

// ClaimSet is the claims artifact as emitted by the producer.
type ClaimSet struct {
	Claims []Claim `json:"claims"`
	Mode   string  `json:"mode,omitempty"`
	RunID  string  `json:"run_id,omitempty"`
}

// UnmarshalJSON tolerates a missing or non-array claims field: a degraded
// producer artifact yields an empty set, never an error surfaced downstream.
func (cs *ClaimSet) UnmarshalJSON(data []byte) error {
	type alias struct {
		Claims json.RawMessage `json:"claims"`
		Mode   string          `json:"mode"`
		RunID  string          `json:"run_id"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	cs.Mode = a.Mode
	cs.RunID = a.RunID
	cs.Claims = nil
	if len(a.Claims) == 0 {
		return nil
	}
	var claims []Claim
	if err := json.Unmarshal(a.Claims, &claims); err != nil {
		return nil
	}
	cs.Claims = claims
	return nil
}

// VerifiedClaim is the projection of a claim admitted into the evidence pack:
// only evidence at the verified hash tier survives.
type VerifiedClaim struct {
	ID         string           `json:"id"`
	Statement  string           `json:"statement"`
	Section    string           `json:"section"`
	Evidence   []EvidenceAnchor `json:"evidence"`
	Confidence float64          `json:"confidence"`
}
