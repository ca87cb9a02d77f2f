// Package policy is the single source of truth for what "verified" means.
//
// v1 rule: a claim is verified iff at least one evidence anchor satisfies all
// of: snippet_hash is non-empty, snippet_hash_verified is true, and the
// referenced path is non-empty. That is the hash tier. An existence tier
// (file-exists anchors) is tracked but inactive: it never verifies a claim
// in v1.
//
// Note the hash tier deliberately accepts anchors whose line lookup fell
// back to a placeholder snippet: "verified" means the hash was recomputed
// from this tree, not that the cited line exists. Splitting out an
// attempted-but-unresolved tier would change which claims and categories
// verify, so it is deferred to a future policy version.
//
// Every other component must call this package rather than reimplement the
// predicate.
package policy

import "pta/internal/model"

// Tier classifies an evidence anchor's verification strength.
type Tier string

const (
	// TierHash is the only tier that verifies a claim in v1.
	TierHash Tier = "EVIDENCE_VERIFIED_HASH"
	// TierExistence is reserved and never verifies a claim in v1.
	TierExistence Tier = "EVIDENCE_VERIFIED_EXISTENCE"
	// TierNone marks unverifiable evidence.
	TierNone Tier = ""
)

// EvidenceTier classifies a single anchor.
func EvidenceTier(a model.EvidenceAnchor) Tier {
	if a.SnippetHash != "" && a.SnippetHashVerified && a.Path != "" {
		return TierHash
	}
	if a.Kind == "file_exists" && a.Path != "" {
		return TierExistence
	}
	return TierNone
}

// IsVerifiedClaim reports whether the claim may enter the verified section
// of an evidence pack. This is the only legal admission test.
func IsVerifiedClaim(c model.Claim) bool {
	for _, e := range c.Evidence {
		if e.Anchor != nil && EvidenceTier(*e.Anchor) == TierHash {
			return true
		}
	}
	return false
}

// VerifiedEvidence returns the subset of the claim's anchors at the hash
// tier, in claim order.
func VerifiedEvidence(c model.Claim) []model.EvidenceAnchor {
	var out []model.EvidenceAnchor
	for _, e := range c.Evidence {
		if e.Anchor != nil && EvidenceTier(*e.Anchor) == TierHash {
			out = append(out, *e.Anchor)
		}
	}
	return out
}
