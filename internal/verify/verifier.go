// Package verify re-validates producer claims against the checked-out tree.
// It is the only place a claim is mutated and the only place confidence is
// revised, always downward.
package verify

import (
	"go.uber.org/zap"

	"pta/internal/evidence"
	"pta/internal/model"
	"pta/internal/policy"
)

// MaxUnverifiedConfidence is the ceiling applied to claims with no
// hash-verified evidence.
const MaxUnverifiedConfidence = 0.20

// Verifier normalizes claim evidence and recomputes snippet hashes from
// ground truth.
type Verifier struct {
	reader *evidence.Reader
	log    *zap.Logger
}

// NewVerifier creates a verifier over the given ground-truth reader.
func NewVerifier(reader *evidence.Reader, log *zap.Logger) *Verifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Verifier{reader: reader, log: log}
}

// VerifyClaims verifies every claim in the set in place. For each evidence
// entry:
//
//   - a loose citation string is parsed and anchored; unparsable strings stay
//     on the claim verbatim but never count toward verification
//   - a structured anchor has its snippet re-read and its hash recomputed,
//     overwriting whatever the producer supplied
//
// A claim left without hash-tier evidence has its confidence clamped and its
// status set to unverified.
func (v *Verifier) VerifyClaims(cs *model.ClaimSet) {
	if cs == nil {
		return
	}
	for i := range cs.Claims {
		v.verifyClaim(&cs.Claims[i])
	}
}

func (v *Verifier) verifyClaim(c *model.Claim) {
	for i := range c.Evidence {
		entry := &c.Evidence[i]
		if entry.Anchor == nil {
			// Loose citation text. A parsed citation becomes a fresh anchor;
			// it is not marked hash-verified, because the producer never
			// pointed at a concrete anchor to check against.
			if anchor := v.reader.Resolve(entry.Raw); anchor != nil {
				entry.Anchor = anchor
				entry.Raw = ""
			}
			continue
		}
		v.verifyAnchor(entry.Anchor)
	}

	if policy.IsVerifiedClaim(*c) {
		return
	}
	if c.Confidence > MaxUnverifiedConfidence {
		v.log.Debug("demoting claim without verified evidence",
			zap.String("claim", c.ID),
			zap.Float64("confidence", c.Confidence))
		c.Confidence = MaxUnverifiedConfidence
		c.Status = model.StatusUnverified
	}
}

// verifyAnchor recomputes the anchor's hash from the real source line. The
// producer-supplied hash is always discarded; a fabricated hash never
// survives this step.
func (v *Verifier) verifyAnchor(a *model.EvidenceAnchor) {
	if a.Path == "" || a.LineStart <= 0 {
		a.SnippetHashVerified = false
		return
	}
	snippet := v.reader.Line(a.Path, a.LineStart)
	a.SnippetHash = evidence.SnippetHash(snippet)
	a.SnippetHashVerified = true
	if a.LineEnd < a.LineStart {
		a.LineEnd = a.LineStart
	}
	if a.Display == "" {
		a.Display = evidence.Display(a.Path, a.LineStart, a.LineEnd)
	}
}
