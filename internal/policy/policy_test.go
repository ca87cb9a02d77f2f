package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pta/internal/model"
)

func TestEvidenceTier_FieldCombinations(t *testing.T) {
	// The hash tier requires all three of: non-empty hash, verified flag,
	// non-empty path. Exhaust the combinations.
	tests := []struct {
		name     string
		hash     string
		verified bool
		path     string
		want     Tier
	}{
		{"all present", "abc123def456", true, "infra/main.tf", TierHash},
		{"missing hash", "", true, "infra/main.tf", TierNone},
		{"not verified", "abc123def456", false, "infra/main.tf", TierNone},
		{"missing path", "abc123def456", true, "", TierNone},
		{"only hash", "abc123def456", false, "", TierNone},
		{"only verified", "", true, "", TierNone},
		{"only path", "", false, "infra/main.tf", TierNone},
		{"nothing", "", false, "", TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := model.EvidenceAnchor{
				SnippetHash:         tt.hash,
				SnippetHashVerified: tt.verified,
				Path:                tt.path,
			}
			assert.Equal(t, tt.want, EvidenceTier(a))
		})
	}
}

func TestEvidenceTier_ExistenceReserved(t *testing.T) {
	a := model.EvidenceAnchor{Path: "Dockerfile", Kind: "file_exists"}
	assert.Equal(t, TierExistence, EvidenceTier(a))

	// The existence tier never verifies a claim in v1.
	c := model.Claim{Evidence: []model.EvidenceEntry{{Anchor: &a}}}
	assert.False(t, IsVerifiedClaim(c))
}

func TestIsVerifiedClaim(t *testing.T) {
	verified := model.EvidenceAnchor{
		Path: "infra/main.tf", SnippetHash: "abc123def456", SnippetHashVerified: true,
	}
	unverified := model.EvidenceAnchor{Path: "infra/main.tf", SnippetHash: "abc123def456"}

	assert.False(t, IsVerifiedClaim(model.Claim{}), "no evidence")
	assert.False(t, IsVerifiedClaim(model.Claim{
		Evidence: []model.EvidenceEntry{{Raw: "infra/main.tf:12"}},
	}), "raw citation text never verifies")
	assert.False(t, IsVerifiedClaim(model.Claim{
		Evidence: []model.EvidenceEntry{{Anchor: &unverified}},
	}))
	assert.True(t, IsVerifiedClaim(model.Claim{
		Evidence: []model.EvidenceEntry{{Anchor: &unverified}, {Anchor: &verified}},
	}), "one hash-tier anchor suffices")
}

func TestVerifiedEvidence_FiltersToHashTier(t *testing.T) {
	verified := model.EvidenceAnchor{
		Path: "a.tf", SnippetHash: "abc123def456", SnippetHashVerified: true,
	}
	unverified := model.EvidenceAnchor{Path: "b.tf", SnippetHash: "abc123def456"}

	c := model.Claim{Evidence: []model.EvidenceEntry{
		{Anchor: &unverified},
		{Anchor: &verified},
		{Raw: "c.tf:1"},
	}}

	got := VerifiedEvidence(c)
	assert.Len(t, got, 1)
	assert.Equal(t, "a.tf", got[0].Path)
}
