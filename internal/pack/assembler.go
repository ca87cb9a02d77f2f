// Package pack assembles the outputs of one analysis run into the canonical
// versioned evidence pack. Build is a pure function of its inputs: it reads
// but never mutates the artifacts, and the pack it returns is immutable by
// convention from then on.
package pack

import (
	"sort"
	"time"

	"pta/internal/model"
	"pta/internal/policy"
)

// BuildInput carries the materialized producer artifacts and engine outputs
// for one run.
type BuildInput struct {
	Howto     *model.Howto
	Claims    *model.ClaimSet
	Coverage  *model.Coverage
	FileIndex []string
	Unknowns  []model.KnownUnknown
	Profile   *model.ExecutionProfile
	Mode      string
	RunID     string
	Now       time.Time // zero means time.Now
}

// Build assembles the evidence pack. Admission into the verified sections is
// decided solely by the verification policy; sections are the producer's
// opaque labels, grouped as-is with no reclassification.
func Build(in BuildInput) *model.EvidencePack {
	generatedAt := in.Now
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	verified := verifiedClaims(in.Claims)

	p := &model.EvidencePack{
		Version:     model.EvidencePackVersion,
		GeneratedAt: generatedAt.UTC(),
		Mode:        in.Mode,
		RunID:       in.RunID,
		Verified:    groupBySection(verified),
		Structural:  buildStructural(verified, in.Howto, in.FileIndex),
		Unknowns:    in.Unknowns,
		Metrics:     buildMetrics(in.Claims, len(verified), in.Unknowns, in.Howto),
		Hashes:      model.HashIndex{Snippets: collectHashes(verified, in.Howto)},
		Summary:     buildSummary(in, verified),
	}

	if in.Profile != nil {
		p.Profile = &model.ProfileSummary{
			RunCommand: in.Profile.RunCommand,
			Language:   in.Profile.Language,
		}
		if in.Profile.PortBinding != nil {
			p.Profile.Port = in.Profile.PortBinding.Port
		}
	}

	return p
}

// verifiedClaims projects the claims admitted by the policy predicate, each
// carrying only its hash-tier evidence.
func verifiedClaims(cs *model.ClaimSet) []model.VerifiedClaim {
	if cs == nil {
		return nil
	}
	var out []model.VerifiedClaim
	for _, c := range cs.Claims {
		if !policy.IsVerifiedClaim(c) {
			continue
		}
		out = append(out, model.VerifiedClaim{
			ID:         c.ID,
			Statement:  c.Statement,
			Section:    c.Section,
			Evidence:   policy.VerifiedEvidence(c),
			Confidence: c.Confidence,
		})
	}
	return out
}

// groupBySection groups verified claims by their producer-assigned section
// label, preserving first-seen section order and claim order within each.
func groupBySection(verified []model.VerifiedClaim) []model.SectionGroup {
	index := make(map[string]int)
	var groups []model.SectionGroup
	for _, c := range verified {
		section := c.Section
		if section == "" {
			section = "uncategorized"
		}
		i, ok := index[section]
		if !ok {
			i = len(groups)
			index[section] = i
			groups = append(groups, model.SectionGroup{Section: section})
		}
		groups[i].Claims = append(groups[i].Claims, c)
	}
	return groups
}

// collectHashes gathers every distinct snippet hash referenced by a verified
// claim or a howto step, sorted for stable audit diffs.
func collectHashes(verified []model.VerifiedClaim, howto *model.Howto) []string {
	seen := make(map[string]bool)
	for _, c := range verified {
		for _, ev := range c.Evidence {
			if ev.SnippetHash != "" {
				seen[ev.SnippetHash] = true
			}
		}
	}
	if howto != nil {
		for _, steps := range howto.StepLists() {
			for _, step := range steps {
				for _, a := range step.Evidence.Anchors() {
					if a.SnippetHash != "" {
						seen[a.SnippetHash] = true
					}
				}
			}
		}
	}

	hashes := make([]string, 0, len(seen))
	for h := range seen {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)
	return hashes
}

func buildSummary(in BuildInput, verified []model.VerifiedClaim) model.Summary {
	s := model.Summary{
		TotalFiles:     len(in.FileIndex),
		VerifiedClaims: len(verified),
	}
	if in.Claims != nil {
		s.TotalClaims = len(in.Claims.Claims)
	}
	for _, u := range in.Unknowns {
		if u.Status == model.CategoryVerified {
			s.VerifiedCategories++
		} else {
			s.UnknownCategories++
		}
	}
	return s
}
