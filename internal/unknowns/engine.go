package unknowns

import (
	"fmt"
	"strings"

	"pta/internal/model"
	"pta/internal/policy"
)

// Engine evaluates the known-unknown categories against verified claims.
type Engine struct {
	rules       *Ruleset
	maxEvidence int
	maxAdvisory int
}

// NewEngine creates an engine over an immutable ruleset.
func NewEngine(rules *Ruleset, cfg model.AnalysisConfig) *Engine {
	maxEvidence := cfg.MaxEvidencePerCategory
	if maxEvidence <= 0 {
		maxEvidence = 3
	}
	maxAdvisory := cfg.MaxAdvisoryFiles
	if maxAdvisory <= 0 {
		maxAdvisory = 3
	}
	return &Engine{rules: rules, maxEvidence: maxEvidence, maxAdvisory: maxAdvisory}
}

// Evaluate assesses every category against the (already verified) claims.
// A category verifies only through a rule fire; when no rule fires, the file
// index is scanned solely to name candidate artifacts in an advisory note.
func (e *Engine) Evaluate(claims []model.Claim, fileIndex []string) []model.KnownUnknown {
	results := make([]model.KnownUnknown, 0, len(e.rules.Categories()))
	for _, cat := range e.rules.Categories() {
		results = append(results, e.evaluateCategory(cat, claims, fileIndex))
	}
	return results
}

func (e *Engine) evaluateCategory(cat Category, claims []model.Claim, fileIndex []string) model.KnownUnknown {
	result := model.KnownUnknown{
		Category:    cat.ID,
		Description: cat.Description,
		Status:      model.CategoryUnknown,
		ResolveWith: cat.ResolveWith,
	}

	matches := e.tryRules(cat.Rules, claims)
	if len(matches) > 0 {
		if len(matches) > e.maxEvidence {
			matches = matches[:e.maxEvidence]
		}
		result.Status = model.CategoryVerified
		artifacts := make([]string, 0, len(matches))
		for _, m := range matches {
			result.Evidence = append(result.Evidence, m.anchor)
			artifacts = append(artifacts, m.artifact)
		}
		result.Notes = "Verified via: " + strings.Join(artifacts, ", ")
		return result
	}

	if candidates := e.candidateFiles(cat.Rules, fileIndex); len(candidates) > 0 {
		result.Notes = fmt.Sprintf(
			"Candidate artifact files found (%s) but no claim with hash-verified evidence anchored to them",
			strings.Join(candidates, ", "))
	} else {
		result.Notes = "No deterministic evidence found in extraction artifacts"
	}
	return result
}

type ruleMatch struct {
	artifact string
	anchor   model.EvidenceAnchor
}

// tryRules tests every rule against every claim, in rule order. A rule fires
// at most once per claim: on the first hash-tier anchor whose path matches.
// The probe term, when present, must appear in the claim statement; this
// keeps unrelated claims from certifying a category by keyword coincidence.
func (e *Engine) tryRules(rules []Rule, claims []model.Claim) []ruleMatch {
	var matches []ruleMatch
	for _, rule := range rules {
		for _, claim := range claims {
			if rule.Probe != "" &&
				!strings.Contains(strings.ToLower(claim.Statement), strings.ToLower(rule.Probe)) {
				continue
			}
			for _, entry := range claim.Evidence {
				if entry.Anchor == nil || policy.EvidenceTier(*entry.Anchor) != policy.TierHash {
					continue
				}
				if rule.File.MatchString(entry.Anchor.Path) {
					matches = append(matches, ruleMatch{artifact: rule.Artifact, anchor: *entry.Anchor})
					break
				}
			}
		}
	}
	return matches
}

// candidateFiles lists indexed files matching any rule pattern. Advisory
// only: this scan never changes category status.
func (e *Engine) candidateFiles(rules []Rule, fileIndex []string) []string {
	var candidates []string
	seen := make(map[string]bool)
	for _, rule := range rules {
		for _, f := range fileIndex {
			if seen[f] || !rule.File.MatchString(f) {
				continue
			}
			seen[f] = true
			candidates = append(candidates, f)
			if len(candidates) >= e.maxAdvisory {
				return candidates
			}
		}
	}
	return candidates
}
