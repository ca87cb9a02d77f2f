package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pta/internal/evidence"
	"pta/internal/model"
)

// NormalizeHowto resolves loose citation strings in the howto step lists
// into anchors, at the system boundary, so no downstream code branches on
// evidence shape again. Unparsable citations stay verbatim.
func NormalizeHowto(h *model.Howto, r *evidence.Reader) {
	if h == nil {
		return
	}
	normalizeSteps(h.InstallSteps, r)
	normalizeSteps(h.Config, r)
	normalizeSteps(h.RunDev, r)
	normalizeSteps(h.RunProd, r)
	normalizeSteps(h.VerificationSteps, r)
	normalizeSteps(h.CommonFailures, r)
}

// NormalizeProfile resolves citation strings in the execution profile's
// evidence lists.
func NormalizeProfile(p *model.ExecutionProfile, r *evidence.Reader) {
	if p == nil {
		return
	}
	if p.PortBinding != nil {
		normalizeList(p.PortBinding.Evidence, r)
	}
	for i := range p.RequiredSecrets {
		normalizeList(p.RequiredSecrets[i].ReferencedIn, r)
	}
	if p.Observability != nil {
		normalizeList(p.Observability.Evidence, r)
	}
}

func normalizeSteps(steps []model.HowtoStep, r *evidence.Reader) {
	for i := range steps {
		normalizeList(steps[i].Evidence, r)
	}
}

func normalizeList(list model.EvidenceList, r *evidence.Reader) {
	for i := range list {
		if list[i].Anchor != nil {
			continue
		}
		if anchor := r.Resolve(list[i].Raw); anchor != nil {
			list[i].Anchor = anchor
			list[i].Raw = ""
		}
	}
}

// Rubric weights for the howto completeness score.
const (
	completenessMax      = 100
	weightRunDev         = 20
	weightVerification   = 20
	weightConfig         = 15
	weightPortEvidence   = 15
	weightUsageExamples  = 15
	weightInstall        = 15
)

// Completeness scores the howto artifact on the fixed 0-100 rubric. The
// score feeds the composite completeness index; it measures reporting
// coverage, not correctness.
func Completeness(h *model.Howto, profile *model.ExecutionProfile, sourceRoot string) model.Completeness {
	c := model.Completeness{Max: completenessMax}
	if h == nil {
		h = &model.Howto{}
	}

	score := func(ok bool, weight int, missingLabel string) {
		if ok {
			c.Score += weight
		} else {
			c.Missing = append(c.Missing, missingLabel)
		}
	}

	score(hasEvidence(h.RunDev), weightRunDev, "run_dev")
	score(hasEvidence(h.Config), weightConfig, "config_with_evidence")
	score(hasPortEvidence(profile), weightPortEvidence, "port_behavior")
	score(hasEvidence(h.VerificationSteps), weightVerification, "verification_steps")
	score(len(h.UsageExamples) > 0, weightUsageExamples, "usage_examples")
	score(hasEvidence(h.InstallSteps), weightInstall, "install_steps")

	var notes []string
	if sourceRoot != "" {
		if _, err := os.Stat(filepath.Join(sourceRoot, "Dockerfile")); err != nil {
			notes = append(notes, "No Dockerfile found")
		}
	}
	if n := len(h.Unknowns); n > 0 {
		notes = append(notes, fmt.Sprintf("%d unknown(s) reported", n))
	}
	c.Notes = strings.Join(notes, "; ")

	return c
}

func hasEvidence(steps []model.HowtoStep) bool {
	for _, s := range steps {
		if len(s.Evidence) > 0 {
			return true
		}
	}
	return false
}

func hasPortEvidence(profile *model.ExecutionProfile) bool {
	return profile != nil && profile.PortBinding != nil && len(profile.PortBinding.Evidence) > 0
}
