package model

// Howto is the operator-manual artifact produced by the extraction step.
// Only its step lists and completeness data matter to this engine; every
// field is optional and a missing artifact is an empty Howto.
type Howto struct {
	Prereqs           []string      `json:"prereqs,omitempty"`
	InstallSteps      []HowtoStep   `json:"install_steps,omitempty"`
	Config            []HowtoStep   `json:"config,omitempty"`
	RunDev            []HowtoStep   `json:"run_dev,omitempty"`
	RunProd           []HowtoStep   `json:"run_prod,omitempty"`
	UsageExamples     []HowtoStep   `json:"usage_examples,omitempty"`
	VerificationSteps []HowtoStep   `json:"verification_steps,omitempty"`
	CommonFailures    []HowtoStep   `json:"common_failures,omitempty"`
	Unknowns          []HowtoUnknown `json:"unknowns,omitempty"`
	Completeness      *Completeness `json:"completeness,omitempty"`
}

// HowtoStep is one entry in a howto step list. Producers emit loosely shaped
// objects, so all fields are optional and evidence accepts any citation shape.
type HowtoStep struct {
	Step        string       `json:"step,omitempty"`
	Name        string       `json:"name,omitempty"`
	Command     string       `json:"command,omitempty"`
	Description string       `json:"description,omitempty"`
	Purpose     string       `json:"purpose,omitempty"`
	Symptom     string       `json:"symptom,omitempty"`
	Cause       string       `json:"cause,omitempty"`
	Fix         string       `json:"fix,omitempty"`
	Evidence    EvidenceList `json:"evidence,omitempty"`
}

// HowtoUnknown is a gap the extraction step reported about itself.
type HowtoUnknown struct {
	WhatIsMissing      string `json:"what_is_missing,omitempty"`
	WhyItMatters       string `json:"why_it_matters,omitempty"`
	WhatEvidenceNeeded string `json:"what_evidence_needed,omitempty"`
}

// StepLists returns the evidence-bearing step lists in a fixed order, for
// callers that normalize or sweep howto evidence.
func (h *Howto) StepLists() [][]HowtoStep {
	return [][]HowtoStep{
		h.InstallSteps,
		h.Config,
		h.RunDev,
		h.RunProd,
		h.VerificationSteps,
		h.CommonFailures,
	}
}

// Completeness is the 0-100 rubric score for the howto artifact, one of the
// three components of the composite completeness index.
type Completeness struct {
	Score   int      `json:"score"`
	Max     int      `json:"max"`
	Missing []string `json:"missing"`
	Notes   string   `json:"notes,omitempty"`
}

// Ratio returns score/max, or 0 for a degenerate rubric.
func (c *Completeness) Ratio() float64 {
	if c == nil || c.Max <= 0 {
		return 0
	}
	return float64(c.Score) / float64(c.Max)
}
