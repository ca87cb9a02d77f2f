package pack

import (
	"math"

	"pta/internal/model"
)

// buildMetrics computes the two run metrics. Each records its formula so the
// score stays explainable without rerunning the engine.
func buildMetrics(claims *model.ClaimSet, verifiedCount int, unknowns []model.KnownUnknown, howto *model.Howto) model.Metrics {
	totalClaims := 0
	if claims != nil {
		totalClaims = len(claims.Claims)
	}
	claimsVisibility := 0.0
	if totalClaims > 0 {
		claimsVisibility = float64(verifiedCount) / float64(totalClaims)
	}

	unknownsCoverage := 0.0
	if len(unknowns) > 0 {
		verified := 0
		for _, u := range unknowns {
			if u.Status == model.CategoryVerified {
				verified++
			}
		}
		unknownsCoverage = float64(verified) / float64(len(unknowns))
	}

	howtoCompleteness := 0.0
	if howto != nil {
		howtoCompleteness = howto.Completeness.Ratio()
	}

	composite := round4((claimsVisibility + unknownsCoverage + howtoCompleteness) / 3.0)

	return model.Metrics{
		Completeness: model.Metric{
			Score:   composite,
			Label:   "Reporting Completeness Index",
			Formula: "average(claims_coverage, unknowns_coverage, howto_completeness)",
			Components: []model.MetricComponent{
				{Name: "claims_coverage", Score: round4(claimsVisibility)},
				{Name: "unknowns_coverage", Score: round4(unknownsCoverage)},
				{Name: "howto_completeness", Score: round4(howtoCompleteness)},
			},
			Interpretation: "Composite completeness of analyzer reporting. NOT a security or structural visibility score.",
		},
		ClaimsVisibility: model.Metric{
			Score:          round4(claimsVisibility),
			Label:          "Claims Visibility",
			Formula:        "verified_claims / total_claims",
			Interpretation: "Percent of claims with deterministic hash-verified evidence.",
		},
	}
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
