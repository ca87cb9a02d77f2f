package unknowns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pta/internal/model"
)

func newEngine() *Engine {
	return NewEngine(DefaultRuleset(), model.DefaultConfig().Analysis)
}

func verifiedAnchor(path string) *model.EvidenceAnchor {
	return &model.EvidenceAnchor{
		Path:                path,
		LineStart:           12,
		LineEnd:             12,
		SnippetHash:         "abc123def456",
		Display:             path + ":12",
		SnippetHashVerified: true,
	}
}

func findCategory(t *testing.T, results []model.KnownUnknown, id string) model.KnownUnknown {
	t.Helper()
	for _, u := range results {
		if u.Category == id {
			return u
		}
	}
	t.Fatalf("category %s not in results", id)
	return model.KnownUnknown{}
}

func TestEvaluate_AllUnknownOnEmptyInput(t *testing.T) {
	results := newEngine().Evaluate(nil, nil)

	assert.Len(t, results, 9)
	for _, u := range results {
		assert.Equal(t, model.CategoryUnknown, u.Status)
		assert.Equal(t, "No deterministic evidence found in extraction artifacts", u.Notes)
		assert.NotEmpty(t, u.Description)
		assert.NotEmpty(t, u.ResolveWith)
	}
}

func TestEvaluate_UpgradeViaVerifiedClaim(t *testing.T) {
	claims := []model.Claim{{
		ID:         "claim_001",
		Section:    "security",
		Statement:  "storage_encrypted is set in infra/main.tf",
		Confidence: 0.9,
		Evidence:   []model.EvidenceEntry{{Anchor: verifiedAnchor("infra/main.tf")}},
	}}

	results := newEngine().Evaluate(claims, nil)

	enc := findCategory(t, results, "encryption_at_rest")
	assert.Equal(t, model.CategoryVerified, enc.Status)
	require.Len(t, enc.Evidence, 1)
	assert.Equal(t, "infra/main.tf", enc.Evidence[0].Path)
	assert.Contains(t, enc.Notes, "Verified via:")
	assert.Contains(t, enc.Notes, "storage_encrypted")
}

func TestEvaluate_FileIndexPresenceAloneNeverUpgrades(t *testing.T) {
	// nginx.conf exists in the index but no verified claim cites it.
	fileIndex := []string{"infra/nginx.conf", "src/app.py"}

	results := newEngine().Evaluate(nil, fileIndex)

	tls := findCategory(t, results, "tls_termination")
	assert.Equal(t, model.CategoryUnknown, tls.Status)
	assert.Contains(t, tls.Notes, "Candidate artifact files found")
	assert.Contains(t, tls.Notes, "infra/nginx.conf")
	assert.Empty(t, tls.Evidence)
}

func TestEvaluate_ContentProbeBlocksKeywordCoincidence(t *testing.T) {
	// A claim about auth middleware anchored to an ingress manifest must not
	// certify TLS termination: its statement lacks the probe term.
	claims := []model.Claim{{
		ID:         "claim_002",
		Statement:  "authorization middleware guards the admin routes",
		Confidence: 0.9,
		Evidence:   []model.EvidenceEntry{{Anchor: verifiedAnchor("deploy/ingress.yaml")}},
	}}

	results := newEngine().Evaluate(claims, nil)

	tls := findCategory(t, results, "tls_termination")
	assert.Equal(t, model.CategoryUnknown, tls.Status)
}

func TestEvaluate_ProbeIsCaseInsensitive(t *testing.T) {
	claims := []model.Claim{{
		ID:         "claim_003",
		Statement:  "The Ingress terminates TLS for all hosts",
		Confidence: 0.9,
		Evidence:   []model.EvidenceEntry{{Anchor: verifiedAnchor("deploy/ingress.yaml")}},
	}}

	results := newEngine().Evaluate(claims, nil)

	tls := findCategory(t, results, "tls_termination")
	assert.Equal(t, model.CategoryVerified, tls.Status)
}

func TestEvaluate_UnverifiedEvidenceNeverFires(t *testing.T) {
	anchor := verifiedAnchor("infra/main.tf")
	anchor.SnippetHashVerified = false

	claims := []model.Claim{{
		ID:         "claim_004",
		Statement:  "storage_encrypted is set in infra/main.tf",
		Confidence: 0.9,
		Evidence:   []model.EvidenceEntry{{Anchor: anchor}},
	}}

	results := newEngine().Evaluate(claims, []string{"infra/main.tf"})

	enc := findCategory(t, results, "encryption_at_rest")
	assert.Equal(t, model.CategoryUnknown, enc.Status)
	assert.Contains(t, enc.Notes, "Candidate artifact files found")
}

func TestEvaluate_EvidenceCappedAtThree(t *testing.T) {
	var claims []model.Claim
	for _, path := range []string{"Dockerfile", "docker-compose.yml", "deploy/deployment.yaml", "infra/main.tf", "Procfile"} {
		claims = append(claims, model.Claim{
			ID:        "claim_" + path,
			Statement: "deployment artifact " + path,
			Evidence:  []model.EvidenceEntry{{Anchor: verifiedAnchor(path)}},
		})
	}

	results := newEngine().Evaluate(claims, nil)

	topo := findCategory(t, results, "deployment_topology")
	assert.Equal(t, model.CategoryVerified, topo.Status)
	assert.Len(t, topo.Evidence, 3)
	assert.Len(t, strings.Split(topo.Notes, ","), 3)
}

func TestDefaultRuleset_FixedCategoryOrder(t *testing.T) {
	want := []string{
		"tls_termination", "encryption_at_rest", "secret_management",
		"deployment_topology", "runtime_iam", "logging_sink",
		"monitoring_alerting", "backup_retention", "data_residency",
	}
	var got []string
	for _, c := range DefaultRuleset().Categories() {
		got = append(got, c.ID)
	}
	assert.Equal(t, want, got)
}
