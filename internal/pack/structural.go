package pack

import (
	"fmt"
	"regexp"
	"strings"

	"pta/internal/model"
)

// bucket identifies one structural surface-area category.
type bucket int

const (
	bucketDependencies bucket = iota
	bucketSchemas
	bucketRoutes
	bucketEnforcement
)

// classifier is one (bucket, pattern) pair. Classification is an explicit
// ordered list evaluated top to bottom, first match wins, so priority stays
// auditable: a claim matching both a dependency and a schema pattern files
// under dependencies only.
type classifier struct {
	bucket  bucket
	pattern *regexp.Regexp
}

var structuralClassifiers = []classifier{
	{bucketDependencies, regexp.MustCompile(`(?i)dependenc|package\.json|requirements\.txt|pyproject\.toml|cargo\.toml|go\.mod|gemfile`)},
	{bucketSchemas, regexp.MustCompile(`(?i)schema|migration|model|drizzle|prisma|sequelize|typeorm|alembic|\.sql$`)},
	{bucketRoutes, regexp.MustCompile(`(?i)route|endpoint|api|controller|handler|router`)},
	{bucketEnforcement, regexp.MustCompile(`(?i)auth|permission|rbac|acl|guard|middleware|policy|validator`)},
}

// buildStructural assembles the best-effort surface-area view from verified
// claims, howto install steps, and schema-looking files in the index. It is
// advisory and never the canonical section grouping.
func buildStructural(verified []model.VerifiedClaim, howto *model.Howto, fileIndex []string) model.StructuralView {
	var view model.StructuralView

	for _, claim := range verified {
		if b, ok := classifyClaim(claim); ok {
			appendTo(&view, b, claim)
		}
	}

	for _, dep := range installDependencies(howto, len(view.Dependencies)) {
		view.Dependencies = append(view.Dependencies, dep)
	}

	view.Schemas = append(view.Schemas, indexSchemaFiles(fileIndex, view.Schemas)...)
	return view
}

// classifyClaim tests evidence paths against the classifier list first; only
// when no path matches does the claim statement get the same pass.
func classifyClaim(claim model.VerifiedClaim) (bucket, bool) {
	for _, c := range structuralClassifiers {
		for _, ev := range claim.Evidence {
			if c.pattern.MatchString(ev.Path) {
				return c.bucket, true
			}
		}
	}
	for _, c := range structuralClassifiers {
		if c.pattern.MatchString(claim.Statement) {
			return c.bucket, true
		}
	}
	return 0, false
}

func appendTo(view *model.StructuralView, b bucket, claim model.VerifiedClaim) {
	switch b {
	case bucketDependencies:
		view.Dependencies = append(view.Dependencies, claim)
	case bucketSchemas:
		view.Schemas = append(view.Schemas, claim)
	case bucketRoutes:
		view.Routes = append(view.Routes, claim)
	case bucketEnforcement:
		view.Enforcement = append(view.Enforcement, claim)
	}
}

var installCommandRe = regexp.MustCompile(`(?i)install|pip|npm`)

// installDependencies lifts howto install steps with hash-verified evidence
// into the dependency surface.
func installDependencies(howto *model.Howto, offset int) []model.VerifiedClaim {
	if howto == nil {
		return nil
	}
	var out []model.VerifiedClaim
	for _, step := range howto.InstallSteps {
		anchors := verifiedAnchors(step.Evidence)
		if len(anchors) == 0 || step.Command == "" || !installCommandRe.MatchString(step.Command) {
			continue
		}
		statement := step.Description
		if statement == "" {
			statement = step.Command
		}
		out = append(out, model.VerifiedClaim{
			ID:         fmt.Sprintf("howto_install_%d", offset+len(out)),
			Statement:  statement,
			Section:    "howto:install_steps",
			Evidence:   anchors,
			Confidence: 0.5,
		})
	}
	return out
}

func verifiedAnchors(list model.EvidenceList) []model.EvidenceAnchor {
	var out []model.EvidenceAnchor
	for _, a := range list.Anchors() {
		if a.SnippetHashVerified && a.SnippetHash != "" && a.Path != "" {
			out = append(out, a)
		}
	}
	return out
}

const maxIndexSchemaFiles = 5

// indexSchemaFiles surfaces schema-looking files from the index that no
// verified schema claim already cites. These carry file-exists anchors only
// and are plainly labeled as index findings, not claim evidence.
func indexSchemaFiles(fileIndex []string, existing []model.VerifiedClaim) []model.VerifiedClaim {
	cited := make(map[string]bool)
	for _, c := range existing {
		for _, ev := range c.Evidence {
			cited[ev.Path] = true
		}
	}

	schemaPattern := structuralClassifiers[1].pattern
	var out []model.VerifiedClaim
	for _, f := range fileIndex {
		if len(out) >= maxIndexSchemaFiles {
			break
		}
		if !schemaPattern.MatchString(f) || cited[f] {
			continue
		}
		out = append(out, model.VerifiedClaim{
			ID:        "structural_schema_file_" + strings.ReplaceAll(f, "/", "_"),
			Statement: "Schema/migration file detected: " + f,
			Section:   "structural:file_index",
			Evidence: []model.EvidenceAnchor{{
				Path: f,
				Kind: "file_exists_index",
				Note: "from file index, not claim evidence",
			}},
			Confidence: 0.3,
		})
	}
	return out
}
