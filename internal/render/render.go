// Package render projects an evidence pack into audience-specific Markdown
// reports. Rendering is a pure function of the pack: it re-derives no
// verification logic, and the same pack always yields byte-identical output.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pta/internal/model"
)

// Mode selects the report audience.
type Mode string

const (
	ModeEngineer  Mode = "engineer"
	ModeAuditor   Mode = "auditor"
	ModeExecutive Mode = "executive"
)

// Modes lists the supported render modes in output order.
func Modes() []Mode {
	return []Mode{ModeEngineer, ModeAuditor, ModeExecutive}
}

// maxListedHashes caps the snippet hashes shown in the engineer view.
const maxListedHashes = 20

// Render renders the pack for the given mode. Unrecognized modes fall back
// to the engineer view.
func Render(p *model.EvidencePack, mode Mode) string {
	switch mode {
	case ModeAuditor:
		return renderAuditor(p)
	case ModeExecutive:
		return renderExecutive(p)
	default:
		return renderEngineer(p)
	}
}

// Save writes the rendered report as REPORT_<MODE>.md under dir.
func Save(content, dir string, mode Mode) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("REPORT_%s.md", strings.ToUpper(string(mode))))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func renderEngineer(p *model.EvidencePack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Program Totality Report — Engineer View\n\n")
	fmt.Fprintf(&b, "**EvidencePack Version:** %s\n", p.Version)
	fmt.Fprintf(&b, "**Generated:** %s\n", p.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Mode:** %s\n", p.Mode)
	fmt.Fprintf(&b, "**Run ID:** %s\n\n---\n\n", p.RunID)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total files scanned: %d\n", p.Summary.TotalFiles)
	fmt.Fprintf(&b, "- Total claims: %d\n", p.Summary.TotalClaims)
	fmt.Fprintf(&b, "- Verified claims: %d\n", p.Summary.VerifiedClaims)
	fmt.Fprintf(&b, "- Unknown categories: %d\n\n", p.Summary.UnknownCategories)

	writeMetric(&b, p.Metrics.Completeness)
	writeMetric(&b, p.Metrics.ClaimsVisibility)

	for _, group := range p.Verified {
		fmt.Fprintf(&b, "## Verified: %s\n\n", group.Section)
		for _, claim := range group.Claims {
			fmt.Fprintf(&b, "### %s\n", claim.Statement)
			fmt.Fprintf(&b, "Confidence: %.0f%%\n", claim.Confidence*100)
			for _, ev := range claim.Evidence {
				fmt.Fprintf(&b, "- Evidence: `%s`  hash: `%s`\n", displayOf(ev), ev.SnippetHash)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Known Unknown Surface\n\n")
	b.WriteString("| Category | Status | Notes |\n")
	b.WriteString("|----------|--------|-------|\n")
	for _, u := range p.Unknowns {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", u.Category, u.Status, u.Notes)
	}
	b.WriteString("\n")

	hashes := p.Hashes.Snippets
	fmt.Fprintf(&b, "## Snippet Hashes (%d total)\n\n", len(hashes))
	for i, h := range hashes {
		if i >= maxListedHashes {
			fmt.Fprintf(&b, "- ... and %d more\n", len(hashes)-maxListedHashes)
			break
		}
		fmt.Fprintf(&b, "- `%s`\n", h)
	}
	b.WriteString("\n")

	return b.String()
}

func renderAuditor(p *model.EvidencePack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Program Totality Report — Auditor View\n\n")
	fmt.Fprintf(&b, "**EvidencePack Version:** %s\n", p.Version)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", p.GeneratedAt.Format(time.RFC3339))
	b.WriteString("This report shows only VERIFIED and UNKNOWN findings.\n")
	b.WriteString("No inferred narrative is included.\n\n---\n\n")

	b.WriteString("## Known Unknown Surface\n\n")
	b.WriteString("| Category | Status | Description | Evidence Anchors |\n")
	b.WriteString("|----------|--------|-------------|------------------|\n")
	for _, u := range p.Unknowns {
		anchors := anchorList(u.Evidence)
		if anchors == "" {
			anchors = "—"
		}
		fmt.Fprintf(&b, "| %s | **%s** | %s | %s |\n", u.Category, u.Status, u.Description, anchors)
	}
	b.WriteString("\n")

	for _, group := range p.Verified {
		fmt.Fprintf(&b, "## Verified Claims: %s\n\n", group.Section)
		for _, claim := range group.Claims {
			fmt.Fprintf(&b, "- **%s**\n", claim.Statement)
			fmt.Fprintf(&b, "  Confidence: %.0f%%\n", claim.Confidence*100)
			for _, ev := range claim.Evidence {
				fmt.Fprintf(&b, "  - Evidence anchor: `%s` (hash: `%s`)\n", displayOf(ev), ev.SnippetHash)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Completeness Index\n\n")
	fmt.Fprintf(&b, "**%.2f%%** — %s\n\n", p.Metrics.Completeness.Score*100, p.Metrics.Completeness.Interpretation)

	return b.String()
}

func renderExecutive(p *model.EvidencePack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Program Totality Report — Executive Summary\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n---\n\n", p.GeneratedAt.Format(time.RFC3339))

	totalCategories := len(p.Unknowns)
	b.WriteString("## Key Metrics\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Completeness Index | %.1f%% |\n", p.Metrics.Completeness.Score*100)
	fmt.Fprintf(&b, "| Claims Visibility | %.1f%% |\n", p.Metrics.ClaimsVisibility.Score*100)
	fmt.Fprintf(&b, "| Files Scanned | %d |\n", p.Summary.TotalFiles)
	fmt.Fprintf(&b, "| Total Claims | %d |\n", p.Summary.TotalClaims)
	fmt.Fprintf(&b, "| Verified Claims | %d |\n", p.Summary.VerifiedClaims)
	fmt.Fprintf(&b, "| Unknown Categories | %d / %d |\n", p.Summary.UnknownCategories, totalCategories)
	fmt.Fprintf(&b, "| Verified Categories | %d / %d |\n\n", p.Summary.VerifiedCategories, totalCategories)
	fmt.Fprintf(&b, "*%s*\n\n", p.Metrics.Completeness.Interpretation)

	b.WriteString("## Coverage Breakdown\n\n")
	for _, comp := range p.Metrics.Completeness.Components {
		fmt.Fprintf(&b, "- **%s**: [%s] %.0f%%\n", comp.Name, progressBar(comp.Score), comp.Score*100)
	}
	b.WriteString("\n")

	b.WriteString("## Surface Area\n\n")
	fmt.Fprintf(&b, "- Routes identified: %d\n", len(p.Structural.Routes))
	fmt.Fprintf(&b, "- Dependencies tracked: %d\n", len(p.Structural.Dependencies))
	fmt.Fprintf(&b, "- Schema elements: %d\n", len(p.Structural.Schemas))
	fmt.Fprintf(&b, "- Enforcement controls: %d\n\n", len(p.Structural.Enforcement))

	if p.Summary.UnknownCategories > 0 {
		b.WriteString("## Operational Blind Spots\n\n")
		b.WriteString("*INFERRED: The following categories lack deterministic evidence.*\n\n")
		for _, u := range p.Unknowns {
			if u.Status != model.CategoryVerified {
				fmt.Fprintf(&b, "- **%s**: %s\n", u.Category, u.Description)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeMetric(b *strings.Builder, m model.Metric) {
	fmt.Fprintf(b, "## %s\n\n", m.Label)
	fmt.Fprintf(b, "**Score:** %.2f%%\n", m.Score*100)
	fmt.Fprintf(b, "**Formula:** `%s`\n", m.Formula)
	for _, comp := range m.Components {
		fmt.Fprintf(b, "- %s: %.2f%%\n", comp.Name, comp.Score*100)
	}
	fmt.Fprintf(b, "\n*%s*\n\n", m.Interpretation)
}

// progressBar renders a 20-cell indicator for a 0..1 score.
func progressBar(score float64) string {
	filled := int(score * 20)
	if filled > 20 {
		filled = 20
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", 20-filled)
}

func displayOf(a model.EvidenceAnchor) string {
	if a.Display != "" {
		return a.Display
	}
	return a.Path
}

func anchorList(anchors []model.EvidenceAnchor) string {
	parts := make([]string, 0, len(anchors))
	for _, a := range anchors {
		if d := displayOf(a); d != "" {
			parts = append(parts, "`"+d+"`")
		}
	}
	return strings.Join(parts, ", ")
}
