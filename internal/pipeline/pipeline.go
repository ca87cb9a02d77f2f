// Package pipeline orchestrates one complete analysis run: load producer
// artifacts, verify claims against ground truth, evaluate known unknowns,
// assemble the evidence pack, and render the reports. A run is fully
// sequential; only independent runs execute concurrently.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pta/internal/evidence"
	"pta/internal/ingest"
	"pta/internal/model"
	"pta/internal/pack"
	"pta/internal/render"
	"pta/internal/unknowns"
	"pta/internal/verify"
)

// Pipeline runs analyses under one configuration. It holds no per-run state:
// the same Pipeline may serve concurrent runs.
type Pipeline struct {
	cfg   *model.Config
	rules *unknowns.Ruleset
	log   *zap.Logger
}

// New creates a pipeline. The ruleset is compiled once here and shared,
// immutable, across all runs.
func New(cfg *model.Config, log *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		cfg:   cfg,
		rules: unknowns.DefaultRuleset(),
		log:   log,
	}
}

// RunInput identifies the materialized inputs of one run.
type RunInput struct {
	SourceRoot   string // checked-out target tree, read-only ground truth
	ArtifactsDir string // producer artifacts (claims, howto, coverage, index, profile)
	OutputDir    string // per-run output directory
}

// RunResult is the outcome of one run.
type RunResult struct {
	Pack        *model.EvidencePack
	PackPath    string
	ReportPaths map[render.Mode]string
}

// Run executes a full analysis run. Degraded producer inputs (missing
// claims, absent profile, empty index) are processed to a thinner result,
// never an error; only output persistence can fail.
func (p *Pipeline) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loader := ingest.NewLoader(in.ArtifactsDir, p.log)
	reader := evidence.NewReader(in.SourceRoot, p.cfg.Cache)

	claims := loader.Claims()
	howto := loader.Howto()
	coverage := loader.Coverage()
	fileIndex := loader.FileIndex()
	profile := loader.Profile()

	ingest.NormalizeHowto(howto, reader)
	ingest.NormalizeProfile(profile, reader)
	completeness := ingest.Completeness(howto, profile, in.SourceRoot)
	howto.Completeness = &completeness

	verifier := verify.NewVerifier(reader, p.log)
	verifier.VerifyClaims(claims)

	engine := unknowns.NewEngine(p.rules, p.cfg.Analysis)
	assessed := engine.Evaluate(claims.Claims, fileIndex)

	mode := coverage.Mode
	if mode == "" {
		mode = p.cfg.Analysis.Mode
	}
	runID := coverage.RunID
	if runID == "" {
		runID = claims.RunID
	}
	if runID == "" {
		runID = uuid.NewString()
	}

	built := pack.Build(pack.BuildInput{
		Howto:     howto,
		Claims:    claims,
		Coverage:  coverage,
		FileIndex: fileIndex,
		Unknowns:  assessed,
		Profile:   profile,
		Mode:      mode,
		RunID:     runID,
	})

	p.log.Info("analysis run complete",
		zap.String("run_id", runID),
		zap.Int("total_claims", built.Summary.TotalClaims),
		zap.Int("verified_claims", built.Summary.VerifiedClaims),
		zap.Int("unknown_categories", built.Summary.UnknownCategories))

	result := &RunResult{Pack: built, ReportPaths: make(map[render.Mode]string)}
	if in.OutputDir == "" {
		return result, nil
	}

	packPath, err := SavePack(built, in.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("persist pack: %w", err)
	}
	result.PackPath = packPath

	for _, m := range p.renderModes() {
		content := render.Render(built, m)
		path, err := render.Save(content, in.OutputDir, m)
		if err != nil {
			return nil, fmt.Errorf("persist %s report: %w", m, err)
		}
		result.ReportPaths[m] = path
	}

	return result, nil
}

func (p *Pipeline) renderModes() []render.Mode {
	if len(p.cfg.Output.RenderModes) == 0 {
		return render.Modes()
	}
	modes := make([]render.Mode, 0, len(p.cfg.Output.RenderModes))
	for _, m := range p.cfg.Output.RenderModes {
		modes = append(modes, render.Mode(m))
	}
	return modes
}
