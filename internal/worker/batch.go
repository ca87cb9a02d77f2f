package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pta/internal/pipeline"
)

// Runner executes one analysis run. Satisfied by *pipeline.Pipeline.
type Runner interface {
	Run(ctx context.Context, in pipeline.RunInput) (*pipeline.RunResult, error)
}

// AnalyzeJob is one queued analysis run.
type AnalyzeJob struct {
	Input  pipeline.RunInput
	Runner Runner
}

// Execute runs the analysis.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Runner.Run(ctx, j.Input)
	return &AnalyzeResult{Input: j.Input, Run: result, Error: err}
}

// AnalyzeResult is the outcome of one queued run.
type AnalyzeResult struct {
	Input pipeline.RunInput
	Run   *pipeline.RunResult
	Error error
}

// GetError returns the run error, if any.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor runs many independent analyses concurrently.
type BatchProcessor struct {
	runner      Runner
	concurrency int
	outputRoot  string
}

// NewBatchProcessor creates a batch processor writing per-run output under
// outputRoot, one subdirectory per target.
func NewBatchProcessor(runner Runner, concurrency int, outputRoot string) *BatchProcessor {
	return &BatchProcessor{runner: runner, concurrency: concurrency, outputRoot: outputRoot}
}

// Process runs an analysis for every target concurrently and returns the
// per-target results in completion order.
func (b *BatchProcessor) Process(ctx context.Context, targets []Target) []*AnalyzeResult {
	if len(targets) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, t := range targets {
		pool.Submit(&AnalyzeJob{
			Input: pipeline.RunInput{
				SourceRoot:   t.SourceRoot,
				ArtifactsDir: t.ArtifactsDir,
				OutputDir:    filepath.Join(b.outputRoot, t.Name()),
			},
			Runner: b.runner,
		})
	}

	results := pool.Wait()
	out := make([]*AnalyzeResult, len(results))
	for i, r := range results {
		out[i] = r.(*AnalyzeResult)
	}
	return out
}

// ProcessFile reads targets from a manifest file and processes them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*AnalyzeResult, error) {
	targets, err := ReadTargetsFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	return b.Process(ctx, targets), nil
}

// Target is one batch entry: a checked-out source tree and its producer
// artifacts directory.
type Target struct {
	SourceRoot   string
	ArtifactsDir string
}

// Name returns the output subdirectory name for the target.
func (t Target) Name() string {
	return filepath.Base(filepath.Clean(t.SourceRoot))
}

// ReadTargetsFile parses a batch manifest: one target per line as
// "source_root artifacts_dir" (whitespace separated), blank lines and
// #-comments skipped, duplicates dropped.
func ReadTargetsFile(path string) ([]Target, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var targets []Target
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		t := Target{SourceRoot: fields[0], ArtifactsDir: fields[0]}
		if len(fields) > 1 {
			t.ArtifactsDir = fields[1]
		}
		key := t.SourceRoot + "\x00" + t.ArtifactsDir
		if !seen[key] {
			seen[key] = true
			targets = append(targets, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return targets, nil
}
