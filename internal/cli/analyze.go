package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pta/internal/logging"
	"pta/internal/model"
	"pta/internal/pipeline"
	"pta/internal/render"
)

var (
	artifactsDir string
	outDir       string
	analysisMode string
	noCache      bool
	renderModes  []string
	runTimeout   time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <source-root>",
	Short: "Verify producer claims against a checked-out tree and render reports",
	Long: `Analyze loads the producer artifacts for a checked-out source tree
(claims, howto, coverage, file index, optional execution profile),
re-verifies every evidence citation against the real source lines,
evaluates the known-unknown categories, and writes the evidence pack plus
the engineer/auditor/executive reports.

Degraded producer output is processed, not rejected: missing artifacts
simply yield fewer verified findings and more UNKNOWN categories.

Example:
  pta analyze ./checkout --artifacts ./checkout/.analysis --out ./out
  pta analyze ./checkout --modes engineer,auditor`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&artifactsDir, "artifacts", "", "producer artifacts directory (default: <source-root>)")
	analyzeCmd.Flags().StringVar(&outDir, "out", "out", "output directory for the pack and reports")
	analyzeCmd.Flags().StringVar(&analysisMode, "mode", "github", "acquisition mode label carried into the pack")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the source-line cache")
	analyzeCmd.Flags().StringSliceVar(&renderModes, "modes", []string{"engineer", "auditor", "executive"}, "report modes to render")
	analyzeCmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Minute, "overall run timeout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sourceRoot := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	log, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := buildConfig()

	artifacts := artifactsDir
	if artifacts == "" {
		artifacts = sourceRoot
	}

	p := pipeline.New(cfg, log)
	result, err := p.Run(ctx, pipeline.RunInput{
		SourceRoot:   sourceRoot,
		ArtifactsDir: artifacts,
		OutputDir:    outDir,
	})
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Verified %d/%d claims\n",
			result.Pack.Summary.VerifiedClaims, result.Pack.Summary.TotalClaims)
		fmt.Fprintf(os.Stderr, "✓ Categories: %d verified, %d unknown\n",
			result.Pack.Summary.VerifiedCategories, result.Pack.Summary.UnknownCategories)
	}
	fmt.Printf("✓ Wrote pack: %s\n", result.PackPath)
	for _, mode := range render.Modes() {
		if path, ok := result.ReportPaths[mode]; ok {
			fmt.Printf("✓ Wrote %s report: %s\n", mode, path)
		}
	}

	return nil
}

// buildConfig layers the analyze flags over the defaults.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Analysis.Mode = analysisMode
	cfg.Cache.Enabled = !noCache
	cfg.Output.Dir = outDir
	cfg.Output.RenderModes = renderModes
	cfg.Output.Verbose = verbose
	return cfg
}
