package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pta/internal/logging"
	"pta/internal/pipeline"
	"pta/internal/worker"
)

var (
	batchWorkers int
	batchOutRoot string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <targets-file>",
	Short: "Analyze multiple checked-out trees concurrently",
	Long: `Batch reads a manifest of targets (one per line, as
"source_root [artifacts_dir]"; blank lines and # comments are skipped) and
runs an independent analysis for each. Runs share nothing but the worker
pool; each writes its pack and reports under its own subdirectory of the
output root.

Example:
  pta batch targets.txt --out ./batch-out --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "concurrent analysis runs")
	batchCmd.Flags().StringVar(&batchOutRoot, "out", "out", "output root; one subdirectory per target")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	log, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := buildConfig()
	cfg.Concurrency.BatchWorkers = batchWorkers
	if !cmd.Flags().Changed("workers") && viper.IsSet("concurrency.batch_workers") {
		cfg.Concurrency.BatchWorkers = viper.GetInt("concurrency.batch_workers")
	}

	p := pipeline.New(cfg, log)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.BatchWorkers, batchOutRoot)

	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Input.SourceRoot, r.Error)
			continue
		}
		fmt.Printf("✓ %s: %d/%d claims verified → %s\n",
			r.Input.SourceRoot,
			r.Run.Pack.Summary.VerifiedClaims,
			r.Run.Pack.Summary.TotalClaims,
			r.Run.PackPath)
	}

	fmt.Printf("\nProcessed %d targets (%d failed)\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(results))
	}
	return nil
}
