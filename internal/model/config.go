package model

import "time"

// Config is the full runtime configuration, layered by the CLI from flags,
// PTA_* environment variables, the config file, and these defaults.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
}

// AnalysisConfig controls the verification run itself.
type AnalysisConfig struct {
	Mode                   string `yaml:"mode" json:"mode"`                                         // acquisition mode label carried into the pack
	MaxEvidencePerCategory int    `yaml:"max_evidence_per_category" json:"max_evidence_per_category"` // anchors kept on a verified category
	MaxAdvisoryFiles       int    `yaml:"max_advisory_files" json:"max_advisory_files"`             // candidate files named in advisory notes
}

// CacheConfig controls the per-run source-line cache.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" json:"enabled"`
	TTL             time.Duration `yaml:"ttl" json:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval"`
}

// OutputConfig controls persistence of the pack and reports.
type OutputConfig struct {
	Dir         string   `yaml:"dir" json:"dir"`
	RenderModes []string `yaml:"render_modes" json:"render_modes"`
	Verbose     bool     `yaml:"verbose" json:"verbose"`
}

// ConcurrencyConfig controls batch processing. A single run is sequential;
// only independent runs execute concurrently.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" json:"batch_workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Mode:                   "github",
			MaxEvidencePerCategory: 3,
			MaxAdvisoryFiles:       3,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Output: OutputConfig{
			Dir:         "out",
			RenderModes: []string{"engineer", "auditor", "executive"},
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
	}
}
