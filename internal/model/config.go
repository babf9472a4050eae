package model

import "time"

// Config holds the complete application configuration
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// AnalysisConfig holds the engine tuning constants.
// The cap and n-gram sizes are calibration constants carried over from the
// original rule set; treat them as tuning parameters, not derived values.
type AnalysisConfig struct {
	SelfCompareCap     int     `yaml:"self_compare_cap" mapstructure:"self_compare_cap"`         // Max sentences in pairwise self-comparison
	SelfCompareNGram   int     `yaml:"self_compare_ngram" mapstructure:"self_compare_ngram"`     // N-gram size for self-comparison
	RefCompareNGram    int     `yaml:"ref_compare_ngram" mapstructure:"ref_compare_ngram"`       // N-gram size for reference comparison
	SelfSimThreshold   float64 `yaml:"self_sim_threshold" mapstructure:"self_sim_threshold"`     // Similarity threshold, self mode
	RefSimThreshold    float64 `yaml:"ref_sim_threshold" mapstructure:"ref_sim_threshold"`       // Similarity threshold, reference mode
	RefHighSimCutover  float64 `yaml:"ref_high_sim_cutover" mapstructure:"ref_high_sim_cutover"` // Above this, reference matches are High severity
}

// CacheConfig holds report cache settings
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig holds batch processing settings
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig holds report rendering settings
type OutputConfig struct {
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
	MinSeverity   string `yaml:"min_severity" mapstructure:"min_severity"` // Empty means no filtering
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			SelfCompareCap:    50,
			SelfCompareNGram:  3,
			RefCompareNGram:   4,
			SelfSimThreshold:  0.6,
			RefSimThreshold:   0.5,
			RefHighSimCutover: 0.7,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
			MinSeverity:   "",
		},
	}
}
