// Package pipeline wires document loading, the report cache, and the
// analysis engine into the flow the CLI drives.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/citeguard/citeguard/internal/analyze"
	"github.com/citeguard/citeguard/internal/cache"
	"github.com/citeguard/citeguard/internal/docload"
	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/tokenize"
)

// Pipeline orchestrates the complete check of one document
type Pipeline struct {
	engine   *analyze.Engine
	reports  cache.Cache // nil when caching is disabled
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var reports cache.Cache
	if cfg.Cache.Enabled {
		reports = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cacheDir(cfg), cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		engine:   analyze.New(tokenize.New(), cfg.Analysis),
		reports:  reports,
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}
}

// cacheDir resolves the configured cache directory, defaulting to the
// user cache dir
func cacheDir(cfg *model.Config) string {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ".citeguard-cache"
	}
	return filepath.Join(base, "citeguard")
}

// Result is the outcome of checking one document
type Result struct {
	Path    string
	Subject string
	Report  *model.PlagiarismReport
	Cached  bool
}

// AnalyzeFile loads a document and its reference sources, then produces
// the originality report. The engine call itself is synchronous and
// CPU-bound; ctx is only consulted between stages.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string, refPaths []string) (*Result, error) {
	text, err := docload.LoadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	references := docload.LoadReferences(refPaths)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Path:    path,
		Subject: subjectFromPath(path),
	}

	key := cache.ReportKey(text, references)
	if p.reports != nil {
		if data, ok := p.reports.Get(key); ok {
			var report model.PlagiarismReport
			if err := json.Unmarshal(data, &report); err == nil {
				result.Report = &report
				result.Cached = true
				return result, nil
			}
			// Corrupt entry, fall through to a fresh analysis
			_ = p.reports.Delete(key)
		}
	}

	report, err := p.engine.GenerateReport(text, references)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", path, err)
	}
	result.Report = report

	if p.reports != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.reports.Set(key, data, 0)
		}
	}

	return result, nil
}

// RenderReport renders the result to the requested outputs
func (p *Pipeline) RenderReport(result *Result, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result.Report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(result)
	return nil
}

// subjectFromPath derives a report subject from the document file name
func subjectFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
