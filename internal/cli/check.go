package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/citeguard/citeguard/internal/model"
	"github.com/citeguard/citeguard/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	refPaths    []string
	minSeverity string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a single document and generate an originality report",
	Long: `Check analyzes one document to:
- Detect quotations that lack an inline citation
- Detect factual claims asserted without a supporting reference
- Detect close paraphrasing, within the document or against reference sources
- Detect suspicious stylistic patterns
- Produce a deduplicated, ranked issue list with a 0-100 originality score

Supported inputs: plain text, structured JSON (sections[].content or a
content field), HTML, and PDF.

Example:
  citeguard check essay.txt
  citeguard check thesis.json --ref source1.txt --ref source2.txt
  citeguard check paper.pdf --json report.json --md report.md --min-severity medium`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	checkCmd.Flags().StringVar(&minSeverity, "min-severity", "", "only report issues at or above this severity (high, medium, low)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	checkCmd.Flags().StringArrayVar(&refPaths, "ref", nil, "reference source file (repeatable)")
	checkCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall check timeout (large reference corpora take longer)")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh analysis)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", path)
		fmt.Fprintf(os.Stderr, "References: %d\n", len(refPaths))
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Output.MinSeverity = minSeverity

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Analyzing document...\n")
	}

	result, err := p.AnalyzeFile(ctx, path, refPaths)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	// Filter issues per the caller-supplied severity floor
	if minSeverity != "" {
		min, err := model.ParseSeverity(minSeverity)
		if err != nil {
			return err
		}
		result.Report.Issues = model.FilterBySeverity(result.Report.Issues, min)
	}

	if verbose {
		if result.Cached {
			fmt.Fprintf(os.Stderr, "✓ Report served from cache\n")
		}
		fmt.Fprintf(os.Stderr, "✓ Found %d issues\n", len(result.Report.Issues))
		fmt.Fprintf(os.Stderr, "✓ Originality score: %d/100\n", result.Report.OriginalityScore)
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderReport(result, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
