// Package reporter renders runner results: per-file component listings,
// site tables, JSON documents, unified diffs and aggregate summaries.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/styledid/pkg/analysis"
	"github.com/yaklabco/styledid/pkg/runner"
)

var _ Reporter = (*reporterFacade)(nil)

// Reporter writes a runner result in one output format. Report returns
// the number of changed files.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade analyzes a result once and hands the report to a Renderer.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.FilesChanged, nil
}

// New creates a Reporter for opts.Format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	var renderer Renderer
	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatJSON:
		renderer = NewJSONRenderer(opts)
	case FormatTable:
		renderer = NewTableRenderer(opts)
	case FormatSummary:
		renderer = NewSummaryRenderer(opts)
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}

	return &reporterFacade{
		renderer:     renderer,
		analysisOpts: opts.analysisOptions(),
	}, nil
}
