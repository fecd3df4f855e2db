package reporter

import (
	"context"

	"github.com/yaklabco/styledid/pkg/analysis"
)

// Renderer presents a pre-computed analysis.Report. The json, table and
// summary formats are renderers; text and diff read the runner result
// directly because they need per-file sources and diffs.
type Renderer interface {
	Render(ctx context.Context, report *analysis.Report) error
}
