// Package analysis turns a runner result into the views reporters render:
// a flat site list, per-file summaries and per-display-name groups.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/styledid/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a slash-separated path
// relative to workDir. If workDir is empty or conversion fails, returns the
// original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return filepath.ToSlash(absPath)
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return filepath.ToSlash(absPath)
	}
	return filepath.ToSlash(relPath)
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	nameMap   map[string]*NameAnalysis
	nameFiles map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		nameMap:   make(map[string]*NameAnalysis),
		nameFiles: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) getOrCreateNameAnalysis(name string) *NameAnalysis {
	if _, ok := ctx.nameMap[name]; !ok {
		ctx.nameMap[name] = &NameAnalysis{DisplayName: name}
		ctx.nameFiles[name] = make(map[string]bool)
	}
	return ctx.nameMap[name]
}

func (ctx *analysisContext) buildByName(opts Options) []NameAnalysis {
	result := make([]NameAnalysis, 0, len(ctx.nameMap))
	for name, na := range ctx.nameMap {
		for f := range ctx.nameFiles[name] {
			na.Files = append(na.Files, f)
		}
		slices.Sort(na.Files)
		result = append(result, *na)
	}
	slices.SortFunc(result, func(left, right NameAnalysis) int {
		return compareBy(opts, left.DisplayName, right.DisplayName, left.Sites, right.Sites)
	})
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through the file outcomes to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()
	var byFile []FileAnalysis

	for _, file := range result.Files {
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		switch {
		case file.Error != nil:
			report.Totals.FilesErrored++
			byFile = append(byFile, FileAnalysis{Path: displayPath, Error: file.Error.Error()})
			continue
		case file.Skipped:
			report.Totals.FilesSkipped++
			continue
		}

		report.Totals.Files++
		res := file.Result
		if res == nil {
			continue
		}

		fa := FileAnalysis{
			Path:        displayPath,
			Dialect:     res.Dialect.String(),
			Sites:       len(res.Sites),
			Skipped:     len(res.Skipped),
			Changed:     res.Changed(),
			Written:     file.Written,
			WrittenTo:   file.WrittenTo,
			Backup:      file.Backup,
			ParseFailed: res.ParseFailed,
		}

		if fa.Changed {
			report.Totals.FilesChanged++
		}
		if fa.Written {
			report.Totals.FilesWritten++
		}
		if fa.ParseFailed {
			report.Totals.ParseFailures++
		}
		report.Totals.Sites += fa.Sites
		report.Totals.SkippedSites += fa.Skipped

		for _, site := range res.Sites {
			if site.DisplayName != "" {
				fa.Names = append(fa.Names, site.DisplayName)
				na := ctx.getOrCreateNameAnalysis(site.DisplayName)
				na.Sites++
				ctx.nameFiles[site.DisplayName][displayPath] = true
			}

			if opts.IncludeSites {
				report.Sites = append(report.Sites, SiteEntry{
					FilePath:      displayPath,
					Line:          site.Line,
					Index:         site.Index,
					Shape:         site.Shape.String(),
					ComponentName: site.ComponentName,
					ComponentID:   site.ComponentID,
					DisplayName:   site.DisplayName,
					MergedKeys:    site.MergedKeys,
				})
			}
		}

		if opts.IncludeSites {
			for _, skipped := range res.Skipped {
				report.Skipped = append(report.Skipped, SkipEntry{
					FilePath: displayPath,
					Line:     skipped.Line,
					Reason:   skipped.Reason(),
				})
			}
		}

		if fa.Sites > 0 || fa.Skipped > 0 || fa.ParseFailed {
			byFile = append(byFile, fa)
		}
	}

	for _, na := range ctx.nameMap {
		if na.Duplicate() {
			report.Totals.DuplicateNames++
		}
	}

	if opts.IncludeByName {
		report.ByName = ctx.buildByName(opts)
	}
	if opts.IncludeByFile {
		slices.SortFunc(byFile, func(left, right FileAnalysis) int {
			return compareBy(opts, left.Path, right.Path, left.Sites, right.Sites)
		})
		report.ByFile = byFile
	}

	return report
}

// compareBy orders by count (ties broken alphabetically) or alphabetically.
// Alphabetical sorting is always ascending.
func compareBy(opts Options, leftKey, rightKey string, leftCount, rightCount int) int {
	if opts.SortBy == SortByAlpha {
		return cmp.Compare(leftKey, rightKey)
	}
	result := cmp.Compare(leftCount, rightCount)
	if opts.SortDesc {
		result = -result
	}
	if result == 0 {
		result = cmp.Compare(leftKey, rightKey)
	}
	return result
}
