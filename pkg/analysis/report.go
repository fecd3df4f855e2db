package analysis

import "time"

// Report contains pre-computed views of a rewrite run.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Sites is the flat list of rewritten call sites.
	Sites []SiteEntry `json:"sites,omitempty"`

	// Skipped lists call sites left untouched.
	Skipped []SkipEntry `json:"skipped,omitempty"`

	// ByFile summarizes each processed file.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByName groups sites by display name.
	ByName []NameAnalysis `json:"byName,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// SiteEntry is one rewritten call site.
type SiteEntry struct {
	FilePath      string   `json:"filePath"`
	Line          int      `json:"line"`
	Index         int      `json:"index"`
	Shape         string   `json:"shape"`
	ComponentName string   `json:"componentName,omitempty"`
	ComponentID   string   `json:"componentId,omitempty"`
	DisplayName   string   `json:"displayName,omitempty"`
	MergedKeys    []string `json:"mergedKeys,omitempty"`
}

// SkipEntry is a call site whose existing config could not be merged.
type SkipEntry struct {
	FilePath string `json:"filePath"`
	Line     int    `json:"line"`
	Reason   string `json:"reason"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files         int `json:"filesProcessed"`
	FilesChanged  int `json:"filesChanged"`
	FilesWritten  int `json:"filesWritten"`
	FilesErrored  int `json:"filesErrored"`
	FilesSkipped  int `json:"filesSkipped"`
	ParseFailures int `json:"parseFailures"`
	Sites         int `json:"sites"`
	SkippedSites  int `json:"skippedSites"`

	// DuplicateNames counts display names used by more than one site.
	DuplicateNames int `json:"duplicateNames"`
}

// HasChanges returns true if any file changed.
func (t Totals) HasChanges() bool {
	return t.FilesChanged > 0
}

// HasErrors returns true if any file failed.
func (t Totals) HasErrors() bool {
	return t.FilesErrored > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path        string   `json:"path"`
	Dialect     string   `json:"dialect,omitempty"`
	Sites       int      `json:"sites"`
	Skipped     int      `json:"skipped"`
	Changed     bool     `json:"changed"`
	Written     bool     `json:"written,omitempty"`
	WrittenTo   string   `json:"writtenTo,omitempty"`
	Backup      string   `json:"backup,omitempty"`
	ParseFailed bool     `json:"parseFailed,omitempty"`
	Error       string   `json:"error,omitempty"`
	Names       []string `json:"names,omitempty"`
}

// NameAnalysis contains aggregated data for a single display name.
type NameAnalysis struct {
	DisplayName string   `json:"displayName"`
	Sites       int      `json:"sites"`
	Files       []string `json:"files,omitempty"`
}

// Duplicate reports whether more than one site carries the name.
func (n NameAnalysis) Duplicate() bool {
	return n.Sites > 1
}
