package analysis

// SortField orders the per-file and per-name tables.
type SortField string

const (
	SortByCount SortField = "count" // number of sites
	SortByAlpha SortField = "alpha" // path or display name
)

// IsValid reports whether s is a known sort field.
func (s SortField) IsValid() bool {
	return s == SortByCount || s == SortByAlpha
}

// Options selects which sections Analyze fills in and how they are ordered.
type Options struct {
	IncludeSites  bool // flat site and skip lists
	IncludeByFile bool
	IncludeByName bool

	SortBy   SortField
	SortDesc bool

	// WorkingDir, when set, makes reported paths relative to it.
	WorkingDir string
}

// DefaultOptions fills every section, largest counts first.
func DefaultOptions() Options {
	return Options{
		IncludeSites:  true,
		IncludeByFile: true,
		IncludeByName: true,
		SortBy:        SortByCount,
		SortDesc:      true,
	}
}
