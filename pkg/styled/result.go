package styled

import (
	"errors"

	"github.com/yaklabco/styledid/pkg/fix"
	"github.com/yaklabco/styledid/pkg/langdetect"
)

var (
	// ErrParseFailure marks a source the parser could not read cleanly. It is
	// reported through Result.ParseFailed, never returned by Transform.
	ErrParseFailure = errors.New("source could not be parsed")

	// ErrMalformedConfig marks an existing withConfig call whose argument is
	// not a single plain object literal.
	ErrMalformedConfig = errors.New("malformed withConfig call")

	// ErrOverlappingEdits means the rewriter produced edits that claim the
	// same bytes. It indicates a bug and fails only the affected file.
	ErrOverlappingEdits = errors.New("overlapping edits")
)

// Shape is the syntactic form of a call site.
type Shape int

const (
	// ShapeTaggedMember is a member access used as a tag or callee:
	// styled.div`...` or styled.div({...}).
	ShapeTaggedMember Shape = iota

	// ShapeCallChain is a call chain rooted at the factory used as a callee:
	// styled(Button).attrs(...)`...` or styled.div.withConfig({...})`...`.
	ShapeCallChain

	// ShapeFactoryCall is the factory applied to a component: styled(Button)`...`.
	ShapeFactoryCall
)

func (s Shape) String() string {
	switch s {
	case ShapeTaggedMember:
		return "tagged-member"
	case ShapeCallChain:
		return "call-chain"
	case ShapeFactoryCall:
		return "factory-call"
	default:
		return "unknown"
	}
}

// Site is one rewritten call site.
type Site struct {
	// Index is the 0-based position among rewritten sites in source order.
	Index int `json:"index"`

	ComponentID   string `json:"componentId,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	ComponentName string `json:"componentName,omitempty"`

	Shape Shape `json:"-"`

	// Start and End delimit the matched callee; the config is inserted at End.
	Start int `json:"start"`
	End   int `json:"end"`

	// Line is the 1-based line of Start.
	Line int `json:"line"`

	// MergedKeys lists the keys carried over from an existing withConfig.
	MergedKeys []string `json:"mergedKeys,omitempty"`
}

// SkippedSite is a call site left untouched.
type SkippedSite struct {
	Start int   `json:"start"`
	End   int   `json:"end"`
	Line  int   `json:"line"`
	Err   error `json:"-"`
}

// Reason returns the error text for reports.
func (s SkippedSite) Reason() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Result is the outcome of transforming one file.
type Result struct {
	// Output is the rewritten text. It equals the input when nothing matched
	// or the file could not be parsed.
	Output []byte

	Sites   []Site
	Skipped []SkippedSite

	// Edits produced Output from the input.
	Edits []fix.Edit

	Bindings BindingSet
	Dialect  langdetect.Dialect

	// ParseFailed is set when the file was passed through unparsed.
	ParseFailed bool
}

// Changed reports whether Output differs from the input.
func (r *Result) Changed() bool {
	return r != nil && len(r.Edits) > 0
}
