// Package langdetect picks the grammar dialect for JavaScript-family sources.
// It uses go-enry to map file names (and, for ambiguous extensions, content)
// to a linguist language, then folds that language onto the two grammars the
// parser ships: TSX, which accepts plain JavaScript and JSX, and TypeScript,
// which rejects JSX but accepts angle-bracket type assertions.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Dialect selects a grammar.
type Dialect int

const (
	// DialectNone means the source is not JavaScript-family text.
	DialectNone Dialect = iota

	// DialectTSX covers JavaScript, JSX and TSX.
	DialectTSX

	// DialectTypeScript covers TypeScript without JSX.
	DialectTypeScript
)

// String returns the dialect name used in reports.
func (d Dialect) String() string {
	switch d {
	case DialectTSX:
		return "tsx"
	case DialectTypeScript:
		return "typescript"
	case DialectNone:
		return "none"
	default:
		return "unknown"
	}
}

// linguist language names.
const (
	langTypeScript = "TypeScript"
	langTSX        = "TSX"
	langJavaScript = "JavaScript"
	langJSX        = "JSX"
)

// Detect returns the dialect for a file. Content is consulted only when the
// extension is ambiguous (".ts" is also a Qt translation format) or absent.
func Detect(path string, content []byte) Dialect {
	// Strategy 1: content heuristics for ambiguous extensions.
	if lang, safe := enry.GetLanguageByContent(path, content); safe {
		return fromLanguage(lang)
	}

	// Strategy 2: extension candidates.
	candidates := enry.GetLanguagesByExtension(path, content, nil)
	if len(candidates) > 0 {
		dialect := DialectNone
		for _, lang := range candidates {
			if d := fromLanguage(lang); d > dialect {
				dialect = d
			}
		}
		return dialect
	}

	// Strategy 3: extensions linguist does not know yet.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mts", ".cts":
		return DialectTypeScript
	case ".mjs", ".cjs":
		return DialectTSX
	}

	// Strategy 4: extensionless scripts.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fromLanguage(lang)
	}

	return DialectNone
}

// IsVendored reports whether path lies in third-party code such as
// node_modules or bower_components.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

func fromLanguage(lang string) Dialect {
	switch lang {
	case langTypeScript:
		return DialectTypeScript
	case langTSX, langJavaScript, langJSX:
		return DialectTSX
	default:
		return DialectNone
	}
}
