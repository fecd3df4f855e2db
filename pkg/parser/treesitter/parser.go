// Package treesitter parses JavaScript-family sources into a syntax.Tree using
// the tree-sitter TSX and TypeScript grammars.
package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/yaklabco/styledid/pkg/langdetect"
	"github.com/yaklabco/styledid/pkg/syntax"
)

// ErrNoTree is returned when tree-sitter produces no root node.
var ErrNoTree = errors.New("tree-sitter returned no tree")

// Parser converts source text into a syntax.Tree.
//
// A Parser holds no tree-sitter state; every Parse call creates its own
// sitter.Parser, so one Parser may be shared by many goroutines.
type Parser struct {
	force langdetect.Dialect
}

// New creates a parser that picks the grammar per file.
func New() *Parser {
	return &Parser{}
}

// NewWithDialect creates a parser that always uses dialect.
func NewWithDialect(dialect langdetect.Dialect) *Parser {
	return &Parser{force: dialect}
}

// Parse builds the arena for content.
//
// A tree with recovered syntax errors is still returned; callers inspect
// Tree.HasError. An error is returned only when parsing could not run at all
// or ctx was cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*syntax.Tree, langdetect.Dialect, error) {
	if err := ctx.Err(); err != nil {
		return nil, langdetect.DialectNone, fmt.Errorf("parse cancelled: %w", err)
	}

	dialect := p.dialectFor(path, content)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(languageFor(dialect))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, dialect, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, dialect, fmt.Errorf("parse %s: %w", path, ErrNoTree)
	}

	return buildTree(root, content), dialect, nil
}

func (p *Parser) dialectFor(path string, content []byte) langdetect.Dialect {
	if p.force != langdetect.DialectNone {
		return p.force
	}
	dialect := langdetect.Detect(path, content)
	if dialect == langdetect.DialectNone {
		// The TSX grammar accepts the widest JavaScript surface.
		return langdetect.DialectTSX
	}
	return dialect
}

func languageFor(dialect langdetect.Dialect) *sitter.Language {
	if dialect == langdetect.DialectTypeScript {
		return typescript.GetLanguage()
	}
	return tsx.GetLanguage()
}
