package styled_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/pkg/identity"
	"github.com/yaklabco/styledid/pkg/moduleroot"
	"github.com/yaklabco/styledid/pkg/parser/treesitter"
	"github.com/yaklabco/styledid/pkg/styled"
)

// js turns '~' into backticks so template literals fit in Go raw strings.
func js(s string) string {
	return strings.ReplaceAll(s, "~", "`")
}

// emptyFS has no manifests anywhere.
type emptyFS struct{}

func (emptyFS) Exists(string) bool { return false }

func (emptyFS) ReadFile(string) ([]byte, error) { return nil, os.ErrNotExist }

// fixedHasher returns a hasher whose every file hash is "abc".
func fixedHasher() *identity.Hasher {
	resolver := moduleroot.NewResolver(moduleroot.NewCache(), moduleroot.WithFS(emptyFS{}))
	return identity.NewHasher(resolver, func(string) string { return "abc" })
}

// rewrite parses src and runs the rewriter with a fixed hash.
func rewrite(t *testing.T, path, src string, opts styled.Options) *styled.Result {
	t.Helper()

	tree, _, err := treesitter.New().Parse(context.Background(), filepath.FromSlash(path), []byte(src))
	require.NoError(t, err)

	result, err := styled.Rewrite(tree, []byte(src), filepath.FromSlash(path), opts, fixedHasher())
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func noFileName() styled.Options {
	opts := styled.DefaultOptions()
	opts.FileName = false
	return opts
}
