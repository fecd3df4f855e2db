package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/pkg/identity"
	"github.com/yaklabco/styledid/pkg/runner"
	"github.com/yaklabco/styledid/pkg/styled"
)

const buttonSource = "import styled from 'styled-components';\nconst Title = styled.h1`color: red;`;\n"

const plainSource = "export const answer = 42;\n"

// writeTree creates files (slash-separated paths relative to dir).
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newTestRunner(t *testing.T) *runner.Runner {
	t.Helper()

	cfg := styled.DefaultPluginConfig()
	cfg.Hasher = identity.NewHasher(nil, func(string) string { return "abc" })
	plugin, err := styled.NewPlugin(cfg)
	require.NoError(t, err)
	return runner.New(plugin)
}

func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()

	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}
