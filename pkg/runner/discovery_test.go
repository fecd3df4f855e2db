package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/pkg/runner"
)

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"Button.js": buttonSource})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"Button.js"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Button.js")}, files)
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/App.tsx":                      buttonSource,
		"src/components/Button.jsx":        buttonSource,
		"src/api.ts":                       plainSource,
		"src/index.js":                     plainSource,
		"src/styles.css":                   "a {}",
		"README.md":                        "# readme",
		".hidden/Secret.js":                buttonSource,
		"src/.eslintrc.js":                 plainSource,
		"node_modules/pkg/index.js":        plainSource,
		"src/node_modules/nested/index.js": plainSource,
	})

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	want := []string{
		"src/App.tsx",
		"src/api.ts",
		"src/components/Button.jsx",
		"src/index.js",
	}
	if diff := cmp.Diff(want, relPaths(t, dir, files)); diff != "" {
		t.Errorf("discovered files mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"src/Button.js":         buttonSource,
		"src/Button.test.js":    buttonSource,
		"src/deep/Card.test.js": buttonSource,
		"build/out.js":          buttonSource,
		"src/generated/Gen.js":  buttonSource,
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"*.test.js", "build/**", "src/generated"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/Button.js"}, relPaths(t, dir, files))
}

func TestDiscover_ExplicitFileHonoursFilters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"notes.txt":      "text",
		"Button.test.js": buttonSource,
		"src/Button.js":  buttonSource,
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"notes.txt", "Button.test.js", "src", "src/Button.js"},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"*.test.js"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/Button.js"}, relPaths(t, dir, files), "duplicates are collapsed")
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.mjs": buttonSource,
		"b.js":  buttonSource,
		"c.MJS": buttonSource,
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".mjs"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mjs", "c.MJS"}, relPaths(t, dir, files))
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing.js"},
		WorkingDir: t.TempDir(),
	})
	require.ErrorIs(t, err, runner.ErrFileNotFound)
	assert.Contains(t, err.Error(), "missing.js")
}

func TestDiscover_InvalidExcludeGlob(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   t.TempDir(),
		ExcludeGlobs: []string{"[unterminated"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.js": buttonSource})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	external := t.TempDir()
	writeTree(t, dir, map[string]string{"src/App.js": buttonSource})
	writeTree(t, external, map[string]string{"Shared.js": buttonSource})

	link := filepath.Join(dir, "src", "shared")
	if err := os.Symlink(external, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/App.js"}, relPaths(t, dir, files))

	files, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	require.Len(t, files, 2)

	realExternal, err := filepath.EvalSymlinks(external)
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(realExternal, "Shared.js"))
}
