package moduleroot_test

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/styledid/pkg/moduleroot"
)

// countingFS is an in-memory FS that records how often it is probed.
type countingFS struct {
	files  map[string]string
	exists atomic.Int64
	reads  atomic.Int64
}

func newCountingFS(files map[string]string) *countingFS {
	normalized := make(map[string]string, len(files))
	for path, content := range files {
		normalized[filepath.FromSlash(path)] = content
	}
	return &countingFS{files: normalized}
}

func (f *countingFS) Exists(path string) bool {
	f.exists.Add(1)
	_, ok := f.files[path]
	return ok
}

func (f *countingFS) ReadFile(path string) ([]byte, error) {
	f.reads.Add(1)
	content, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(content), nil
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	fsys := newCountingFS(map[string]string{
		"/repo/package.json":             `{"name":"app"}`,
		"/repo/packages/ui/package.json": `{"name":"@app/ui"}`,
	})

	tests := []struct {
		name     string
		file     string
		wantRoot string
		wantOK   bool
	}{
		{"file in root", "/repo/index.js", "/repo", true},
		{"nested file", "/repo/src/components/Button.js", "/repo", true},
		{"nested package wins", "/repo/packages/ui/src/Card.tsx", "/repo/packages/ui", true},
		{"outside any module", "/elsewhere/a.js", "", false},
		{"empty path", "", "", false},
	}

	resolver := moduleroot.NewResolver(moduleroot.NewCache(), moduleroot.WithFS(fsys))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, ok := resolver.Resolve(filepath.FromSlash(tt.file))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, filepath.FromSlash(tt.wantRoot), root)
		})
	}
}

func TestResolver_Resolve_MemoizesVisitedDirectories(t *testing.T) {
	t.Parallel()

	fsys := newCountingFS(map[string]string{
		"/repo/package.json": `{"name":"app"}`,
	})
	cache := moduleroot.NewCache()
	resolver := moduleroot.NewResolver(cache, moduleroot.WithFS(fsys))

	root, ok := resolver.Resolve(filepath.FromSlash("/repo/src/deep/a.js"))
	require.True(t, ok)
	require.Equal(t, filepath.FromSlash("/repo"), root)

	probes := fsys.exists.Load()
	assert.Equal(t, int64(3), probes, "deep, src and repo are probed once each")

	// Siblings and intermediate directories are answered from the cache.
	_, _ = resolver.Resolve(filepath.FromSlash("/repo/src/deep/b.js"))
	_, _ = resolver.Resolve(filepath.FromSlash("/repo/src/c.js"))
	assert.Equal(t, probes, fsys.exists.Load())
	assert.Equal(t, 3, cache.Len())
}

func TestResolver_Resolve_MemoizesMissingRoot(t *testing.T) {
	t.Parallel()

	fsys := newCountingFS(nil)
	resolver := moduleroot.NewResolver(moduleroot.NewCache(), moduleroot.WithFS(fsys))

	_, ok := resolver.Resolve(filepath.FromSlash("/tmp/x/a.js"))
	require.False(t, ok)

	probes := fsys.exists.Load()
	_, ok = resolver.Resolve(filepath.FromSlash("/tmp/x/b.js"))
	assert.False(t, ok)
	assert.Equal(t, probes, fsys.exists.Load())
}

func TestCache_Reset(t *testing.T) {
	t.Parallel()

	fsys := newCountingFS(map[string]string{
		"/repo/package.json": `{"name":"app"}`,
	})
	cache := moduleroot.NewCache()
	resolver := moduleroot.NewResolver(cache, moduleroot.WithFS(fsys))

	_, _ = resolver.Resolve(filepath.FromSlash("/repo/a.js"))
	_ = resolver.ModuleName(filepath.FromSlash("/repo"))
	require.Equal(t, 1, cache.Len())

	cache.Reset()
	assert.Equal(t, 0, cache.Len())

	probes := fsys.exists.Load()
	reads := fsys.reads.Load()
	_, _ = resolver.Resolve(filepath.FromSlash("/repo/a.js"))
	_ = resolver.ModuleName(filepath.FromSlash("/repo"))
	assert.Greater(t, fsys.exists.Load(), probes)
	assert.Greater(t, fsys.reads.Load(), reads)
}

func TestResolver_ModuleName(t *testing.T) {
	t.Parallel()

	fsys := newCountingFS(map[string]string{
		"/named/package.json":     `{"name": "my-lib", "version": "1.0.0"}`,
		"/unnamed/package.json":   `{"version": "1.0.0"}`,
		"/malformed/package.json": `{"name": `,
	})
	resolver := moduleroot.NewResolver(nil, moduleroot.WithFS(fsys))

	tests := []struct {
		root string
		want string
	}{
		{"/named", "my-lib"},
		{"/unnamed", ""},
		{"/malformed", ""},
		{"/missing", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resolver.ModuleName(filepath.FromSlash(tt.root)), "root %s", tt.root)
	}
}

func TestResolver_ModuleName_ReadsOnce(t *testing.T) {
	t.Parallel()

	fsys := newCountingFS(map[string]string{
		"/repo/package.json": `{"name":"app"}`,
	})
	resolver := moduleroot.NewResolver(moduleroot.NewCache(), moduleroot.WithFS(fsys))
	root := filepath.FromSlash("/repo")

	var wg sync.WaitGroup
	names := make([]string, 16)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = resolver.ModuleName(root)
		}(i)
	}
	wg.Wait()

	for _, name := range names {
		assert.Equal(t, "app", name)
	}
	// singleflight collapses concurrent reads; later calls hit the cache.
	assert.LessOrEqual(t, fsys.reads.Load(), int64(len(names)))
	before := fsys.reads.Load()
	_ = resolver.ModuleName(root)
	assert.Equal(t, before, fsys.reads.Load())
}

func TestResolver_OSFS(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, moduleroot.ManifestName), []byte(`{"name":"disk"}`), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))

	resolver := moduleroot.NewResolver(nil)

	root, ok := resolver.Resolve(filepath.Join(dir, "src", "App.tsx"))
	require.True(t, ok)
	assert.Equal(t, dir, root)
	assert.Equal(t, "disk", resolver.ModuleName(root))
}

func TestRelPath(t *testing.T) {
	t.Parallel()

	rel, err := moduleroot.RelPath(filepath.FromSlash("/repo"), filepath.FromSlash("/repo/src/a/Button.js"))
	require.NoError(t, err)
	assert.Equal(t, "src/a/Button.js", rel)
}
