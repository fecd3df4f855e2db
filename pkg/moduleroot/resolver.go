// Package moduleroot locates the nearest directory carrying a package
// manifest and reads the module name it declares.
package moduleroot

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ManifestName is the file that marks a module root.
const ManifestName = "package.json"

// FS is the filesystem surface the resolver probes.
type FS interface {
	// Exists reports whether path names an existing file.
	Exists(path string) bool

	// ReadFile returns the content of path.
	ReadFile(path string) ([]byte, error)
}

// OSFS reads the host filesystem.
type OSFS struct{}

// Exists implements FS.
func (OSFS) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile implements FS.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // Manifest paths are derived from walked directories.
}

// Resolver answers module-root queries against an FS, memoizing in a Cache.
type Resolver struct {
	fs    FS
	cache *Cache
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFS replaces the host filesystem.
func WithFS(fsys FS) Option {
	return func(r *Resolver) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// NewResolver creates a resolver backed by cache. A nil cache gets a private
// one.
func NewResolver(cache *Cache, opts ...Option) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	r := &Resolver{fs: OSFS{}, cache: cache}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cache returns the cache the resolver writes to.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve walks upward from the directory containing filePath and returns
// the first directory holding ManifestName. Every directory visited on the
// way is memoized to the answer, including a negative one.
func (r *Resolver) Resolve(filePath string) (string, bool) {
	if filePath == "" {
		return "", false
	}

	var visited []string
	result := rootEntry{}

	dir := filepath.Dir(filepath.Clean(filePath))
	for {
		if entry, ok := r.cache.root(dir); ok {
			result = entry
			break
		}

		visited = append(visited, dir)

		if r.fs.Exists(filepath.Join(dir, ManifestName)) {
			result = rootEntry{dir: dir, ok: true}
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for _, d := range visited {
		r.cache.storeRoot(d, result)
	}

	return result.dir, result.ok
}

// manifest holds the fields read from ManifestName.
type manifest struct {
	Name string `json:"name"`
}

// errNoName marks a manifest without a usable name field.
var errNoName = errors.New("manifest declares no name")

// ModuleName returns the name declared by the manifest in root, or "" when
// the manifest is unreadable, malformed or unnamed. Concurrent first reads of
// the same manifest share one filesystem read.
func (r *Resolver) ModuleName(root string) string {
	if name, ok := r.cache.name(root); ok {
		return name
	}

	value, _, _ := r.cache.group.Do(root, func() (any, error) {
		name, err := r.readName(root)
		if err != nil {
			name = ""
		}
		r.cache.storeName(root, name)
		return name, nil
	})

	name, _ := value.(string)
	return name
}

func (r *Resolver) readName(root string) (string, error) {
	data, err := r.fs.ReadFile(filepath.Join(root, ManifestName))
	if err != nil {
		return "", err
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return "", err
	}
	if m.Name == "" {
		return "", errNoName
	}
	return m.Name, nil
}

// RelPath returns filePath relative to root with forward slashes.
func RelPath(root, filePath string) (string, error) {
	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

var _ FS = OSFS{}
