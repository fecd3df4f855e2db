// Package identity derives the stable per-file hash that prefixes every
// component ID.
package identity

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/yaklabco/styledid/pkg/moduleroot"
)

// HashFunc maps a seed to a short, identifier-safe token. It must be
// deterministic.
type HashFunc func(seed string) string

// XXHash is the default HashFunc: xxhash64 rendered in lowercase base36.
func XXHash(seed string) string {
	return strconv.FormatUint(xxhash.Sum64String(seed), 36)
}

// Hasher computes file hashes.
type Hasher struct {
	resolver *moduleroot.Resolver
	hash     HashFunc
}

// NewHasher creates a Hasher. A nil hash uses XXHash; a nil resolver gets a
// private cache over the host filesystem.
func NewHasher(resolver *moduleroot.Resolver, hash HashFunc) *Hasher {
	if resolver == nil {
		resolver = moduleroot.NewResolver(nil)
	}
	if hash == nil {
		hash = XXHash
	}
	return &Hasher{resolver: resolver, hash: hash}
}

// Seed returns the text FileHash feeds to the hash function.
//
// Inside a module the seed is the module name followed by the file's
// root-relative, slash-separated path, so it survives moves of the checkout
// and edits to the file. A manifest without a name contributes "". Outside
// any module the seed is the source itself and identical files in unrelated
// locations collide.
func (h *Hasher) Seed(filePath string, source []byte) string {
	root, ok := h.resolver.Resolve(filePath)
	if !ok {
		return string(source)
	}

	name := h.resolver.ModuleName(root)
	rel, err := moduleroot.RelPath(root, filePath)
	if err != nil || rel == "" || rel == "." {
		return name + string(source)
	}
	return name + rel
}

// FileHash returns the hash for filePath.
func (h *Hasher) FileHash(filePath string, source []byte) string {
	return h.hash(h.Seed(filePath, source))
}
