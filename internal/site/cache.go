package site

import (
	"path"
	"strings"
)

// Cache-Control values.
const (
	CacheImmutable  = "public, max-age=31536000, immutable"
	CacheRevalidate = "public, max-age=3600, must-revalidate"
	CacheNone       = "no-store, no-cache, must-revalidate"
)

// CacheControl returns the Cache-Control header for name.
// In dev mode nothing is cached; otherwise fingerprinted files are
// immutable and everything else revalidates hourly.
func CacheControl(name string, dev bool) string {
	switch {
	case dev:
		return CacheNone
	case IsFingerprinted(name):
		return CacheImmutable
	default:
		return CacheRevalidate
	}
}

// IsFingerprinted reports whether a file name carries a content hash,
// e.g. "tips.a1b2c3d4.css".
func IsFingerprinted(name string) bool {
	parts := strings.Split(path.Base(name), ".")
	if len(parts) < 3 {
		return false
	}

	// Hashes are 8+ hex characters before the extension
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
