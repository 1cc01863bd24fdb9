// Package export publishes the rendered tips artifacts to a directory or
// an S3 bucket so they can be served by any static host.
package export

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/vango-dev/tips/internal/errors"
	"github.com/vango-dev/tips/internal/site"
)

// Publisher stores one artifact under key.
type Publisher interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// Options configures an export run.
type Options struct {
	// Prefix is prepended to every key (e.g. "tips/").
	Prefix string

	// Dev disables long-lived caching on published objects.
	Dev bool

	Logger *slog.Logger
}

// Export writes every artifact of s through pub and returns the keys
// written, in order. It stops at the first failure.
func Export(ctx context.Context, pub Publisher, s *site.Site, opts Options) ([]string, error) {
	if pub == nil {
		return nil, errors.New("E122")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "export")

	artifacts := s.Artifacts()
	keys := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return keys, errors.New("E120").Wrap(err)
		}

		key, err := CleanKey(path.Join(opts.Prefix, a.Name))
		if err != nil {
			return keys, err
		}

		if err := pub.Put(withCacheControl(ctx, site.CacheControl(key, opts.Dev)), key, a.ContentType, a.Body); err != nil {
			if errors.Code(err) != "" {
				return keys, err
			}
			return keys, errors.New("E120").WithDetail(key).Wrap(err)
		}
		logger.Debug("published", "key", key, "bytes", len(a.Body))
		keys = append(keys, key)
	}

	logger.Info("export complete", "objects", len(keys))
	return keys, nil
}

// CleanKey validates a slash-separated object key. Keys must be relative
// and free of dot segments, NUL bytes and backslashes.
func CleanKey(key string) (string, error) {
	invalid := func() (string, error) {
		return "", errors.New("E121").WithDetailf("invalid key %q", key)
	}

	if key == "" || strings.IndexByte(key, 0) != -1 || strings.Contains(key, "\\") {
		return invalid()
	}
	if strings.HasPrefix(key, "/") {
		return invalid()
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "." || seg == ".." {
			return invalid()
		}
	}

	clean := path.Clean(key)
	if clean == "." || strings.HasPrefix(clean, "../") {
		return invalid()
	}
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return invalid()
	}
	return clean, nil
}

type cacheControlKey struct{}

func withCacheControl(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, cacheControlKey{}, value)
}

// CacheControlFromContext returns the Cache-Control value Export attached
// for the object being published, or "".
func CacheControlFromContext(ctx context.Context) string {
	v, _ := ctx.Value(cacheControlKey{}).(string)
	return v
}
