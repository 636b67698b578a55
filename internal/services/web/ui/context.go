package ui

import (
	"context"
	"strings"
)

type currentPathKey struct{}

type assetBaseURLKey struct{}

// WithCurrentPath records the request path so links can mark themselves active.
func WithCurrentPath(ctx context.Context, path string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, currentPathKey{}, strings.TrimSpace(path))
}

// CurrentPath returns the request path recorded by WithCurrentPath.
func CurrentPath(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	path, _ := ctx.Value(currentPathKey{}).(string)
	return path
}

// WithAssetBaseURL records the base URL images resolve their sources against.
func WithAssetBaseURL(ctx context.Context, base string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, assetBaseURLKey{}, strings.TrimSpace(base))
}

// AssetBaseURL returns the base URL recorded by WithAssetBaseURL.
func AssetBaseURL(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	base, _ := ctx.Value(assetBaseURLKey{}).(string)
	return base
}
