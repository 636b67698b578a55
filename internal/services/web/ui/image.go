package ui

import (
	"net/url"
	"strings"

	"github.com/nexttodo/todolist/internal/services/web/routepath"
)

// ImageProps configures Image. Width and Height are emitted only when positive.
type ImageProps struct {
	Src    string
	Alt    string
	Width  int
	Height int
	// Eager skips lazy loading for images above the fold.
	Eager bool
}

func (p ImageProps) loading() string {
	if p.Eager {
		return "eager"
	}
	return "lazy"
}

// ResolveAssetURL joins an image source onto base. Absolute http(s) sources
// are returned unchanged; with no usable base the in-app path is returned.
func ResolveAssetURL(base, src string) string {
	src = strings.TrimSpace(src)
	if parsed, err := url.Parse(src); err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		return src
	}
	local := routepath.Resolve(src)
	base = strings.TrimSpace(base)
	if base == "" {
		return local
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return local
	}
	joined, err := url.JoinPath(base, local)
	if err != nil {
		return local
	}
	return joined
}
