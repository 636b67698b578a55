// Package routepath stores canonical HTTP paths for web modules and resolves
// in-app link targets.
package routepath

import (
	"net/url"
	"path"
	"strings"
)

const (
	Root         = "/"
	Cart         = "/cart"
	Health       = "/up"
	Icon         = "/icon.png"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "app.css"
)

// Resolve turns an href into a root-relative in-app path.
//
// Relative paths are anchored at the root, "." and ".." segments are cleaned,
// query strings and fragments are kept. A fragment-only href stays an
// in-page anchor. Hrefs with a scheme or host are not in-app and resolve to
// Root.
func Resolve(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return Root
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return Root
	}
	if u.Path == "" && u.RawQuery == "" && u.Fragment != "" {
		return "#" + u.EscapedFragment()
	}
	p := u.Path
	if p == "" {
		p = Root
	}
	trailing := strings.HasSuffix(p, "/") && p != "/"
	p = path.Clean("/" + p)
	if trailing {
		p += "/"
	}
	out := p
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		out += "#" + u.EscapedFragment()
	}
	return out
}

// IsActive reports whether target names the same page as current, ignoring
// query strings and a trailing slash.
func IsActive(current, target string) bool {
	return trimForCompare(Resolve(current)) == trimForCompare(Resolve(target))
}

func trimForCompare(p string) string {
	if idx := strings.IndexAny(p, "?#"); idx >= 0 {
		p = p[:idx]
	}
	if p != Root {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}
