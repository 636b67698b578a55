// Package ui holds the pre-built interface primitives pages compose: buttons,
// in-app links and images. Pages treat them as opaque building blocks; the
// markup and class vocabulary live here and nowhere else.
package ui
