// Package static embeds the stylesheet and images served by the web surface.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.png
var FS embed.FS

// IconFile names the landing page icon inside FS.
const IconFile = "icon.png"
