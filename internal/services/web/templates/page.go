// Package templates holds the page fragments and document shell rendered by
// web modules.
package templates

import (
	"strings"

	"golang.org/x/text/language"
)

// PageContext provides shared render context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	// HTMXScriptURL is optional; without it boosted links behave as plain anchors.
	HTMXScriptURL string
}

// Tag returns the page language, defaulting to American English.
func (p PageContext) Tag() language.Tag {
	lang := strings.TrimSpace(p.Lang)
	if lang == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
