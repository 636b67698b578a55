// Package i18n resolves the request language and the message printer used to
// localize page copy.
package i18n

import (
	"net/http"
	"strings"

	"github.com/nexttodo/todolist/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangCookieName persists an explicit language choice.
	LangCookieName = "todolist_lang"
	// LangQueryParam lets a link switch the page language.
	LangQueryParam = "lang"

	langCookieMaxAge = 365 * 24 * 60 * 60
)

// Localizer is the printer surface templates consume.
type Localizer = *message.Printer

var (
	supported = supportedTags()
	matcher   = language.NewMatcher(supported)
)

func supportedTags() []language.Tag {
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range catalog.Default().Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Match returns the supported tag closest to the candidate preferences.
// Candidates are tried in order; the first confident match wins.
func Match(candidates ...string) language.Tag {
	for _, candidate := range candidates {
		if tag, ok := match(candidate); ok {
			return tag
		}
	}
	return supported[0]
}

func match(candidate string) (language.Tag, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return language.Und, false
	}
	tags, _, err := language.ParseAcceptLanguage(candidate)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// ResolveTag picks the request language: explicit query parameter, then the
// language cookie, then Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return supported[0]
	}
	var candidates []string
	if r.URL != nil {
		candidates = append(candidates, r.URL.Query().Get(LangQueryParam))
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		candidates = append(candidates, cookie.Value)
	}
	candidates = append(candidates, r.Header.Get("Accept-Language"))
	return Match(candidates...)
}

// ResolveLocalizer returns the printer and language for the request. An
// explicit lang query parameter is remembered in a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	tag := ResolveTag(r)
	if w != nil && r != nil && r.URL != nil {
		if explicit, ok := match(r.URL.Query().Get(LangQueryParam)); ok && explicit == tag {
			http.SetCookie(w, &http.Cookie{
				Name:     LangCookieName,
				Value:    tag.String(),
				Path:     "/",
				MaxAge:   langCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
	}
	return message.NewPrinter(tag), tag.String()
}
