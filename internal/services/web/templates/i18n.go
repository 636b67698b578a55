package templates

import (
	"fmt"

	"github.com/nexttodo/todolist/internal/platform/i18n/catalog"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string. Without a localizer, string keys resolve
// against the base-locale catalog and unknown keys render as themselves.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	format := keyString
	if value, found := catalog.Default().Message(catalog.BaseLocale, keyString); found {
		format = value
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
