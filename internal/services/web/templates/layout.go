package templates

import "strings"

// DocumentTitle suffixes a page title with the app name.
func DocumentTitle(page PageContext, title string) string {
	appName := T(page.Loc, "core.app_name")
	title = strings.TrimSpace(title)
	if title == "" || title == appName {
		return appName
	}
	return title + " | " + appName
}

func (p PageContext) htmxScript() string {
	return strings.TrimSpace(p.HTMXScriptURL)
}
