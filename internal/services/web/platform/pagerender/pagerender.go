// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/nexttodo/todolist/internal/services/web/platform/httpx"
	webi18n "github.com/nexttodo/todolist/internal/services/web/platform/i18n"
	webtemplates "github.com/nexttodo/todolist/internal/services/web/templates"
	"github.com/nexttodo/todolist/internal/services/web/ui"
)

// Settings carries the process-wide render inputs.
type Settings struct {
	AssetBaseURL  string
	HTMXScriptURL string
}

// Page describes a page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// NewPageContext resolves the per-request render context.
func NewPageContext(w http.ResponseWriter, r *http.Request, settings Settings) webtemplates.PageContext {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	currentPath := ""
	if r != nil && r.URL != nil {
		currentPath = r.URL.Path
	}
	return webtemplates.PageContext{
		Lang:          lang,
		Loc:           loc,
		CurrentPath:   currentPath,
		HTMXScriptURL: settings.HTMXScriptURL,
	}
}

// WritePage renders the page into a buffer and writes it. HTMX requests
// receive the main region plus a title element; everything else receives
// the full document.
func WritePage(w http.ResponseWriter, r *http.Request, pc webtemplates.PageContext, settings Settings, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	ctx := renderContext(httpx.RequestContext(r), pc, settings)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.FragmentTitle(webtemplates.DocumentTitle(pc, page.Title)).Render(ctx, &buf); err != nil {
			return err
		}
		if err := webtemplates.MainContent().Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
	} else {
		layout := webtemplates.Layout(pc, page.Title)
		if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
	}
	w.Header().Add("Vary", "HX-Request")
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}

func renderContext(ctx context.Context, pc webtemplates.PageContext, settings Settings) context.Context {
	ctx = ui.WithCurrentPath(ctx, pc.CurrentPath)
	return ui.WithAssetBaseURL(ctx, settings.AssetBaseURL)
}
