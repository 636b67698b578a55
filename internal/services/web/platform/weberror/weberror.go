// Package weberror renders shared error pages for web modules.
package weberror

import (
	"log"
	"net/http"

	apperrors "github.com/nexttodo/todolist/internal/services/web/platform/errors"
	"github.com/nexttodo/todolist/internal/services/web/platform/httpx"
	"github.com/nexttodo/todolist/internal/services/web/platform/pagerender"
	webtemplates "github.com/nexttodo/todolist/internal/services/web/templates"
)

// Copy returns the title and body message keys for a status code.
func Copy(statusCode int) (titleKey, bodyKey string) {
	switch statusCode {
	case http.StatusNotFound:
		return "error.not_found.title", "error.not_found.body"
	case http.StatusMethodNotAllowed:
		return "error.method_not_allowed.title", "error.method_not_allowed.body"
	default:
		return "error.generic.title", "error.generic.body"
	}
}

// Write renders an error page with the status mapped from err. When the page
// itself fails to render, a plain-text status response is written instead.
func Write(w http.ResponseWriter, r *http.Request, settings pagerender.Settings, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if statusCode >= http.StatusInternalServerError {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		log.Printf("web error path=%s status=%d request_id=%s err=%v", path, statusCode, httpx.RequestIDFrom(r), err)
	}

	pc := pagerender.NewPageContext(w, r, settings)
	titleKey, bodyKey := Copy(statusCode)
	if key := apperrors.LocalizationKey(err); key != "" {
		titleKey = key
	}
	page := pagerender.Page{
		Title:      webtemplates.T(pc.Loc, titleKey),
		StatusCode: statusCode,
		Fragment: webtemplates.ErrorPage(webtemplates.ErrorView{
			Page:       pc,
			StatusCode: statusCode,
			TitleKey:   titleKey,
			BodyKey:    bodyKey,
		}),
	}
	if renderErr := pagerender.WritePage(w, r, pc, settings, page); renderErr != nil {
		log.Printf("render error page failed status=%d request_id=%s err=%v", statusCode, httpx.RequestIDFrom(r), renderErr)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}
