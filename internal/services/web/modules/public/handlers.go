package public

import (
	"net/http"

	module "github.com/nexttodo/todolist/internal/services/web/module"
	apperrors "github.com/nexttodo/todolist/internal/services/web/platform/errors"
	"github.com/nexttodo/todolist/internal/services/web/platform/httpx"
	"github.com/nexttodo/todolist/internal/services/web/platform/pagerender"
	"github.com/nexttodo/todolist/internal/services/web/platform/weberror"
	webstatic "github.com/nexttodo/todolist/internal/services/web/static"
	webtemplates "github.com/nexttodo/todolist/internal/services/web/templates"
)

type handlers struct {
	settings pagerender.Settings
	price    webtemplates.Price
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{
		settings: deps.Render,
		price:    deps.Price,
	}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	pc := pagerender.NewPageContext(w, r, h.settings)
	h.writePage(w, r, pc, pagerender.Page{
		Title:    webtemplates.T(pc.Loc, "home.title"),
		Fragment: webtemplates.Home(webtemplates.HomeView{Page: pc, Price: h.price}),
	})
}

func (h handlers) handleCart(w http.ResponseWriter, r *http.Request) {
	pc := pagerender.NewPageContext(w, r, h.settings)
	h.writePage(w, r, pc, pagerender.Page{
		Title:    webtemplates.T(pc.Loc, "cart.title"),
		Fragment: webtemplates.Cart(pc),
	})
}

func (h handlers) handleIcon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFileFS(w, r, webstatic.FS, webstatic.IconFile)
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.Write(w, r, h.settings, apperrors.EK(apperrors.KindNotFound, "error.not_found.title", "page not found"))
}

func (h handlers) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	weberror.Write(w, r, h.settings, apperrors.EK(apperrors.KindMethodNotAllowed, "error.method_not_allowed.title", "method not allowed"))
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, pc webtemplates.PageContext, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, pc, h.settings, page); err != nil {
		weberror.Write(w, r, h.settings, apperrors.Wrap(apperrors.KindUnknown, "render page", err))
	}
}
