package public

import (
	"net/http"

	"github.com/nexttodo/todolist/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Cart, h.handleCart)
	mux.HandleFunc(http.MethodGet+" "+routepath.Icon, h.handleIcon)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)

	// Method-less page patterns catch every non-GET method; the GET
	// patterns above are more specific and win for GET and HEAD.
	mux.HandleFunc(routepath.Root+"{$}", h.handleMethodNotAllowed)
	mux.HandleFunc(routepath.Cart, h.handleMethodNotAllowed)

	mux.HandleFunc(routepath.Root+"{rest...}", h.handleNotFound)
}
