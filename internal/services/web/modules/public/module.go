// Package public serves the unauthenticated pages: home, cart, the landing
// icon and the health check.
package public

import (
	"net/http"

	module "github.com/nexttodo/todolist/internal/services/web/module"
	"github.com/nexttodo/todolist/internal/services/web/routepath"
)

// Module mounts the public routes at the root prefix.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "public" }

// Mount builds the public route handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
