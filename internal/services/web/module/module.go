// Package module defines the contract web feature modules implement to be
// mounted on the root handler.
package module

import (
	"net/http"

	"github.com/nexttodo/todolist/internal/services/web/platform/pagerender"
	webtemplates "github.com/nexttodo/todolist/internal/services/web/templates"
)

// Dependencies carries shared inputs handed to every module at mount time.
type Dependencies struct {
	Render pagerender.Settings
	Price  webtemplates.Price
}

// Mount is the result of mounting a module: a route prefix and its handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a self-contained route group.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
