// Package modules lists the feature modules mounted by the web service.
package modules

import (
	module "github.com/nexttodo/todolist/internal/services/web/module"
	"github.com/nexttodo/todolist/internal/services/web/modules/public"
)

// DefaultPublicModules returns the stable public modules.
func DefaultPublicModules() []module.Module {
	return []module.Module{
		public.New(),
	}
}
