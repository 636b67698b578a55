package ui

import (
	"context"
	"strings"

	"github.com/nexttodo/todolist/internal/services/web/routepath"
)

// LinkProps configures Link.
type LinkProps struct {
	Href  string
	Class string
	// NoBoost disables htmx boosting for targets that must load as a full page.
	NoBoost bool
}

func (p LinkProps) className() string {
	if extra := strings.TrimSpace(p.Class); extra != "" {
		return "link " + extra
	}
	return "link"
}

func isCurrent(ctx context.Context, href string) bool {
	current := CurrentPath(ctx)
	return current != "" && routepath.IsActive(current, href)
}
