package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/launchdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/launchdeck/internal/logger"
)

type Registrar func(r chi.Router, d deps.Deps)

type entry struct {
	name string
	reg  Registrar
}

var registry []entry

// Register adds a named route group, applied by RegisterAll in registration
// order. Groups attach their own guards with r.With.
func Register(name string, reg Registrar) {
	registry = append(registry, entry{name: name, reg: reg})
}

// RegisterAll mounts every group on r. Called once from httpserver.New.
func RegisterAll(r chi.Router, d deps.Deps) {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
		e.reg(r, d)
	}
	d.Logger.Debug("routes registered", logger.Strings("groups", names))
}
