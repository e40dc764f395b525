// Package app wires the route table.
package app

import (
	"net/http"

	_ "github.com/jun-uen0/hello-users/docs"
	"github.com/jun-uen0/hello-users/internal/config"
	"github.com/jun-uen0/hello-users/internal/greeting"
	"github.com/jun-uen0/hello-users/internal/middleware"
	"github.com/jun-uen0/hello-users/internal/router"
	"github.com/jun-uen0/hello-users/internal/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPrefix is where the swagger UI is mounted when enabled.
const DocsPrefix = "/docs/"

// New builds the application handler: GET / and POST /users, plus the docs UI if cfg.DocsEnabled.
func New(cfg config.Config) http.Handler {
	return Wrap(Routes(cfg))
}

// Wrap adds request logging around a route table built by Routes.
func Wrap(rt *router.Router) http.Handler {
	return middleware.NewRequestLogger(nil).Wrap(rt)
}

// Routes returns the bare route table without request logging.
func Routes(cfg config.Config) *router.Router {
	// Wire modules: service → handler
	userHandler := user.NewHandler(user.NewService())

	rt := router.New(
		router.Route{Method: http.MethodGet, Path: "/", Handler: greeting.Root},
		router.Route{Method: http.MethodPost, Path: "/users", Handler: userHandler.Create},
	)
	if cfg.DocsEnabled {
		rt.Mount(DocsPrefix, httpSwagger.Handler(httpSwagger.URL(DocsPrefix+"doc.json")))
	}
	return rt
}
