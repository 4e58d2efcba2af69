// Package api assembles the activity signup HTTP surface: domain systems,
// routes, the OpenAPI document, and the middleware stack.
package api

import (
	"net/http"

	"github.com/JaimeStill/activity-signup/internal/config"
	"github.com/JaimeStill/activity-signup/internal/infrastructure"
	"github.com/JaimeStill/activity-signup/pkg/middleware"
	"github.com/JaimeStill/activity-signup/pkg/openapi"
)

// NewHandler builds the complete service handler.
func NewHandler(cfg *config.Config, infra *infrastructure.Infrastructure) (http.Handler, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	spec := openapi.NewSpec(cfg.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.OpenAPI.Description)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	mw := middleware.New()
	mw.Use(middleware.Logger(runtime.Logger))
	mw.Use(middleware.TrimSlash("/static/"))
	mw.Use(middleware.CORS(&cfg.CORS))

	return mw.Apply(mux), nil
}
