package api

import (
	"net/http"

	"github.com/JaimeStill/activity-signup/internal/activities"
	"github.com/JaimeStill/activity-signup/pkg/openapi"
	"github.com/JaimeStill/activity-signup/pkg/routes"
	"github.com/JaimeStill/activity-signup/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) {
	activitiesHandler := activities.NewHandler(domain.Activities, runtime.Logger)

	spec.Components.AddSchemas(activities.Spec.Schemas())

	routes.Register(
		mux,
		"",
		spec,
		activitiesHandler.Routes(),
	)

	routes.Register(
		mux,
		"",
		nil,
		web.Routes(),
		systemRoutes(runtime),
	)
}

func systemRoutes(runtime *Runtime) routes.Group {
	metrics := promhttp.HandlerFor(runtime.Metrics, promhttp.HandlerOpts{
		Registry: runtime.Metrics,
	})

	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/healthz", Handler: handleHealthCheck},
			{Method: "GET", Pattern: "/metrics", Handler: metrics.ServeHTTP},
		},
	}
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
