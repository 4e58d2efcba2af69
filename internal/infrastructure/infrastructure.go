// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies (lifecycle, logging, metrics) that domain systems require.
package infrastructure

import (
	"log/slog"

	"github.com/JaimeStill/activity-signup/internal/config"
	"github.com/JaimeStill/activity-signup/pkg/lifecycle"
	"github.com/JaimeStill/activity-signup/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *prometheus.Registry
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) *Infrastructure {
	return NewWithLogger(logging.New(&cfg.Logging))
}

// NewWithLogger creates an Infrastructure around an existing logger.
// The metrics registry carries the Go runtime and process collectors.
func NewWithLogger(logger *slog.Logger) *Infrastructure {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Metrics:   reg,
	}
}
