package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/activity-signup/internal/api"
	"github.com/JaimeStill/activity-signup/internal/config"
	"github.com/JaimeStill/activity-signup/internal/infrastructure"
	"github.com/JaimeStill/activity-signup/internal/server"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	infra  *infrastructure.Infrastructure
	server server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	infra := infrastructure.New(cfg)

	handler, err := api.NewHandler(cfg, infra)
	if err != nil {
		return nil, fmt.Errorf("api init failed: %w", err)
	}

	return &Service{
		infra:  infra,
		server: server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.server.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.infra.Lifecycle.WaitForStartup()
	s.infra.Logger.Info("service started", "addr", s.server.Addr())
	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Service) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")

	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return err
	}

	s.infra.Logger.Info("all subsystems shut down successfully")
	return nil
}
