package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/activity-signup/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	log.Println("service stopped gracefully")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("config finalize: %w", err)
	}

	svc, err := NewService(cfg)
	if err != nil {
		return err
	}
	if err := svc.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return svc.Shutdown(cfg.ShutdownTimeoutDuration())
}
