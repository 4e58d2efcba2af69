package main

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/JaimeStill/activity-signup/internal/config"
)

func TestService_Lifecycle(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg := &config.Config{}
	cfg.Logging.Level = "error"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0

	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	if err := svc.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if !svc.infra.Lifecycle.Ready() {
		t.Error("lifecycle should be ready after Start")
	}

	resp, err := http.Get("http://" + svc.server.Addr() + "/activities")
	if err != nil {
		t.Fatalf("GET /activities error = %v", err)
	}
	defer resp.Body.Close()

	var list map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode error = %v", err)
	}

	if _, ok := list["Chess Club"]; !ok {
		t.Error("seeded activities should be served")
	}

	if err := svc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}

func TestNewService_BadSeed(t *testing.T) {
	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	cfg.Registry.SeedFile = t.TempDir() + "/missing.toml"

	if _, err := NewService(cfg); err == nil {
		t.Error("NewService() should fail with an unreadable seed file")
	}
}
