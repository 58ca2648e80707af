package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func TestTestConnectionUsesStoredCredentials(t *testing.T) {
	prober := &fakeProber{result: domain.ConnectionTestResult{OK: true, Status: 200, LatencyMs: 12}}
	svc := service.NewSettingsService(newFakeStore("stored-tok"), prober, zap.NewNop())

	result, err := svc.Test(context.Background(), service.ConnectionTestInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.OK {
		t.Error("expected ok result")
	}
	if prober.token != "stored-tok" {
		t.Errorf("expected stored token, probe got %q", prober.token)
	}
	if prober.endpoint != domain.DefaultNitroEndpoint {
		t.Errorf("expected default endpoint, probe got %q", prober.endpoint)
	}
}

func TestTestConnectionOverrides(t *testing.T) {
	prober := &fakeProber{result: domain.ConnectionTestResult{OK: true, Status: 200}}
	svc := service.NewSettingsService(newFakeStore("stored-tok"), prober, zap.NewNop())

	_, err := svc.Test(context.Background(), service.ConnectionTestInput{
		Endpoint: strPtr("https://staging.example.com/api/"),
		APIToken: strPtr("try-me"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prober.endpoint != "https://staging.example.com/api/" || prober.token != "try-me" {
		t.Errorf("overrides not applied: endpoint=%q token=%q", prober.endpoint, prober.token)
	}

	// The override is transient, nothing was saved.
	cfg, _ := svc.Get(context.Background())
	if cfg.Nitro.APIToken != "stored-tok" {
		t.Errorf("test must not persist credentials, stored token is %q", cfg.Nitro.APIToken)
	}
}

func TestTestConnectionRejectsEmptyToken(t *testing.T) {
	svc := service.NewSettingsService(newFakeStore(""), &fakeProber{}, zap.NewNop())

	_, err := svc.Test(context.Background(), service.ConnectionTestInput{})
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateNitroMerges(t *testing.T) {
	svc := service.NewSettingsService(newFakeStore("old-tok"), &fakeProber{}, zap.NewNop())

	cfg, err := svc.UpdateNitro(context.Background(), domain.NitroUpdate{APIToken: strPtr("new-tok")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Nitro.APIToken != "new-tok" {
		t.Errorf("expected updated token, got %q", cfg.Nitro.APIToken)
	}
	if cfg.Nitro.Endpoint != domain.DefaultNitroEndpoint {
		t.Errorf("endpoint must survive a token-only update, got %q", cfg.Nitro.Endpoint)
	}
}
