package service

import (
	"context"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/port"

	"go.uber.org/zap"
)

// ConnectionTestInput optionally overrides the stored credentials so the
// operator can try values before saving them.
type ConnectionTestInput struct {
	Endpoint *string `json:"endpoint,omitempty"`
	APIToken *string `json:"api_token,omitempty"`
}

// SettingsService owns the locally persisted connection configuration and the
// connection tester.
type SettingsService struct {
	store  port.SettingsStore
	prober port.ConnectionProber
	logger *zap.Logger
}

// NewSettingsService creates the settings service.
func NewSettingsService(store port.SettingsStore, prober port.ConnectionProber, logger *zap.Logger) *SettingsService {
	return &SettingsService{store: store, prober: prober, logger: logger}
}

// Get returns the stored configuration, defaults included.
func (s *SettingsService) Get(ctx context.Context) (domain.APIConfig, error) {
	return s.store.LoadAPIConfig(ctx)
}

// UpdateNitro merges a partial update into the primary provider group and
// returns the result. An explicitly empty endpoint reverts to the default.
func (s *SettingsService) UpdateNitro(ctx context.Context, upd domain.NitroUpdate) (domain.APIConfig, error) {
	cfg, err := s.store.UpdateNitro(ctx, upd)
	if err != nil {
		return domain.APIConfig{}, err
	}
	s.logger.Info("nitro settings saved",
		zap.String("endpoint", cfg.Nitro.Endpoint),
		zap.Bool("token_set", cfg.Nitro.APIToken != ""),
	)
	return cfg, nil
}

// UpdateMercadoPago merges a partial update into the secondary provider group.
func (s *SettingsService) UpdateMercadoPago(ctx context.Context, upd domain.MercadoPagoUpdate) (domain.APIConfig, error) {
	cfg, err := s.store.UpdateMercadoPago(ctx, upd)
	if err != nil {
		return domain.APIConfig{}, err
	}
	s.logger.Info("mercado pago settings saved")
	return cfg, nil
}

// Test probes the provider with the given credentials, falling back to the
// stored ones for any field left out. The result is returned, never persisted.
func (s *SettingsService) Test(ctx context.Context, in ConnectionTestInput) (domain.ConnectionTestResult, error) {
	cfg, err := s.store.LoadAPIConfig(ctx)
	if err != nil {
		return domain.ConnectionTestResult{}, err
	}

	endpoint := cfg.Nitro.Endpoint
	if in.Endpoint != nil && *in.Endpoint != "" {
		endpoint = *in.Endpoint
	}
	token := cfg.Nitro.APIToken
	if in.APIToken != nil {
		token = *in.APIToken
	}
	if token == "" {
		return domain.ConnectionTestResult{}, &domain.ErrValidation{Field: "api_token", Message: "must not be empty"}
	}

	result := s.prober.Probe(ctx, endpoint, token)
	s.logger.Info("connection test",
		zap.Bool("ok", result.OK),
		zap.Int("status", result.Status),
		zap.Int64("latency_ms", result.LatencyMs),
	)
	return result, nil
}
