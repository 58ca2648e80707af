package service

import (
	"context"
	"encoding/json"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/infra/mercadopago"
	"github.com/rmacedo/nitro-admin-go/internal/port"

	"go.uber.org/zap"
)

// MercadoPagoService forwards raw payment payloads to the secondary provider
// using the stored access token. Like the primary client, the gateway is
// rebuilt per request so a settings save takes effect immediately.
type MercadoPagoService struct {
	store  port.SettingsStore
	logger *zap.Logger
}

// NewMercadoPagoService creates the secondary provider service.
func NewMercadoPagoService(store port.SettingsStore, logger *zap.Logger) *MercadoPagoService {
	return &MercadoPagoService{store: store, logger: logger}
}

// CreatePayment builds a gateway from the stored access token and forwards
// the payload.
func (s *MercadoPagoService) CreatePayment(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	cfg, err := s.store.LoadAPIConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.MercadoPago == nil || cfg.MercadoPago.AccessToken == "" {
		return nil, &domain.ErrUnconfigured{}
	}

	gw, err := mercadopago.NewGateway(cfg.MercadoPago.AccessToken, s.logger)
	if err != nil {
		return nil, err
	}
	return gw.CreatePayment(ctx, payload)
}
