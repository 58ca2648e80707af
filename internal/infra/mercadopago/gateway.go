// Package mercadopago wraps the optional secondary payment provider. The
// dashboard only stores its credentials and forwards raw payment payloads;
// no transaction state lives here.
package mercadopago

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no access token has been saved.
var ErrNotConfigured = errors.New("mercado pago credentials not configured")

// Gateway is a thin adapter over the Mercado Pago SDK, built per request from
// the stored access token.
type Gateway struct {
	client payment.Client
	logger *zap.Logger
}

// NewGateway validates the access token with the SDK and returns a ready
// client.
func NewGateway(accessToken string, logger *zap.Logger) (*Gateway, error) {
	if accessToken == "" {
		return nil, ErrNotConfigured
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago sdk config: %w", err)
	}
	return &Gateway{client: payment.NewClient(cfg), logger: logger}, nil
}

// CreatePayment forwards a raw payment payload to Mercado Pago and returns
// the provider response as raw JSON. The payload shape is owned by the
// provider; this service does not validate it beyond JSON decoding.
func (g *Gateway) CreatePayment(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("decode payment payload: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("mercado pago create failed", zap.Error(err))
		return nil, err
	}
	g.logger.Info("mercado pago payment created",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode provider response: %w", err)
	}
	return raw, nil
}
