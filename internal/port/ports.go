// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service layer
// from concrete implementations.
package port

import (
	"context"
	"encoding/json"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
)

// PaymentsAPI is the full surface of the Nitro Pagamentos provider as used by
// the dashboard. Every call is stateless with respect to the credentials it
// was built with; errors are surfaced unmodified.
type PaymentsAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, hash string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in *domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, hash string, upd *domain.ProductUpdate) (*domain.Product, error)

	CreateOffer(ctx context.Context, productHash string, in *domain.OfferInput) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, productHash string, upd *domain.OfferUpdate) (*domain.Offer, error)

	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, hash string) (*domain.Transaction, error)
	CreatePayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Transaction, error)
	RefundTransaction(ctx context.Context, hash string, amount *int64) (*domain.Transaction, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)

	// GetInstallments and GetCheckout are opaque passthroughs: the provider
	// shape is undocumented, so the raw JSON flows to the dashboard as-is.
	GetInstallments(ctx context.Context, amount int64) (json.RawMessage, error)
	GetCheckout(ctx context.Context, hash string) (json.RawMessage, error)
}

// ClientFactory builds a PaymentsAPI bound to the given credentials. Services
// re-read the stored configuration on every request and build a fresh client,
// so a settings save is visible immediately.
type ClientFactory func(endpoint, apiToken string) PaymentsAPI

// SettingsStore persists the two local configuration entries. Load never
// fails from the caller's perspective: absent or corrupt rows fall back to
// defaults.
type SettingsStore interface {
	LoadAPIConfig(ctx context.Context) (domain.APIConfig, error)
	UpdateNitro(ctx context.Context, upd domain.NitroUpdate) (domain.APIConfig, error)
	UpdateMercadoPago(ctx context.Context, upd domain.MercadoPagoUpdate) (domain.APIConfig, error)

	LoadBotConfig(ctx context.Context) (domain.BotConfig, error)
	UpdateBotConfig(ctx context.Context, upd domain.BotConfigUpdate) (domain.BotConfig, error)
}

// ConnectionProber validates stored credentials with a single lightweight
// probe call.
type ConnectionProber interface {
	Probe(ctx context.Context, endpoint, apiToken string) domain.ConnectionTestResult
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
