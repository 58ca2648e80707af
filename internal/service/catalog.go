package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/infra/observability"
	"github.com/rmacedo/nitro-admin-go/internal/port"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProviderOperations lists every remote operation name used in metrics
// labels, so the snapshot endpoint can sum over them.
var ProviderOperations = []string{
	"ListProducts", "GetProduct", "CreateProduct", "UpdateProduct",
	"CreateOffer", "UpdateOffer",
	"ListTransactions", "GetTransaction", "CreatePayment", "RefundTransaction",
	"ListCategories", "GetInstallments", "GetCheckout",
}

// CatalogPage bundles the two lists the products view renders together.
type CatalogPage struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
}

// CatalogService forwards product, offer and category operations to the
// provider, gated on stored credentials.
type CatalogService struct {
	store        port.SettingsStore
	clients      port.ClientFactory
	installments port.Cache[json.RawMessage]
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewCatalogService creates the catalog service.
func NewCatalogService(store port.SettingsStore, clients port.ClientFactory, installments port.Cache[json.RawMessage], metrics *observability.Metrics, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:        store,
		clients:      clients,
		installments: installments,
		metrics:      metrics,
		logger:       logger,
	}
}

// api builds a provider client from the current stored credentials, or fails
// with ErrUnconfigured before any network call.
func (s *CatalogService) api(ctx context.Context) (port.PaymentsAPI, error) {
	cfg, err := s.store.LoadAPIConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.IsConfigured() {
		return nil, &domain.ErrUnconfigured{}
	}
	return s.clients(cfg.Nitro.Endpoint, cfg.Nitro.APIToken), nil
}

// Page fetches products and categories concurrently for the products view.
func (s *CatalogService) Page(ctx context.Context) (*CatalogPage, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Page")
	defer span.End()

	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}

	page := &CatalogPage{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := api.ListProducts(gCtx)
		track(s.metrics, "ListProducts", err)
		if err != nil {
			return err
		}
		page.Products = p
		return nil
	})

	g.Go(func() error {
		c, err := api.ListCategories(gCtx)
		track(s.metrics, "ListCategories", err)
		if err != nil {
			return err
		}
		page.Categories = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// ListProducts returns the full catalog in provider order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	products, err := api.ListProducts(ctx)
	track(s.metrics, "ListProducts", err)
	return products, err
}

// GetProduct fetches one product by hash.
func (s *CatalogService) GetProduct(ctx context.Context, hash string) (*domain.Product, error) {
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	product, err := api.GetProduct(ctx, hash)
	track(s.metrics, "GetProduct", err)
	return product, err
}

// CreateProduct validates operator input and forwards the creation.
func (s *CatalogService) CreateProduct(ctx context.Context, in *domain.ProductInput) (*domain.Product, error) {
	if in.Title == "" {
		return nil, &domain.ErrValidation{Field: "title", Message: "must not be empty"}
	}
	if in.Amount < 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "must not be negative"}
	}
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	product, err := api.CreateProduct(ctx, in)
	track(s.metrics, "CreateProduct", err)
	if err == nil {
		s.logger.Info("product created", zap.String("hash", product.Hash))
	}
	return product, err
}

// UpdateProduct forwards a partial update for an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, hash string, upd *domain.ProductUpdate) (*domain.Product, error) {
	if upd.Amount != nil && *upd.Amount < 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "must not be negative"}
	}
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	product, err := api.UpdateProduct(ctx, hash, upd)
	track(s.metrics, "UpdateProduct", err)
	return product, err
}

// CreateOffer attaches a new offer to a product.
func (s *CatalogService) CreateOffer(ctx context.Context, productHash string, in *domain.OfferInput) (*domain.Offer, error) {
	if in.Amount < 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "must not be negative"}
	}
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	offer, err := api.CreateOffer(ctx, productHash, in)
	track(s.metrics, "CreateOffer", err)
	return offer, err
}

// UpdateOffer forwards a partial offer update.
func (s *CatalogService) UpdateOffer(ctx context.Context, productHash string, upd *domain.OfferUpdate) (*domain.Offer, error) {
	if upd.Amount != nil && *upd.Amount < 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "must not be negative"}
	}
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	offer, err := api.UpdateOffer(ctx, productHash, upd)
	track(s.metrics, "UpdateOffer", err)
	return offer, err
}

// ListCategories returns the provider's category list.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := api.ListCategories(ctx)
	track(s.metrics, "ListCategories", err)
	return categories, err
}

// GetInstallments returns the provider's installment options for an amount,
// memoized briefly since the options for a fixed amount rarely change.
func (s *CatalogService) GetInstallments(ctx context.Context, amount int64) (json.RawMessage, error) {
	if amount <= 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "must be positive"}
	}

	key := fmt.Sprintf("installments:%d", amount)
	if cached, ok := s.installments.Get(key); ok {
		s.metrics.IncrCacheHit("installments")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("installments")

	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := api.GetInstallments(ctx, amount)
	track(s.metrics, "GetInstallments", err)
	if err != nil {
		return nil, err
	}
	s.installments.Set(key, raw)
	return raw, nil
}

// GetCheckout passes the public checkout lookup through. This is the only
// operation that works unconfigured: the upstream call carries no token.
func (s *CatalogService) GetCheckout(ctx context.Context, hash string) (json.RawMessage, error) {
	cfg, err := s.store.LoadAPIConfig(ctx)
	if err != nil {
		return nil, err
	}
	api := s.clients(cfg.Nitro.Endpoint, cfg.Nitro.APIToken)
	raw, err := api.GetCheckout(ctx, hash)
	track(s.metrics, "GetCheckout", err)
	return raw, err
}
