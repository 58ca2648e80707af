package service

import (
	"context"
	"time"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/infra/observability"
	"github.com/rmacedo/nitro-admin-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("service")

// recentLimit caps the recent-transactions slice on the summary view.
const recentLimit = 5

// DashboardService derives summary statistics from the raw provider lists.
type DashboardService struct {
	store   port.SettingsStore
	clients port.ClientFactory
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewDashboardService creates the dashboard service with its dependencies
// injected.
func NewDashboardService(store port.SettingsStore, clients port.ClientFactory, metrics *observability.Metrics, logger *zap.Logger) *DashboardService {
	return &DashboardService{store: store, clients: clients, metrics: metrics, logger: logger}
}

// Summarize fetches products and transactions concurrently and reduces them
// to the dashboard summary. Both calls must succeed; there is no
// partial-result rendering.
func (s *DashboardService) Summarize(ctx context.Context) (*domain.DashboardSummary, error) {
	ctx, span := tracer.Start(ctx, "Dashboard.Summarize")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordOpDuration("dashboard_summary", time.Since(start))
	}()

	cfg, err := s.store.LoadAPIConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.IsConfigured() {
		return nil, &domain.ErrUnconfigured{}
	}
	api := s.clients(cfg.Nitro.Endpoint, cfg.Nitro.APIToken)

	var (
		products     []domain.Product
		transactions []domain.Transaction
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := api.ListProducts(gCtx)
		track(s.metrics, "ListProducts", err)
		if err != nil {
			s.logger.Error("dashboard: product list failed", zap.Error(err))
			return err
		}
		products = p
		return nil
	})

	g.Go(func() error {
		t, err := api.ListTransactions(gCtx)
		track(s.metrics, "ListTransactions", err)
		if err != nil {
			s.logger.Error("dashboard: transaction list failed", zap.Error(err))
			return err
		}
		transactions = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := BuildSummary(products, transactions)
	return &summary, nil
}

// BuildSummary is the pure reduction over the raw lists. Sales are summed in
// minor currency units over paid transactions only; customers are counted by
// distinct email, exact match; the recent slice keeps provider order.
func BuildSummary(products []domain.Product, transactions []domain.Transaction) domain.DashboardSummary {
	var totalSales int64
	emails := make(map[string]struct{}, len(transactions))
	for _, t := range transactions {
		if t.Status == domain.StatusPaid {
			totalSales += t.Amount
		}
		emails[t.Customer.Email] = struct{}{}
	}

	recent := transactions
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	if recent == nil {
		recent = []domain.Transaction{}
	}

	return domain.DashboardSummary{
		TotalSales:         totalSales,
		TotalProducts:      len(products),
		TotalTransactions:  len(transactions),
		TotalCustomers:     len(emails),
		RecentTransactions: recent,
	}
}

// track counts one provider call and, when failed, one provider error.
func track(m *observability.Metrics, op string, err error) {
	m.IncrProviderCall(op)
	if err != nil {
		m.IncrProviderError(op)
	}
}
