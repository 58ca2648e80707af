package service

import (
	"context"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/infra/observability"
	"github.com/rmacedo/nitro-admin-go/internal/port"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionsService forwards transaction reads and payment writes to the
// provider and enforces the local refund guard.
type TransactionsService struct {
	store   port.SettingsStore
	clients port.ClientFactory
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewTransactionsService creates the transactions service.
func NewTransactionsService(store port.SettingsStore, clients port.ClientFactory, metrics *observability.Metrics, logger *zap.Logger) *TransactionsService {
	return &TransactionsService{store: store, clients: clients, metrics: metrics, logger: logger}
}

func (s *TransactionsService) api(ctx context.Context) (port.PaymentsAPI, error) {
	cfg, err := s.store.LoadAPIConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.IsConfigured() {
		return nil, &domain.ErrUnconfigured{}
	}
	return s.clients(cfg.Nitro.Endpoint, cfg.Nitro.APIToken), nil
}

// List returns all transactions in provider order.
func (s *TransactionsService) List(ctx context.Context) ([]domain.Transaction, error) {
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := api.ListTransactions(ctx)
	track(s.metrics, "ListTransactions", err)
	return transactions, err
}

// Get fetches one transaction by hash.
func (s *TransactionsService) Get(ctx context.Context, hash string) (*domain.Transaction, error) {
	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	transaction, err := api.GetTransaction(ctx, hash)
	track(s.metrics, "GetTransaction", err)
	return transaction, err
}

// CreatePayment validates the minimum payload and forwards it once. Payment
// creation is never retried: a transport error after submission leaves the
// provider state unknown and the operator must check before resubmitting.
func (s *TransactionsService) CreatePayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Transaction, error) {
	if req.OfferHash == "" {
		return nil, &domain.ErrValidation{Field: "offer_hash", Message: "must not be empty"}
	}
	if req.PaymentMethod == "" {
		return nil, &domain.ErrValidation{Field: "payment_method", Message: "must not be empty"}
	}
	if req.Customer.Email == "" {
		return nil, &domain.ErrValidation{Field: "customer.email", Message: "must not be empty"}
	}

	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}
	transaction, err := api.CreatePayment(ctx, req)
	track(s.metrics, "CreatePayment", err)
	if err == nil {
		s.logger.Info("payment created",
			zap.String("hash", transaction.Hash),
			zap.String("method", string(req.PaymentMethod)),
		)
	}
	return transaction, err
}

// Refund refunds a paid transaction, fully or partially. The current status is
// checked first; anything other than paid is rejected locally without touching
// the provider.
func (s *TransactionsService) Refund(ctx context.Context, hash string, amount *int64) (*domain.Transaction, error) {
	if amount != nil && *amount <= 0 {
		return nil, &domain.ErrValidation{Field: "amount", Message: "must be positive"}
	}

	api, err := s.api(ctx)
	if err != nil {
		return nil, err
	}

	current, err := api.GetTransaction(ctx, hash)
	track(s.metrics, "GetTransaction", err)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.StatusPaid {
		return nil, &domain.ErrRefundNotAllowed{Hash: hash, Status: current.Status}
	}

	// Reference id ties the audit log line to the provider call. Refunds, like
	// payments, are issued exactly once.
	ref := uuid.NewString()
	s.logger.Info("refund requested",
		zap.String("ref", ref),
		zap.String("hash", hash),
		zap.Bool("partial", amount != nil),
	)

	refunded, err := api.RefundTransaction(ctx, hash, amount)
	track(s.metrics, "RefundTransaction", err)
	if err != nil {
		s.logger.Error("refund failed", zap.String("ref", ref), zap.String("hash", hash), zap.Error(err))
		return nil, err
	}
	s.logger.Info("refund completed",
		zap.String("ref", ref),
		zap.String("hash", hash),
		zap.String("status", string(refunded.Status)),
	)
	return refunded, nil
}
