package handler

import (
	"net/http"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Transactions and payments
// ============================================================

func listTransactionsHandler(svc *service.TransactionsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/transactions")
		defer span.End()

		transactions, err := svc.List(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, transactions)
	}
}

func getTransactionHandler(svc *service.TransactionsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/transactions/{hash}")
		defer span.End()

		transaction, err := svc.Get(ctx, chi.URLParam(r, "hash"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, transaction)
	}
}

func createPaymentHandler(svc *service.TransactionsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/transactions")
		defer span.End()

		var req domain.PaymentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		transaction, err := svc.CreatePayment(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, transaction)
	}
}

// refundRequest is the optional body of the refund endpoint. Omitting the
// amount (or the whole body) requests a full refund.
type refundRequest struct {
	Amount *int64 `json:"amount,omitempty"`
}

func refundHandler(svc *service.TransactionsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/transactions/{hash}/refund")
		defer span.End()

		var req refundRequest
		if !decodeOptionalBody(w, r, &req) {
			return
		}
		transaction, err := svc.Refund(ctx, chi.URLParam(r, "hash"), req.Amount)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, transaction)
	}
}
