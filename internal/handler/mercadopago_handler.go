package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rmacedo/nitro-admin-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Mercado Pago passthrough — POST /v1/mercadopago/payments
// ============================================================

func mercadoPagoPaymentHandler(svc *service.MercadoPagoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/mercadopago/payments")
		defer span.End()

		payload, err := io.ReadAll(r.Body)
		if err != nil || len(payload) == 0 || !json.Valid(payload) {
			writeError(w, http.StatusBadRequest, "request body must be a JSON payment payload")
			return
		}

		resp, err := svc.CreatePayment(ctx, payload)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeRawJSON(w, http.StatusCreated, resp)
	}
}
