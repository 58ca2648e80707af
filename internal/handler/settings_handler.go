package handler

import (
	"net/http"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Local settings — /v1/settings
// ============================================================

func getSettingsHandler(svc *service.SettingsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/settings")
		defer span.End()

		cfg, err := svc.Get(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func updateNitroSettingsHandler(svc *service.SettingsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/settings/nitro")
		defer span.End()

		var upd domain.NitroUpdate
		if !decodeBody(w, r, &upd) {
			return
		}
		cfg, err := svc.UpdateNitro(ctx, upd)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func updateMercadoPagoSettingsHandler(svc *service.SettingsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/settings/mercadopago")
		defer span.End()

		var upd domain.MercadoPagoUpdate
		if !decodeBody(w, r, &upd) {
			return
		}
		cfg, err := svc.UpdateMercadoPago(ctx, upd)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

// testConnectionHandler probes the provider with stored or overridden
// credentials. Probe failures come back as a 200 with ok=false; only local
// errors map to error statuses.
func testConnectionHandler(svc *service.SettingsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/settings/test-connection")
		defer span.End()

		var in service.ConnectionTestInput
		if !decodeOptionalBody(w, r, &in) {
			return
		}
		result, err := svc.Test(ctx, in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
