package handler

import (
	"net/http"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Discord bot — /v1/bot
// ============================================================

func getBotConfigHandler(svc *service.BotService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/bot/config")
		defer span.End()

		cfg, err := svc.GetConfig(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

func updateBotConfigHandler(svc *service.BotService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/bot/config")
		defer span.End()

		var upd domain.BotConfigUpdate
		if !decodeBody(w, r, &upd) {
			return
		}
		cfg, err := svc.UpdateConfig(ctx, upd)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

// botCodeHandler returns the rendered bot source as plain JavaScript text.
func botCodeHandler(svc *service.BotService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/bot/code")
		defer span.End()

		code, err := svc.GenerateCode(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(code))
	}
}
