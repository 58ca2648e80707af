package handler

import (
	"net/http"

	"github.com/rmacedo/nitro-admin-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Dashboard — GET /v1/dashboard/summary
// ============================================================

func dashboardSummaryHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/dashboard/summary")
		defer span.End()

		summary, err := svc.Summarize(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
