package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rmacedo/nitro-admin-go/internal/domain"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ============================================================
// Shared helper functions
// ============================================================

type errorResponse struct {
	Error string `json:"error"`
}

// providerErrorResponse carries the upstream status and body alongside the
// local message, so the dashboard can surface what the provider said.
type providerErrorResponse struct {
	Error          string `json:"error"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
	UpstreamBody   string `json:"upstream_body,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeRawJSON forwards a provider body untouched.
func writeRawJSON(w http.ResponseWriter, status int, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(raw)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// decodeOptionalBody decodes a JSON body when one is present; an empty body
// leaves dst untouched. Presence is detected by reading, not ContentLength,
// so chunked requests decode too.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var unconfigured *domain.ErrUnconfigured
	var validation *domain.ErrValidation
	var refundNotAllowed *domain.ErrRefundNotAllowed
	var httpErr *domain.ErrHTTP
	var transport *domain.ErrTransport
	var malformed *domain.ErrMalformedResponse

	switch {
	case errors.As(err, &validation):
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unconfigured):
		logger.Debug("provider not configured")
		writeError(w, http.StatusPreconditionFailed, err.Error())
	case errors.As(err, &refundNotAllowed):
		logger.Warn("refund rejected",
			zap.String("hash", refundNotAllowed.Hash),
			zap.String("status", string(refundNotAllowed.Status)),
		)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &httpErr):
		logger.Warn("provider error response",
			zap.String("operation", httpErr.Op),
			zap.Int("status", httpErr.Status),
		)
		writeJSON(w, http.StatusBadGateway, providerErrorResponse{
			Error:          "payments provider rejected the request",
			UpstreamStatus: httpErr.Status,
			UpstreamBody:   httpErr.Body,
		})
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		logger.Error("circuit breaker open", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "payments provider temporarily unavailable")
	case errors.As(err, &transport):
		logger.Error("provider unreachable", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.As(err, &malformed):
		logger.Error("malformed provider response", zap.Error(err))
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
