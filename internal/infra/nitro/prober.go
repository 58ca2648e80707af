package nitro

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rmacedo/nitro-admin-go/internal/domain"

	"go.uber.org/zap"
)

// Prober validates credentials with a single product-list probe. It bypasses
// the circuit breaker on purpose: the operator explicitly asked for a live
// check, and the result is transient state, never persisted.
type Prober struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewProber creates a connection prober.
func NewProber(httpClient *http.Client, logger *zap.Logger) *Prober {
	return &Prober{httpClient: httpClient, logger: logger}
}

// Probe issues one GET against the product list and classifies the outcome:
// 2xx is success, anything else (including transport failure) is failure.
// No retry; the operator re-invokes explicitly.
func (p *Prober) Probe(ctx context.Context, endpoint, apiToken string) domain.ConnectionTestResult {
	url := fmt.Sprintf("%spublic/v1/products?api_token=%s", endpoint, apiToken)

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ConnectionTestResult{OK: false, Error: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		p.logger.Warn("connection test failed", zap.Error(err))
		return domain.ConnectionTestResult{OK: false, Error: err.Error(), LatencyMs: latency}
	}
	defer resp.Body.Close()

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	result := domain.ConnectionTestResult{OK: ok, Status: resp.StatusCode, LatencyMs: latency}
	if !ok {
		result.Error = fmt.Sprintf("nitro api returned status %d", resp.StatusCode)
		p.logger.Warn("connection test rejected", zap.Int("status", resp.StatusCode))
	}
	return result
}
