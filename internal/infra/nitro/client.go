// Package nitro implements the HTTP client for the Nitro Pagamentos API.
//
// Authentication is a query-string token: every endpoint path is joined to
// the base endpoint and suffixed with ?api_token=<token>. The token is never
// sent as a header. The single exception is checkout retrieval, which the
// provider exposes unauthenticated.
//
// Responses arrive wrapped in a { "data": ... } envelope. List endpoints
// tolerate an absent or null data field (empty list); single-entity
// endpoints treat it as a malformed response.
package nitro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rmacedo/nitro-admin-go/internal/domain"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("nitro")

// Client wraps HTTP calls to the Nitro Pagamentos API. It is stateless with
// respect to the credentials it was built with: no session, no retries, no
// caching. Calls fail fast when the shared circuit breaker is open; a request
// is never re-issued.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiToken   string
	cb         *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewClient creates a client bound to one base endpoint and token.
func NewClient(httpClient *http.Client, endpoint, apiToken string, cb *gobreaker.CircuitBreaker, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		apiToken:   apiToken,
		cb:         cb,
		logger:     logger,
	}
}

// url joins path to the base endpoint and appends the token. The endpoint is
// stored with a trailing slash, so plain concatenation matches the provider
// contract byte for byte.
func (c *Client) url(path string) string {
	return fmt.Sprintf("%s%s?api_token=%s", c.endpoint, path, c.apiToken)
}

// doRequest executes one call against the provider and returns the 2xx body.
// Failure kinds: ErrTransport (no response), ErrHTTP (non-2xx, body carries
// the provider payload). Envelope validation happens in the decode step.
func (c *Client) doRequest(ctx context.Context, op, method, url string, payload any) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Nitro."+op)
	defer span.End()
	span.SetAttributes(attribute.String("http.method", method))

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, &domain.ErrTransport{Op: op, Err: err}
		}
		reqBody = bytes.NewReader(raw)
	}

	body, err := c.cb.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return nil, &domain.ErrTransport{Op: op, Err: err}
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error("nitro: request failed",
				zap.String("op", op),
				zap.String("method", method),
				zap.Error(err),
			)
			return nil, &domain.ErrTransport{Op: op, Err: err}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &domain.ErrTransport{Op: op, Err: err}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.logger.Warn("nitro: non-2xx response",
				zap.String("op", op),
				zap.String("method", method),
				zap.Int("status", resp.StatusCode),
				zap.String("body", string(raw)),
			)
			return nil, &domain.ErrHTTP{Op: op, Status: resp.StatusCode, Body: string(raw)}
		}

		c.logger.Debug("nitro: request OK",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
		)
		return raw, nil
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

// envelope is the provider's { data: ... } wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func dataAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// decodeList unwraps a list envelope. Absent or null data yields an empty
// slice, never an error.
func decodeList[T any](op string, body []byte) ([]T, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &domain.ErrMalformedResponse{Op: op, Reason: "body is not valid JSON"}
	}
	if dataAbsent(env.Data) {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, &domain.ErrMalformedResponse{Op: op, Reason: "data field is not the expected list"}
	}
	return items, nil
}

// decodeOne unwraps a single-entity envelope. A missing data field is a
// malformed response here.
func decodeOne[T any](op string, body []byte) (*T, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &domain.ErrMalformedResponse{Op: op, Reason: "body is not valid JSON"}
	}
	if dataAbsent(env.Data) {
		return nil, &domain.ErrMalformedResponse{Op: op, Reason: "missing data field"}
	}
	var item T
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, &domain.ErrMalformedResponse{Op: op, Reason: "data field is not the expected entity"}
	}
	return &item, nil
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := c.doRequest(ctx, "ListProducts", http.MethodGet, c.url("public/v1/products"), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Product]("ListProducts", body)
}

func (c *Client) GetProduct(ctx context.Context, hash string) (*domain.Product, error) {
	body, err := c.doRequest(ctx, "GetProduct", http.MethodGet, c.url("public/v1/products/"+hash), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Product]("GetProduct", body)
}

func (c *Client) CreateProduct(ctx context.Context, in *domain.ProductInput) (*domain.Product, error) {
	body, err := c.doRequest(ctx, "CreateProduct", http.MethodPost, c.url("public/v1/products"), in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Product]("CreateProduct", body)
}

func (c *Client) UpdateProduct(ctx context.Context, hash string, upd *domain.ProductUpdate) (*domain.Product, error) {
	body, err := c.doRequest(ctx, "UpdateProduct", http.MethodPut, c.url("public/v1/products/"+hash), upd)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Product]("UpdateProduct", body)
}

// --- Offers ---

func (c *Client) CreateOffer(ctx context.Context, productHash string, in *domain.OfferInput) (*domain.Offer, error) {
	body, err := c.doRequest(ctx, "CreateOffer", http.MethodPost, c.url("public/v1/products/"+productHash+"/offers"), in)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Offer]("CreateOffer", body)
}

func (c *Client) UpdateOffer(ctx context.Context, productHash string, upd *domain.OfferUpdate) (*domain.Offer, error) {
	body, err := c.doRequest(ctx, "UpdateOffer", http.MethodPut, c.url("public/v1/products/"+productHash+"/offers"), upd)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Offer]("UpdateOffer", body)
}

// --- Transactions ---

func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	body, err := c.doRequest(ctx, "ListTransactions", http.MethodGet, c.url("public/v1/transactions"), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Transaction]("ListTransactions", body)
}

func (c *Client) GetTransaction(ctx context.Context, hash string) (*domain.Transaction, error) {
	body, err := c.doRequest(ctx, "GetTransaction", http.MethodGet, c.url("public/v1/transactions/"+hash), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Transaction]("GetTransaction", body)
}

func (c *Client) CreatePayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Transaction, error) {
	body, err := c.doRequest(ctx, "CreatePayment", http.MethodPost, c.url("public/v1/transactions"), req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Transaction]("CreatePayment", body)
}

// RefundTransaction requests a refund. A nil amount asks for a full refund;
// the provider owns partial-refund semantics.
func (c *Client) RefundTransaction(ctx context.Context, hash string, amount *int64) (*domain.Transaction, error) {
	payload := map[string]any{}
	if amount != nil {
		payload["amount"] = *amount
	}
	body, err := c.doRequest(ctx, "RefundTransaction", http.MethodPost, c.url("public/v1/transactions/"+hash+"/refund"), payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.Transaction]("RefundTransaction", body)
}

// --- Categories ---

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.doRequest(ctx, "ListCategories", http.MethodGet, c.url("public/v1/products/categories"), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Category]("ListCategories", body)
}

// --- Installments ---

// GetInstallments returns the provider's installment options for an amount.
// The path appends amount with '&' rather than '?'; that is what the live
// provider accepts, so it is preserved verbatim.
func (c *Client) GetInstallments(ctx context.Context, amount int64) (json.RawMessage, error) {
	path := fmt.Sprintf("public/v1/installments&amount=%d", amount)
	body, err := c.doRequest(ctx, "GetInstallments", http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &domain.ErrMalformedResponse{Op: "GetInstallments", Reason: "body is not valid JSON"}
	}
	if dataAbsent(env.Data) {
		return nil, &domain.ErrMalformedResponse{Op: "GetInstallments", Reason: "missing data field"}
	}
	return env.Data, nil
}

// --- Checkout ---

// GetCheckout is the one unauthenticated call: public lookup by hash, no
// token parameter, and the body is passed through without envelope unwrap.
func (c *Client) GetCheckout(ctx context.Context, hash string) (json.RawMessage, error) {
	url := c.endpoint + "public/v1/checkout/" + hash
	body, err := c.doRequest(ctx, "GetCheckout", http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
