package domain

import "fmt"

// Error types for consistent error handling across the service.

// ErrUnconfigured gates every provider call: the stored api token is empty,
// so no request may be issued.
type ErrUnconfigured struct{}

func (e *ErrUnconfigured) Error() string {
	return "nitro api credentials not configured"
}

// ErrTransport indicates the request could not be sent or no response was
// received.
type ErrTransport struct {
	Op  string
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("transport error [%s]: %v", e.Op, e.Err)
}

func (e *ErrTransport) Unwrap() error {
	return e.Err
}

// ErrHTTP indicates a non-2xx provider response. Body carries the provider
// error payload when one was returned.
type ErrHTTP struct {
	Op     string
	Status int
	Body   string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("nitro api returned status %d [%s]: %s", e.Status, e.Op, e.Body)
}

// ErrMalformedResponse indicates a 2xx response whose body misses the
// expected envelope shape.
type ErrMalformedResponse struct {
	Op     string
	Reason string
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed response [%s]: %s", e.Op, e.Reason)
}

// ErrRefundNotAllowed rejects a refund request for a transaction that is not
// in paid status. The provider is never called in that case.
type ErrRefundNotAllowed struct {
	Hash   string
	Status TransactionStatus
}

func (e *ErrRefundNotAllowed) Error() string {
	return fmt.Sprintf("transaction %s cannot be refunded in status %q", e.Hash, e.Status)
}

// ErrValidation indicates bad operator input.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}
