// Package domain holds the entities exchanged with the Nitro Pagamentos API
// and the error types used across the service.
//
// All catalog and transaction records are owned by the remote provider; the
// structs here are ephemeral in-memory copies fetched per request. Monetary
// amounts are integer minor currency units (centavos).
package domain

// ProductType discriminates digital goods from shipped ones.
// The provider's wire value for physical products is "fisico".
type ProductType string

const (
	ProductTypeDigital  ProductType = "digital"
	ProductTypePhysical ProductType = "fisico"
)

// Product is a sellable catalog item. Hash is assigned by the provider on
// creation and immutable afterwards.
type Product struct {
	Hash         string      `json:"hash"`
	Title        string      `json:"title"`
	Cover        *string     `json:"cover"`
	SalePage     string      `json:"sale_page"`
	PaymentType  int         `json:"payment_type"`
	ProductType  ProductType `json:"product_type"`
	DeliveryType int         `json:"delivery_type"`
	CategoryID   int         `json:"id_category"`
	Amount       int64       `json:"amount"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// ProductInput carries the fields the operator supplies when creating a
// product. Server-assigned fields (hash, timestamps) are absent.
type ProductInput struct {
	Title        string      `json:"title"`
	Cover        *string     `json:"cover,omitempty"`
	SalePage     string      `json:"sale_page"`
	PaymentType  int         `json:"payment_type"`
	ProductType  ProductType `json:"product_type"`
	DeliveryType int         `json:"delivery_type"`
	CategoryID   int         `json:"id_category"`
	Amount       int64       `json:"amount"`
}

// ProductUpdate is a partial update; nil fields are left untouched by the
// provider.
type ProductUpdate struct {
	Title        *string      `json:"title,omitempty"`
	Cover        *string      `json:"cover,omitempty"`
	SalePage     *string      `json:"sale_page,omitempty"`
	PaymentType  *int         `json:"payment_type,omitempty"`
	ProductType  *ProductType `json:"product_type,omitempty"`
	DeliveryType *int         `json:"delivery_type,omitempty"`
	CategoryID   *int         `json:"id_category,omitempty"`
	Amount       *int64       `json:"amount,omitempty"`
}

// Offer is an alternate price or bundle for a product.
type Offer struct {
	Hash        string  `json:"hash"`
	Title       string  `json:"title"`
	Cover       *string `json:"cover"`
	Amount      int64   `json:"amount"`
	ProductHash string  `json:"product_hash"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// OfferInput carries the operator-supplied offer fields.
type OfferInput struct {
	Title  string  `json:"title"`
	Cover  *string `json:"cover,omitempty"`
	Amount int64   `json:"amount"`
}

// OfferUpdate is a partial offer update.
type OfferUpdate struct {
	Title  *string `json:"title,omitempty"`
	Cover  *string `json:"cover,omitempty"`
	Amount *int64  `json:"amount,omitempty"`
}

// Category groups products.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
