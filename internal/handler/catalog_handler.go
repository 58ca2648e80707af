package handler

import (
	"net/http"
	"strconv"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ============================================================
// Products, offers and categories
// ============================================================

func listProductsHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/products")
		defer span.End()

		products, err := svc.ListProducts(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, products)
	}
}

// productsPageHandler serves the combined products+categories payload the
// products view renders in one shot.
func productsPageHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/products/page")
		defer span.End()

		page, err := svc.Page(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func getProductHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/products/{hash}")
		defer span.End()

		product, err := svc.GetProduct(ctx, chi.URLParam(r, "hash"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func createProductHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/products")
		defer span.End()

		var in domain.ProductInput
		if !decodeBody(w, r, &in) {
			return
		}
		product, err := svc.CreateProduct(ctx, &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, product)
	}
}

func updateProductHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/products/{hash}")
		defer span.End()

		var upd domain.ProductUpdate
		if !decodeBody(w, r, &upd) {
			return
		}
		product, err := svc.UpdateProduct(ctx, chi.URLParam(r, "hash"), &upd)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func createOfferHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/products/{hash}/offers")
		defer span.End()

		var in domain.OfferInput
		if !decodeBody(w, r, &in) {
			return
		}
		offer, err := svc.CreateOffer(ctx, chi.URLParam(r, "hash"), &in)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, offer)
	}
}

func updateOfferHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/products/{hash}/offers")
		defer span.End()

		var upd domain.OfferUpdate
		if !decodeBody(w, r, &upd) {
			return
		}
		offer, err := svc.UpdateOffer(ctx, chi.URLParam(r, "hash"), &upd)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, offer)
	}
}

func listCategoriesHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/products/categories")
		defer span.End()

		categories, err := svc.ListCategories(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// ============================================================
// Installments — GET /v1/installments?amount=N
// ============================================================

func installmentsHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/installments")
		defer span.End()

		amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "amount must be an integer in minor currency units")
			return
		}
		raw, err := svc.GetInstallments(ctx, amount)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeRawJSON(w, http.StatusOK, raw)
	}
}

// ============================================================
// Checkout — GET /v1/checkout/{hash}
// ============================================================

func checkoutHandler(svc *service.CatalogService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/checkout/{hash}")
		defer span.End()

		raw, err := svc.GetCheckout(ctx, chi.URLParam(r, "hash"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeRawJSON(w, http.StatusOK, raw)
	}
}
