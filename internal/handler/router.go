package handler

import (
	"net/http"
	"time"

	"github.com/rmacedo/nitro-admin-go/internal/infra/observability"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services bundles everything the router dispatches to.
type Services struct {
	Dashboard    *service.DashboardService
	Catalog      *service.CatalogService
	Transactions *service.TransactionsService
	Settings     *service.SettingsService
	Bot          *service.BotService
	MercadoPago  *service.MercadoPagoService
}

// NewRouter creates the HTTP router with all routes and middleware. Routes
// follow the API contract of the admin dashboard frontend.
func NewRouter(svcs Services, metrics *observability.Metrics, corsOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// The dashboard is a browser app served from its own origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svcs.Settings, logger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Dashboard
		r.Get("/dashboard/summary", dashboardSummaryHandler(svcs.Dashboard, logger))

		// Products, offers, categories
		r.Get("/products", listProductsHandler(svcs.Catalog, logger))
		r.Post("/products", createProductHandler(svcs.Catalog, logger))
		r.Get("/products/page", productsPageHandler(svcs.Catalog, logger))
		r.Get("/products/categories", listCategoriesHandler(svcs.Catalog, logger))
		r.Get("/products/{hash}", getProductHandler(svcs.Catalog, logger))
		r.Put("/products/{hash}", updateProductHandler(svcs.Catalog, logger))
		r.Post("/products/{hash}/offers", createOfferHandler(svcs.Catalog, logger))
		r.Put("/products/{hash}/offers", updateOfferHandler(svcs.Catalog, logger))

		// Transactions and payments
		r.Get("/transactions", listTransactionsHandler(svcs.Transactions, logger))
		r.Post("/transactions", createPaymentHandler(svcs.Transactions, logger))
		r.Get("/transactions/{hash}", getTransactionHandler(svcs.Transactions, logger))
		r.Post("/transactions/{hash}/refund", refundHandler(svcs.Transactions, logger))

		// Opaque provider passthroughs
		r.Get("/installments", installmentsHandler(svcs.Catalog, logger))
		r.Get("/checkout/{hash}", checkoutHandler(svcs.Catalog, logger))

		// Local settings
		r.Get("/settings", getSettingsHandler(svcs.Settings, logger))
		r.Put("/settings/nitro", updateNitroSettingsHandler(svcs.Settings, logger))
		r.Put("/settings/mercadopago", updateMercadoPagoSettingsHandler(svcs.Settings, logger))
		r.Post("/settings/test-connection", testConnectionHandler(svcs.Settings, logger))

		// Discord bot configuration and code generation
		r.Get("/bot/config", getBotConfigHandler(svcs.Bot, logger))
		r.Put("/bot/config", updateBotConfigHandler(svcs.Bot, logger))
		r.Get("/bot/code", botCodeHandler(svcs.Bot, logger))

		// Secondary provider passthrough
		r.Post("/mercadopago/payments", mercadoPagoPaymentHandler(svcs.MercadoPago, logger))

		// Client health snapshot for the dashboard's metrics panel
		r.Get("/metrics/client", clientMetricsHandler(metrics, logger))
	})

	return r
}

// healthzHandler reports overall health. The settings store is the only
// dependency owned by this process; the provider is checked on demand via the
// connection tester, not here.
func healthzHandler(settings *service.SettingsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := "healthy"
		storeStatus := "healthy"
		if _, err := settings.Get(r.Context()); err != nil {
			logger.Error("healthz: settings store check failed", zap.Error(err))
			status = "degraded"
			storeStatus = "unhealthy"
		}

		code := http.StatusOK
		if status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]any{
			"status": status,
			"components": map[string]string{
				"settings_store": storeStatus,
			},
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func clientMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.ClientSnapshot(service.ProviderOperations))
	}
}
