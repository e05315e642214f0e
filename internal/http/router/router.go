package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/inventory-dashboard/docs"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/ban"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/inventory-dashboard/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Options toggles the optional parts of the middleware stack.
// A nil Limiter disables rate limiting, a nil Bans disables the ban list and
// an empty JWTSecret leaves writes unauthenticated.
type Options struct {
	Logger    *zap.Logger
	Limiter   *rl.Limiter
	Bans      *ban.Service
	JWTSecret string
	RealIP    bool
}

func NewRouter(srv *handlers.Server, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	if opts.RealIP {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.RequestID)
	r.Use(mw.Logger(log))
	r.Use(mw.Recoverer(log))

	r.Get("/healthz", srv.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(mw.RateLimit(opts.Limiter, opts.Bans, log))
		}
		if opts.JWTSecret != "" {
			r.Use(mw.RequireTokenForWrites([]byte(opts.JWTSecret)))
		}

		r.Get("/products", srv.GetProductsHandler)
		r.Post("/products", srv.CreateProductHandler)
		r.Get("/products/low-stock", srv.LowStockProductsHandler)
		r.Get("/products/{id:[0-9]+}", srv.GetProductByIDHandler)
		r.Put("/products/{id:[0-9]+}", srv.UpdateProductHandler)
		r.Delete("/products/{id:[0-9]+}", srv.DeleteProductHandler)
		r.Post("/products/{id:[0-9]+}/restock", srv.RestockProductHandler)

		r.Get("/restocks", srv.GetRecentRestocksHandler)
		r.Get("/dashboard/summary", srv.GetDashboardSummaryHandler)

		r.Get("/analytics/inventory-trend", srv.GetInventoryTrendHandler)
		r.Get("/analytics/product-trend/{id:[0-9]+}", srv.GetProductTrendHandler)
		r.Get("/analytics/metrics", srv.GetMetricsHandler)
	})

	return r
}
