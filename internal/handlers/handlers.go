package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/b2bmart/b2bmart/docs"
	analyticshandlers "github.com/b2bmart/b2bmart/internal/handlers/analytics"
	authhandlers "github.com/b2bmart/b2bmart/internal/handlers/auth"
	loyaltyhandlers "github.com/b2bmart/b2bmart/internal/handlers/loyalty"
	ordershandlers "github.com/b2bmart/b2bmart/internal/handlers/orders"
	"github.com/b2bmart/b2bmart/internal/service"
	"github.com/b2bmart/b2bmart/pkg/auth"
	"github.com/b2bmart/b2bmart/pkg/metrics"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
}

type LoyaltyHandler interface {
	GetPoints(w http.ResponseWriter, r *http.Request)
	AwardPoints(w http.ResponseWriter, r *http.Request)
	RedeemPoints(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetTiers(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	GetSalesTrends(w http.ResponseWriter, r *http.Request)
	GetProductPerformance(w http.ResponseWriter, r *http.Request)
	GetCustomerBehavior(w http.ResponseWriter, r *http.Request)
	GetSupplierPerformance(w http.ResponseWriter, r *http.Request)
	GetComparativeAnalysis(w http.ResponseWriter, r *http.Request)
	ExportReport(w http.ResponseWriter, r *http.Request)
	GetSupplierDashboard(w http.ResponseWriter, r *http.Request)
	GetCustomerDashboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	OrderHandler     OrderHandler
	LoyaltyHandler   LoyaltyHandler
	AnalyticsHandler AnalyticsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		OrderHandler:     ordershandlers.New(s.OrderService),
		LoyaltyHandler:   loyaltyhandlers.New(s.LoyaltyService),
		AnalyticsHandler: analyticshandlers.New(s.AnalyticsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})
		r.Get("/loyalty/tiers", h.LoyaltyHandler.GetTiers)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/orders", h.OrderHandler.GetOrders)
			r.Get("/orders/{id}", h.OrderHandler.GetOrder)
			r.Route("/loyalty", func(r chi.Router) {
				r.Get("/points", h.LoyaltyHandler.GetPoints)
				r.Post("/award", h.LoyaltyHandler.AwardPoints)
				r.Post("/redeem", h.LoyaltyHandler.RedeemPoints)
				r.Get("/transactions", h.LoyaltyHandler.GetTransactions)
			})
			r.Route("/analytics", func(r chi.Router) {
				r.Get("/sales-trends", h.AnalyticsHandler.GetSalesTrends)
				r.Get("/product-performance", h.AnalyticsHandler.GetProductPerformance)
				r.Get("/customer-behavior", h.AnalyticsHandler.GetCustomerBehavior)
				r.Get("/supplier-performance", h.AnalyticsHandler.GetSupplierPerformance)
				r.Get("/comparative", h.AnalyticsHandler.GetComparativeAnalysis)
				r.Get("/export", h.AnalyticsHandler.ExportReport)
			})
			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/supplier", h.AnalyticsHandler.GetSupplierDashboard)
				r.Get("/customer", h.AnalyticsHandler.GetCustomerDashboard)
			})
		})
	})

	return r
}
