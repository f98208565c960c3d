package analytics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/dto"
	analyticsservice "github.com/b2bmart/b2bmart/internal/service/analyticsservice"
	"github.com/b2bmart/b2bmart/pkg/auth"
	"github.com/b2bmart/b2bmart/pkg/utils"
)

type Service interface {
	SalesTrends(ctx context.Context, scope domain.Scope, startDate, endDate, interval string) (*dto.SalesTrendsDTO, error)
	ProductPerformance(ctx context.Context, scope domain.Scope, limit int) (*dto.ProductPerformanceDTO, error)
	CustomerBehavior(ctx context.Context, scope domain.Scope) (*dto.CustomerBehaviorDTO, error)
	SupplierPerformance(ctx context.Context, supplierID int) (*dto.SupplierPerformanceDTO, error)
	ComparativeAnalysis(ctx context.Context, scope domain.Scope, period string) (*dto.ComparativeAnalysisDTO, error)
	ExportCSV(ctx context.Context, scope domain.Scope, reportType, startDate, endDate string) ([]byte, string, error)
	SupplierDashboard(ctx context.Context, supplierID int) (*dto.SupplierDashboardDTO, error)
	CustomerDashboard(ctx context.Context, customerID int) (*dto.CustomerDashboardDTO, error)
}

type AnalyticsHandler struct {
	analyticsService Service
}

func New(analyticsService Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetSalesTrends godoc
//
//	@Summary		Sales trends over a date range
//	@Description	Revenue, order count and average order value bucketed by day, week or month, with growth against the preceding period of equal length.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			startDate	query		string				true	"Range start, YYYY-MM-DD"
//	@Param			endDate		query		string				true	"Range end, YYYY-MM-DD"
//	@Param			interval	query		string				false	"day, week or month (default day)"
//	@Success		200			{object}	dto.SalesTrendsDTO	"Buckets, totals and comparison"
//	@Failure		400			{object}	utils.Response		"Missing or malformed dates, unknown interval"
//	@Failure		401			{object}	utils.Response		"User not authorized"
//	@Failure		500			{object}	utils.Response		"Internal server error"
//	@Router			/api/analytics/sales-trends [get]
func (h *AnalyticsHandler) GetSalesTrends(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())
	query := r.URL.Query()

	interval := query.Get("interval")
	if interval == "" {
		interval = "day"
	}

	trends, err := h.analyticsService.SalesTrends(r.Context(), scope, query.Get("startDate"), query.Get("endDate"), interval)
	if err != nil {
		switch {
		case errors.Is(err, analyticsservice.ErrInvalidDateRange), errors.Is(err, analyticsservice.ErrInvalidInterval):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trends)
}

// GetProductPerformance godoc
//
//	@Summary		Product performance ranking
//	@Description	Top and bottom sellers by delivered revenue plus category breakdown. Suppliers also get a stock-health block for their catalog.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"Top list size (default 20, max 100)"
//	@Success		200		{object}	dto.ProductPerformanceDTO	"Rankings"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/analytics/product-performance [get]
func (h *AnalyticsHandler) GetProductPerformance(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	performance, err := h.analyticsService.ProductPerformance(r.Context(), scope, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, performance)
}

// GetCustomerBehavior godoc
//
//	@Summary		Customer behavior report
//	@Description	New vs returning split, lifetime value averages and top spenders. Suppliers see their own customers, admins all.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CustomerBehaviorDTO	"Summary and top customers"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Supplier or admin role required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/analytics/customer-behavior [get]
func (h *AnalyticsHandler) GetCustomerBehavior(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	behavior, err := h.analyticsService.CustomerBehavior(r.Context(), scope)
	if err != nil {
		if errors.Is(err, analyticsservice.ErrAccessDenied) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, behavior)
}

// GetSupplierPerformance godoc
//
//	@Summary		Supplier fulfillment KPIs
//	@Description	Order counts by outcome, fulfillment rate and average delivery time. Suppliers get their own numbers; admins may pass supplierId.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			supplierId	query		int							false	"Supplier to inspect (admin only)"
//	@Success		200			{object}	dto.SupplierPerformanceDTO	"KPIs"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		403			{object}	utils.Response				"Supplier or admin role required"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/analytics/supplier-performance [get]
func (h *AnalyticsHandler) GetSupplierPerformance(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	supplierID := scope.UserID
	switch scope.Role {
	case domain.RoleSupplier:
	case domain.RoleAdmin:
		if id, err := strconv.Atoi(r.URL.Query().Get("supplierId")); err == nil {
			supplierID = id
		}
	default:
		utils.RespondWithError(w, http.StatusForbidden, "supplier or admin role required")
		return
	}

	performance, err := h.analyticsService.SupplierPerformance(r.Context(), supplierID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, performance)
}

// GetComparativeAnalysis godoc
//
//	@Summary		Period-over-period comparison
//	@Description	Revenue, orders and average order value for the running week, month, quarter or year against the preceding period.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		json
//	@Param			period	query		string						false	"week, month, quarter or year (default month)"
//	@Success		200		{object}	dto.ComparativeAnalysisDTO	"Comparison"
//	@Failure		400		{object}	utils.Response				"Unknown period"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/analytics/comparative [get]
func (h *AnalyticsHandler) GetComparativeAnalysis(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "month"
	}

	analysis, err := h.analyticsService.ComparativeAnalysis(r.Context(), scope, period)
	if err != nil {
		if errors.Is(err, analyticsservice.ErrInvalidPeriod) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, analysis)
}

// ExportReport godoc
//
//	@Summary		Export a report as CSV
//	@Description	Sales or products report for the caller's scope as a CSV download. The date range defaults to the trailing 30 days.
//	@Tags			Analytics
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Param			type		query		string	true	"sales or products"
//	@Param			startDate	query		string	false	"Range start, YYYY-MM-DD"
//	@Param			endDate		query		string	false	"Range end, YYYY-MM-DD"
//	@Success		200			{string}	string	"CSV payload"
//	@Failure		400			{object}	utils.Response	"Unknown report type or malformed dates"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/analytics/export [get]
func (h *AnalyticsHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())
	query := r.URL.Query()

	data, filename, err := h.analyticsService.ExportCSV(r.Context(), scope, query.Get("type"), query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		switch {
		case errors.Is(err, analyticsservice.ErrInvalidReportType), errors.Is(err, analyticsservice.ErrInvalidDateRange):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return
	}
}

// GetSupplierDashboard godoc
//
//	@Summary		Supplier dashboard
//	@Description	Trailing-30-day revenue, orders by status, top products, daily revenue series, catalog stats and recent orders.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SupplierDashboardDTO	"Dashboard"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Supplier role required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/dashboard/supplier [get]
func (h *AnalyticsHandler) GetSupplierDashboard(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())
	if scope.Role != domain.RoleSupplier {
		utils.RespondWithError(w, http.StatusForbidden, "supplier role required")
		return
	}

	dashboard, err := h.analyticsService.SupplierDashboard(r.Context(), scope.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dashboard)
}

// GetCustomerDashboard godoc
//
//	@Summary		Customer dashboard
//	@Description	Order statistics, recent orders and orders still in flight for the authenticated customer.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CustomerDashboardDTO	"Dashboard"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Customer role required"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/dashboard/customer [get]
func (h *AnalyticsHandler) GetCustomerDashboard(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())
	if scope.Role != domain.RoleCustomer {
		utils.RespondWithError(w, http.StatusForbidden, "customer role required")
		return
	}

	dashboard, err := h.analyticsService.CustomerDashboard(r.Context(), scope.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dashboard)
}
