package analyticsservice

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/dto"
)

type OrderRepo interface {
	TrendBuckets(ctx context.Context, scope domain.Scope, start, end time.Time, bucketFormat string) ([]domain.TrendBucket, error)
	PeriodTotals(ctx context.Context, scope domain.Scope, start, end time.Time) (*domain.PeriodTotals, error)
	ProductSales(ctx context.Context, scope domain.Scope, ascending bool, limit int) ([]domain.ProductSales, error)
	TopProductsByQuantity(ctx context.Context, supplierID, limit int) ([]domain.ProductSales, error)
	CategorySales(ctx context.Context, scope domain.Scope) ([]domain.CategorySales, error)
	CustomerStats(ctx context.Context, supplierID int) ([]domain.CustomerStats, error)
	SupplierOrderMetrics(ctx context.Context, supplierID int) (*domain.SupplierOrderMetrics, error)
	AvgDeliveryDays(ctx context.Context, supplierID int) (float64, error)
	CountByStatus(ctx context.Context, scope domain.Scope) ([]domain.OrderStatusCount, error)
	CustomerOrderStats(ctx context.Context, customerID int) (*domain.CustomerOrderStats, error)
	ListByScope(ctx context.Context, scope domain.Scope, limit int) ([]domain.OrderSummary, error)
	ActiveOrders(ctx context.Context, customerID int) ([]domain.OrderSummary, error)
	ExportRows(ctx context.Context, scope domain.Scope, start, end time.Time) ([]domain.OrderSummary, error)
}

type ProductRepo interface {
	CatalogStats(ctx context.Context, supplierID int) (*domain.CatalogStats, error)
	LowStockCount(ctx context.Context, supplierID int) (int, error)
	LowStockProducts(ctx context.Context, supplierID, limit int) ([]domain.StockLevel, error)
	ExportRows(ctx context.Context, scope domain.Scope) ([]domain.ExportProductRow, error)
}

type Service struct {
	orderRepo   OrderRepo
	productRepo ProductRepo
	now         func() time.Time
}

func New(orderRepo OrderRepo, productRepo ProductRepo) *Service {
	return &Service{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

var (
	ErrInvalidDateRange  = errors.New("start date and end date are required and must be ordered")
	ErrInvalidInterval   = errors.New("interval must be one of day, week, month")
	ErrInvalidPeriod     = errors.New("period must be one of week, month, quarter, year")
	ErrInvalidReportType = errors.New("report type must be one of sales, products")
	ErrAccessDenied      = errors.New("supplier or admin role required")
)

const dateLayout = "2006-01-02"

var bucketFormats = map[string]string{
	"day":   "YYYY-MM-DD",
	"week":  `IYYY-"W"IW`,
	"month": "YYYY-MM",
}

// pctChange follows the convention used throughout the reports: a jump from
// zero counts as 100% growth, zero-to-zero as flat.
func pctChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// SalesTrends buckets reportable revenue over [startDate, endDate] and
// compares the totals against the immediately preceding period of equal
// duration.
func (s *Service) SalesTrends(ctx context.Context, scope domain.Scope, startDate, endDate, interval string) (*dto.SalesTrendsDTO, error) {
	if startDate == "" || endDate == "" {
		return nil, ErrInvalidDateRange
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	end = endOfDay(end)

	format, ok := bucketFormats[interval]
	if !ok {
		return nil, ErrInvalidInterval
	}

	// Comparison window: same duration, ending 1ms before the current start.
	duration := end.Sub(start)
	prevStart := start.Add(-duration)
	prevEnd := start.Add(-time.Millisecond)

	var buckets []domain.TrendBucket
	var prevTotals *domain.PeriodTotals

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buckets, err = s.orderRepo.TrendBuckets(gCtx, scope, start, end, format)
		return err
	})
	g.Go(func() error {
		var err error
		prevTotals, err = s.orderRepo.PeriodTotals(gCtx, scope, prevStart, prevEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute sales trends", zap.Error(err))
		return nil, err
	}

	trends := make([]dto.TrendBucketDTO, len(buckets))
	totals := dto.TrendTotalsDTO{}
	for i, b := range buckets {
		trends[i] = dto.TrendBucketDTO{
			Bucket:            b.Bucket,
			Revenue:           b.Revenue,
			Orders:            b.Orders,
			AverageOrderValue: b.AvgOrderValue,
		}
		totals.TotalRevenue += b.Revenue
		totals.TotalOrders += b.Orders
		totals.AverageOrderValue += b.AvgOrderValue
	}
	if len(buckets) > 0 {
		totals.AverageOrderValue /= float64(len(buckets))
	}

	return &dto.SalesTrendsDTO{
		Trends: trends,
		Totals: totals,
		Comparison: dto.TrendComparisonDTO{
			RevenueGrowth:       pctChange(totals.TotalRevenue, prevTotals.Revenue),
			OrdersGrowth:        pctChange(float64(totals.TotalOrders), float64(prevTotals.Orders)),
			AvgOrderValueGrowth: pctChange(totals.AverageOrderValue, prevTotals.AvgOrderValue),
		},
		Period: dto.ReportPeriodDTO{
			Start:    startDate,
			End:      endDate,
			Interval: interval,
		},
	}, nil
}

const (
	defaultTopLimit = 20
	maxTopLimit     = 100
)

// ProductPerformance ranks delivered products by revenue and, for suppliers,
// adds a stock-health block over their catalog.
func (s *Service) ProductPerformance(ctx context.Context, scope domain.Scope, limit int) (*dto.ProductPerformanceDTO, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	var top, bottom []domain.ProductSales
	var categories []domain.CategorySales

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		top, err = s.orderRepo.ProductSales(gCtx, scope, false, limit)
		return err
	})
	g.Go(func() error {
		var err error
		bottom, err = s.orderRepo.ProductSales(gCtx, scope, true, 10)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.orderRepo.CategorySales(gCtx, scope)
		return err
	})

	var stockAnalysis *dto.StockAnalysisDTO
	if scope.Role == domain.RoleSupplier {
		stockAnalysis = &dto.StockAnalysisDTO{}
		g.Go(func() error {
			stats, err := s.productRepo.CatalogStats(gCtx, scope.UserID)
			if err != nil {
				return err
			}
			stockAnalysis.TotalProducts = stats.TotalProducts
			stockAnalysis.OutOfStock = stats.OutOfStock
			return nil
		})
		g.Go(func() error {
			count, err := s.productRepo.LowStockCount(gCtx, scope.UserID)
			if err != nil {
				return err
			}
			stockAnalysis.LowStock = count
			return nil
		})
		g.Go(func() error {
			levels, err := s.productRepo.LowStockProducts(gCtx, scope.UserID, 5)
			if err != nil {
				return err
			}
			low := make([]dto.LowStockProductDTO, len(levels))
			for i, l := range levels {
				low[i] = dto.LowStockProductDTO{ID: l.ProductID, Title: l.Title, Stock: l.Stock, Image: l.Image}
			}
			stockAnalysis.LowStockProducts = low
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute product performance", zap.Error(err))
		return nil, err
	}

	result := &dto.ProductPerformanceDTO{
		TopProducts:    mapProductSales(top),
		BottomProducts: mapProductSales(bottom),
		StockAnalysis:  stockAnalysis,
	}
	result.CategoryPerformance = make([]dto.CategorySalesDTO, len(categories))
	for i, c := range categories {
		result.CategoryPerformance[i] = dto.CategorySalesDTO{Category: c.Category, Revenue: c.Revenue, Quantity: c.Quantity}
	}
	return result, nil
}

func mapProductSales(sales []domain.ProductSales) []dto.ProductSalesDTO {
	out := make([]dto.ProductSalesDTO, len(sales))
	for i, p := range sales {
		out[i] = dto.ProductSalesDTO{
			ProductID:     p.ProductID,
			Title:         p.Title,
			Image:         p.Image,
			Price:         p.Price,
			Stock:         p.Stock,
			TotalRevenue:  p.Revenue,
			TotalQuantity: p.Quantity,
			OrderCount:    p.OrderCount,
		}
	}
	return out
}

// CustomerBehavior classifies customers as new vs returning and surfaces the
// biggest spenders. Only suppliers (their own orders) and admins (all orders)
// may call it.
func (s *Service) CustomerBehavior(ctx context.Context, scope domain.Scope) (*dto.CustomerBehaviorDTO, error) {
	if scope.Role != domain.RoleSupplier && scope.Role != domain.RoleAdmin {
		return nil, ErrAccessDenied
	}

	supplierID := 0
	if scope.Role == domain.RoleSupplier {
		supplierID = scope.UserID
	}

	stats, err := s.orderRepo.CustomerStats(ctx, supplierID)
	if err != nil {
		zap.L().Error("failed to compute customer behavior", zap.Error(err))
		return nil, err
	}

	summary := dto.CustomerSummaryDTO{TotalCustomers: len(stats)}
	var totalSpent float64
	var totalOrders int
	for _, c := range stats {
		if c.OrderCount == 1 {
			summary.NewCustomers++
		} else {
			summary.ReturningCustomers++
		}
		totalSpent += c.TotalSpent
		totalOrders += c.OrderCount
	}
	if len(stats) > 0 {
		summary.AvgLifetimeValue = totalSpent / float64(len(stats))
		summary.AvgOrdersPerCustomer = float64(totalOrders) / float64(len(stats))
	}

	topN := stats
	if len(topN) > 10 {
		topN = topN[:10]
	}
	topCustomers := make([]dto.TopCustomerDTO, len(topN))
	for i, c := range topN {
		topCustomers[i] = dto.TopCustomerDTO{
			CustomerID: c.CustomerID,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			Email:      c.Email,
			OrderCount: c.OrderCount,
			TotalSpent: c.TotalSpent,
			FirstOrder: c.FirstOrder,
			LastOrder:  c.LastOrder,
		}
	}

	return &dto.CustomerBehaviorDTO{Summary: summary, TopCustomers: topCustomers}, nil
}

// SupplierPerformance reports fulfillment KPIs for one supplier.
func (s *Service) SupplierPerformance(ctx context.Context, supplierID int) (*dto.SupplierPerformanceDTO, error) {
	var metrics *domain.SupplierOrderMetrics
	var avgDeliveryDays float64
	var catalog *domain.CatalogStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metrics, err = s.orderRepo.SupplierOrderMetrics(gCtx, supplierID)
		return err
	})
	g.Go(func() error {
		var err error
		avgDeliveryDays, err = s.orderRepo.AvgDeliveryDays(gCtx, supplierID)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.productRepo.CatalogStats(gCtx, supplierID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute supplier performance", zap.Error(err))
		return nil, err
	}

	fulfillmentRate := 0.0
	if metrics.TotalOrders > 0 {
		fulfillmentRate = float64(metrics.Delivered) / float64(metrics.TotalOrders) * 100
	}

	return &dto.SupplierPerformanceDTO{
		OrderMetrics: dto.OrderMetricsDTO{
			TotalOrders: metrics.TotalOrders,
			Delivered:   metrics.Delivered,
			Cancelled:   metrics.Cancelled,
			Processing:  metrics.Processing,
		},
		FulfillmentRate: fmt.Sprintf("%.2f", fulfillmentRate),
		AvgDeliveryTime: fmt.Sprintf("%.1f", avgDeliveryDays),
		ProductStats: dto.ProductStatsDTO{
			TotalProducts:  catalog.TotalProducts,
			ActiveProducts: catalog.ActiveProducts,
		},
	}, nil
}

// ComparativeAnalysis compares the running period against the one before it.
// Week periods are rolling 7 days; month, quarter and year snap to calendar
// boundaries.
func (s *Service) ComparativeAnalysis(ctx context.Context, scope domain.Scope, period string) (*dto.ComparativeAnalysisDTO, error) {
	now := s.now()
	var currentStart, currentEnd, previousStart, previousEnd time.Time

	switch period {
	case "week":
		currentEnd = now
		currentStart = now.Add(-7 * 24 * time.Hour)
		previousEnd = currentStart.Add(-time.Millisecond)
		previousStart = previousEnd.Add(-7 * 24 * time.Hour)
	case "month":
		currentEnd = now
		currentStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		previousEnd = currentStart.Add(-time.Millisecond)
		previousStart = time.Date(previousEnd.Year(), previousEnd.Month(), 1, 0, 0, 0, 0, now.Location())
	case "quarter":
		quarter := (int(now.Month()) - 1) / 3
		currentStart = time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, now.Location())
		currentEnd = now
		previousEnd = currentStart.Add(-time.Millisecond)
		prevQuarter := (int(previousEnd.Month()) - 1) / 3
		previousStart = time.Date(previousEnd.Year(), time.Month(prevQuarter*3+1), 1, 0, 0, 0, 0, now.Location())
	case "year":
		currentStart = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		currentEnd = now
		previousStart = time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
		previousEnd = time.Date(now.Year()-1, time.December, 31, 23, 59, 59, 999000000, now.Location())
	default:
		return nil, ErrInvalidPeriod
	}

	var current, previous *domain.PeriodTotals
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.orderRepo.PeriodTotals(gCtx, scope, currentStart, currentEnd)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.orderRepo.PeriodTotals(gCtx, scope, previousStart, previousEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute comparative analysis", zap.Error(err))
		return nil, err
	}

	return &dto.ComparativeAnalysisDTO{
		Period:         period,
		CurrentPeriod:  dto.PeriodRangeDTO{Start: currentStart, End: currentEnd},
		PreviousPeriod: dto.PeriodRangeDTO{Start: previousStart, End: previousEnd},
		Comparison: dto.ComparisonBlockDTO{
			Revenue:       compareMetric(current.Revenue, previous.Revenue),
			Orders:        compareMetric(float64(current.Orders), float64(previous.Orders)),
			AvgOrderValue: compareMetric(current.AvgOrderValue, previous.AvgOrderValue),
		},
	}, nil
}

func compareMetric(current, previous float64) dto.MetricComparisonDTO {
	trend := "down"
	if current >= previous {
		trend = "up"
	}
	return dto.MetricComparisonDTO{
		Current:  current,
		Previous: previous,
		Change:   pctChange(current, previous),
		Trend:    trend,
	}
}

// ExportCSV renders the sales or products report as RFC-4180 CSV. The date
// range defaults to the trailing 30 days.
func (s *Service) ExportCSV(ctx context.Context, scope domain.Scope, reportType, startDate, endDate string) ([]byte, string, error) {
	now := s.now()
	start := now.Add(-30 * 24 * time.Hour)
	end := now
	if startDate != "" {
		parsed, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, "", ErrInvalidDateRange
		}
		start = parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return nil, "", ErrInvalidDateRange
		}
		end = parsed
	}
	end = endOfDay(end)

	switch reportType {
	case "sales":
		return s.exportSales(ctx, scope, start, end)
	case "products":
		return s.exportProducts(ctx, scope, now)
	default:
		return nil, "", ErrInvalidReportType
	}
}

func (s *Service) exportSales(ctx context.Context, scope domain.Scope, start, end time.Time) ([]byte, string, error) {
	orders, err := s.orderRepo.ExportRows(ctx, scope, start, end)
	if err != nil {
		zap.L().Error("failed to export sales report", zap.Error(err))
		return nil, "", err
	}

	records := [][]string{{"Order ID", "Date", "Customer", "Status", "Total", "Items"}}
	for _, o := range orders {
		customer := o.CustomerName
		if customer == "" {
			customer = "N/A"
		}
		records = append(records, []string{
			strconv.Itoa(o.ID),
			o.CreatedAt.Format(dateLayout),
			customer,
			o.Status,
			fmt.Sprintf("%.2f", o.Total),
			strconv.Itoa(o.ItemCount),
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("sales_report_%s_to_%s.csv", start.Format(dateLayout), end.Format(dateLayout))
	return data, filename, nil
}

func (s *Service) exportProducts(ctx context.Context, scope domain.Scope, now time.Time) ([]byte, string, error) {
	products, err := s.productRepo.ExportRows(ctx, scope)
	if err != nil {
		zap.L().Error("failed to export products report", zap.Error(err))
		return nil, "", err
	}

	records := [][]string{{"Product ID", "Title", "Category", "Price", "Stock", "Status"}}
	for _, p := range products {
		category := "N/A"
		if p.Category != nil {
			category = *p.Category
		}
		records = append(records, []string{
			strconv.Itoa(p.ID),
			p.Title,
			category,
			fmt.Sprintf("%.2f", p.Price),
			strconv.Itoa(p.Stock),
			p.Status,
		})
	}

	data, err := writeCSV(records)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("products_report_%s.csv", now.Format(dateLayout))
	return data, filename, nil
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		zap.L().Error("can't write csv", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

// SupplierDashboard assembles the trailing-30-day overview for one supplier.
func (s *Service) SupplierDashboard(ctx context.Context, supplierID int) (*dto.SupplierDashboardDTO, error) {
	now := s.now()
	start := now.Add(-30 * 24 * time.Hour)
	scope := domain.Scope{UserID: supplierID, Role: domain.RoleSupplier}

	var totals *domain.PeriodTotals
	var byStatus []domain.OrderStatusCount
	var topProducts []domain.ProductSales
	var revenueOverTime []domain.TrendBucket
	var catalog *domain.CatalogStats
	var recent []domain.OrderSummary

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.orderRepo.PeriodTotals(gCtx, scope, start, now)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = s.orderRepo.CountByStatus(gCtx, scope)
		return err
	})
	g.Go(func() error {
		var err error
		topProducts, err = s.orderRepo.TopProductsByQuantity(gCtx, supplierID, 10)
		return err
	})
	g.Go(func() error {
		var err error
		revenueOverTime, err = s.orderRepo.TrendBuckets(gCtx, scope, start, now, bucketFormats["day"])
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.productRepo.CatalogStats(gCtx, supplierID)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.orderRepo.ListByScope(gCtx, scope, 5)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build supplier dashboard", zap.Error(err))
		return nil, err
	}

	result := &dto.SupplierDashboardDTO{
		Revenue: dto.TrendTotalsDTO{
			TotalRevenue:      totals.Revenue,
			TotalOrders:       totals.Orders,
			AverageOrderValue: totals.AvgOrderValue,
		},
		TopProducts: mapProductSales(topProducts),
		ProductStats: dto.CatalogStatsDTO{
			TotalProducts:  catalog.TotalProducts,
			ActiveProducts: catalog.ActiveProducts,
			OutOfStock:     catalog.OutOfStock,
			TotalStock:     catalog.TotalStock,
		},
		RecentOrders: mapOrderSummaries(recent),
	}
	result.OrdersByStatus = make([]dto.StatusCountDTO, len(byStatus))
	for i, c := range byStatus {
		result.OrdersByStatus[i] = dto.StatusCountDTO{Status: c.Status, Count: c.Count}
	}
	result.RevenueOverTime = make([]dto.TrendBucketDTO, len(revenueOverTime))
	for i, b := range revenueOverTime {
		result.RevenueOverTime[i] = dto.TrendBucketDTO{
			Bucket:            b.Bucket,
			Revenue:           b.Revenue,
			Orders:            b.Orders,
			AverageOrderValue: b.AvgOrderValue,
		}
	}
	return result, nil
}

// CustomerDashboard assembles order statistics and open orders for a customer.
func (s *Service) CustomerDashboard(ctx context.Context, customerID int) (*dto.CustomerDashboardDTO, error) {
	scope := domain.Scope{UserID: customerID, Role: domain.RoleCustomer}

	var stats *domain.CustomerOrderStats
	var recent, active []domain.OrderSummary

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.orderRepo.CustomerOrderStats(gCtx, customerID)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.orderRepo.ListByScope(gCtx, scope, 5)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.orderRepo.ActiveOrders(gCtx, customerID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build customer dashboard", zap.Error(err))
		return nil, err
	}

	return &dto.CustomerDashboardDTO{
		Stats: dto.CustomerOrderStatsDTO{
			TotalOrders:     stats.TotalOrders,
			TotalSpent:      stats.TotalSpent,
			DeliveredOrders: stats.DeliveredOrders,
		},
		RecentOrders: mapOrderSummaries(recent),
		ActiveOrders: mapOrderSummaries(active),
	}, nil
}

func mapOrderSummaries(orders []domain.OrderSummary) []dto.OrderDTO {
	out := make([]dto.OrderDTO, len(orders))
	for i, o := range orders {
		out[i] = dto.OrderDTO{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			SupplierName: o.SupplierName,
			Status:       o.Status,
			Total:        o.Total,
			ItemCount:    o.ItemCount,
			CreatedAt:    o.CreatedAt,
			DeliveredAt:  o.DeliveredAt,
		}
	}
	return out
}
