package analyticsservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/b2bmart/b2bmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockProductRepo) {
	ctrl := gomock.NewController(t)
	orderRepo := NewMockOrderRepo(ctrl)
	productRepo := NewMockProductRepo(ctrl)

	service := New(orderRepo, productRepo)
	defer ctrl.Finish()
	return service, orderRepo, productRepo
}

func TestSalesTrends(t *testing.T) {
	ctx := context.Background()
	scope := domain.Scope{UserID: 1, Role: domain.RoleSupplier}

	t.Run("Totals are the sum of the buckets", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)

		buckets := []domain.TrendBucket{
			{Bucket: "2024-03-01", Revenue: 100, Orders: 1, AvgOrderValue: 100},
			{Bucket: "2024-03-02", Revenue: 300, Orders: 3, AvgOrderValue: 100},
		}
		orderRepo.EXPECT().TrendBuckets(gomock.Any(), scope, gomock.Any(), gomock.Any(), "YYYY-MM-DD").Return(buckets, nil)
		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, gomock.Any(), gomock.Any()).Return(&domain.PeriodTotals{Revenue: 200, Orders: 2, AvgOrderValue: 80}, nil)

		result, err := service.SalesTrends(ctx, scope, "2024-03-01", "2024-03-31", "day")
		assert.NoError(t, err)
		assert.Equal(t, 400.0, result.Totals.TotalRevenue)
		assert.Equal(t, 4, result.Totals.TotalOrders)
		assert.Equal(t, 100.0, result.Totals.AverageOrderValue)
		assert.Equal(t, 100.0, result.Comparison.RevenueGrowth)
		assert.Equal(t, 100.0, result.Comparison.OrdersGrowth)
		assert.Equal(t, 25.0, result.Comparison.AvgOrderValueGrowth)
		assert.Equal(t, "2024-03-01", result.Period.Start)
		assert.Equal(t, "day", result.Period.Interval)
	})

	t.Run("Comparison window mirrors the requested range", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)

		var rangeStart, rangeEnd, prevStart, prevEnd time.Time
		orderRepo.EXPECT().TrendBuckets(gomock.Any(), scope, gomock.Any(), gomock.Any(), `IYYY-"W"IW`).DoAndReturn(
			func(_ context.Context, _ domain.Scope, start, end time.Time, _ string) ([]domain.TrendBucket, error) {
				rangeStart, rangeEnd = start, end
				return nil, nil
			})
		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.Scope, start, end time.Time) (*domain.PeriodTotals, error) {
				prevStart, prevEnd = start, end
				return &domain.PeriodTotals{}, nil
			})

		_, err := service.SalesTrends(ctx, scope, "2024-03-01", "2024-03-31", "week")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999000000, time.UTC), rangeEnd)
		assert.Equal(t, rangeStart.Add(-time.Millisecond), prevEnd)
		assert.Equal(t, rangeEnd.Sub(rangeStart), prevEnd.Sub(prevStart))
	})

	t.Run("Empty range with empty previous period reports flat growth", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)

		orderRepo.EXPECT().TrendBuckets(gomock.Any(), scope, gomock.Any(), gomock.Any(), "YYYY-MM").Return(nil, nil)
		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, gomock.Any(), gomock.Any()).Return(&domain.PeriodTotals{}, nil)

		result, err := service.SalesTrends(ctx, scope, "2024-01-01", "2024-06-30", "month")
		assert.NoError(t, err)
		assert.Empty(t, result.Trends)
		assert.Zero(t, result.Totals.TotalRevenue)
		assert.Zero(t, result.Comparison.RevenueGrowth)
		assert.Zero(t, result.Comparison.OrdersGrowth)
	})

	t.Run("Validation", func(t *testing.T) {
		service, _, _ := NewMock(t)

		_, err := service.SalesTrends(ctx, scope, "", "2024-03-31", "day")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		_, err = service.SalesTrends(ctx, scope, "2024-03-01", "", "day")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		_, err = service.SalesTrends(ctx, scope, "2024-03-31", "2024-03-01", "day")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		_, err = service.SalesTrends(ctx, scope, "not-a-date", "2024-03-31", "day")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		_, err = service.SalesTrends(ctx, scope, "2024-03-01", "2024-03-31", "hourly")
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestPctChange(t *testing.T) {
	assert.Equal(t, 100.0, pctChange(50, 0))
	assert.Equal(t, 0.0, pctChange(0, 0))
	assert.Equal(t, -50.0, pctChange(100, 200))
	assert.Equal(t, 25.0, pctChange(125, 100))
}

func TestProductPerformance(t *testing.T) {
	ctx := context.Background()

	t.Run("Supplier gets a stock analysis block", func(t *testing.T) {
		service, orderRepo, productRepo := NewMock(t)
		scope := domain.Scope{UserID: 3, Role: domain.RoleSupplier}

		top := []domain.ProductSales{{ProductID: 1, Title: "Valve", Revenue: 900, Quantity: 10, OrderCount: 4}}
		orderRepo.EXPECT().ProductSales(gomock.Any(), scope, false, 20).Return(top, nil)
		orderRepo.EXPECT().ProductSales(gomock.Any(), scope, true, 10).Return(nil, nil)
		orderRepo.EXPECT().CategorySales(gomock.Any(), scope).Return([]domain.CategorySales{{Category: "Plumbing", Revenue: 900, Quantity: 10}}, nil)
		productRepo.EXPECT().CatalogStats(gomock.Any(), 3).Return(&domain.CatalogStats{TotalProducts: 40, OutOfStock: 2}, nil)
		productRepo.EXPECT().LowStockCount(gomock.Any(), 3).Return(5, nil)
		productRepo.EXPECT().LowStockProducts(gomock.Any(), 3, 5).Return([]domain.StockLevel{{ProductID: 7, Title: "Gasket", Stock: 3}}, nil)

		result, err := service.ProductPerformance(ctx, scope, 0)
		assert.NoError(t, err)
		assert.Len(t, result.TopProducts, 1)
		assert.Equal(t, 900.0, result.TopProducts[0].TotalRevenue)
		assert.NotNil(t, result.StockAnalysis)
		assert.Equal(t, 40, result.StockAnalysis.TotalProducts)
		assert.Equal(t, 5, result.StockAnalysis.LowStock)
		assert.Equal(t, 2, result.StockAnalysis.OutOfStock)
		assert.Len(t, result.StockAnalysis.LowStockProducts, 1)
	})

	t.Run("Customer gets no stock analysis and the limit is clamped", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		scope := domain.Scope{UserID: 5, Role: domain.RoleCustomer}

		orderRepo.EXPECT().ProductSales(gomock.Any(), scope, false, 100).Return(nil, nil)
		orderRepo.EXPECT().ProductSales(gomock.Any(), scope, true, 10).Return(nil, nil)
		orderRepo.EXPECT().CategorySales(gomock.Any(), scope).Return(nil, nil)

		result, err := service.ProductPerformance(ctx, scope, 500)
		assert.NoError(t, err)
		assert.Nil(t, result.StockAnalysis)
	})
}

func TestCustomerBehavior(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer role is rejected", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, err := service.CustomerBehavior(ctx, domain.Scope{UserID: 1, Role: domain.RoleCustomer})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Supplier sees own customers classified by order count", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		scope := domain.Scope{UserID: 3, Role: domain.RoleSupplier}

		stats := []domain.CustomerStats{
			{CustomerID: 1, OrderCount: 4, TotalSpent: 4000},
			{CustomerID: 2, OrderCount: 1, TotalSpent: 500},
		}
		orderRepo.EXPECT().CustomerStats(gomock.Any(), 3).Return(stats, nil)

		result, err := service.CustomerBehavior(ctx, scope)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Summary.TotalCustomers)
		assert.Equal(t, 1, result.Summary.NewCustomers)
		assert.Equal(t, 1, result.Summary.ReturningCustomers)
		assert.Equal(t, 2250.0, result.Summary.AvgLifetimeValue)
		assert.Equal(t, 2.5, result.Summary.AvgOrdersPerCustomer)
		assert.Len(t, result.TopCustomers, 2)
	})

	t.Run("Admin sees all customers", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		orderRepo.EXPECT().CustomerStats(gomock.Any(), 0).Return(nil, nil)

		result, err := service.CustomerBehavior(ctx, domain.Scope{UserID: 9, Role: domain.RoleAdmin})
		assert.NoError(t, err)
		assert.Zero(t, result.Summary.TotalCustomers)
	})
}

func TestSupplierPerformance(t *testing.T) {
	service, orderRepo, productRepo := NewMock(t)
	ctx := context.Background()

	orderRepo.EXPECT().SupplierOrderMetrics(gomock.Any(), 3).Return(&domain.SupplierOrderMetrics{TotalOrders: 200, Delivered: 180, Cancelled: 8, Processing: 5}, nil)
	orderRepo.EXPECT().AvgDeliveryDays(gomock.Any(), 3).Return(2.31, nil)
	productRepo.EXPECT().CatalogStats(gomock.Any(), 3).Return(&domain.CatalogStats{TotalProducts: 60, ActiveProducts: 55}, nil)

	result, err := service.SupplierPerformance(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, "90.00", result.FulfillmentRate)
	assert.Equal(t, "2.3", result.AvgDeliveryTime)
	assert.Equal(t, 200, result.OrderMetrics.TotalOrders)
	assert.Equal(t, 60, result.ProductStats.TotalProducts)
}

func TestComparativeAnalysis(t *testing.T) {
	ctx := context.Background()
	scope := domain.Scope{UserID: 3, Role: domain.RoleSupplier}

	fixedNow := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Month periods snap to calendar boundaries", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		service.now = func() time.Time { return fixedNow }

		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), fixedNow).Return(&domain.PeriodTotals{Revenue: 100, Orders: 10, AvgOrderValue: 10}, nil)
		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC)).Return(&domain.PeriodTotals{Revenue: 200, Orders: 10, AvgOrderValue: 20}, nil)

		result, err := service.ComparativeAnalysis(ctx, scope, "month")
		assert.NoError(t, err)
		assert.Equal(t, "month", result.Period)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), result.CurrentPeriod.Start)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), result.PreviousPeriod.Start)
		assert.Equal(t, "down", result.Comparison.Revenue.Trend)
		assert.Equal(t, -50.0, result.Comparison.Revenue.Change)
		assert.Equal(t, "up", result.Comparison.Orders.Trend)
	})

	t.Run("Quarter boundaries", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		service.now = func() time.Time { return fixedNow }

		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), fixedNow).Return(&domain.PeriodTotals{}, nil)
		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 23, 59, 59, 999000000, time.UTC)).Return(&domain.PeriodTotals{}, nil)

		result, err := service.ComparativeAnalysis(ctx, scope, "quarter")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), result.CurrentPeriod.Start)
	})

	t.Run("Unknown period", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, err := service.ComparativeAnalysis(ctx, scope, "decade")
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	scope := domain.Scope{UserID: 3, Role: domain.RoleSupplier}
	fixedNow := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Sales report quotes embedded commas", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		service.now = func() time.Time { return fixedNow }

		orders := []domain.OrderSummary{
			{ID: 101, CustomerName: "Smith, John", Status: "delivered", Total: 1250.5, ItemCount: 3, CreatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)},
			{ID: 102, CustomerName: "", Status: "shipped", Total: 80, ItemCount: 1, CreatedAt: time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)},
		}
		orderRepo.EXPECT().ExportRows(gomock.Any(), scope, gomock.Any(), gomock.Any()).Return(orders, nil)

		data, filename, err := service.ExportCSV(ctx, scope, "sales", "2024-03-01", "2024-03-31")
		assert.NoError(t, err)
		assert.Equal(t, "sales_report_2024-03-01_to_2024-03-31.csv", filename)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, "Order ID,Date,Customer,Status,Total,Items", lines[0])
		assert.Equal(t, `101,2024-03-02,"Smith, John",delivered,1250.50,3`, lines[1])
		assert.Equal(t, "102,2024-03-03,N/A,shipped,80.00,1", lines[2])
	})

	t.Run("Products report defaults missing category", func(t *testing.T) {
		service, _, productRepo := NewMock(t)
		service.now = func() time.Time { return fixedNow }

		category := "Plumbing"
		products := []domain.ExportProductRow{
			{ID: 1, Title: "Valve", Category: &category, Price: 49.9, Stock: 140, Status: "active"},
			{ID: 2, Title: "Gasket", Category: nil, Price: 5, Stock: 0, Status: "inactive"},
		}
		productRepo.EXPECT().ExportRows(gomock.Any(), scope).Return(products, nil)

		data, filename, err := service.ExportCSV(ctx, scope, "products", "", "")
		assert.NoError(t, err)
		assert.Equal(t, "products_report_2024-03-15.csv", filename)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, "Product ID,Title,Category,Price,Stock,Status", lines[0])
		assert.Equal(t, "1,Valve,Plumbing,49.90,140,active", lines[1])
		assert.Equal(t, "2,Gasket,N/A,5.00,0,inactive", lines[2])
	})

	t.Run("Unknown report type", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, _, err := service.ExportCSV(ctx, scope, "inventory", "", "")
		assert.ErrorIs(t, err, ErrInvalidReportType)
	})

	t.Run("Malformed dates", func(t *testing.T) {
		service, _, _ := NewMock(t)
		_, _, err := service.ExportCSV(ctx, scope, "sales", "03/01/2024", "")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestDashboards(t *testing.T) {
	ctx := context.Background()

	t.Run("Supplier dashboard", func(t *testing.T) {
		service, orderRepo, productRepo := NewMock(t)
		scope := domain.Scope{UserID: 3, Role: domain.RoleSupplier}

		orderRepo.EXPECT().PeriodTotals(gomock.Any(), scope, gomock.Any(), gomock.Any()).Return(&domain.PeriodTotals{Revenue: 5000, Orders: 12, AvgOrderValue: 416.67}, nil)
		orderRepo.EXPECT().CountByStatus(gomock.Any(), scope).Return([]domain.OrderStatusCount{{Status: "delivered", Count: 10}}, nil)
		orderRepo.EXPECT().TopProductsByQuantity(gomock.Any(), 3, 10).Return(nil, nil)
		orderRepo.EXPECT().TrendBuckets(gomock.Any(), scope, gomock.Any(), gomock.Any(), "YYYY-MM-DD").Return(nil, nil)
		orderRepo.EXPECT().ListByScope(gomock.Any(), scope, 5).Return(nil, nil)
		productRepo.EXPECT().CatalogStats(gomock.Any(), 3).Return(&domain.CatalogStats{TotalProducts: 40}, nil)

		result, err := service.SupplierDashboard(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, 5000.0, result.Revenue.TotalRevenue)
		assert.Equal(t, 40, result.ProductStats.TotalProducts)
		assert.Len(t, result.OrdersByStatus, 1)
	})

	t.Run("Customer dashboard", func(t *testing.T) {
		service, orderRepo, _ := NewMock(t)
		scope := domain.Scope{UserID: 5, Role: domain.RoleCustomer}

		orderRepo.EXPECT().CustomerOrderStats(gomock.Any(), 5).Return(&domain.CustomerOrderStats{TotalOrders: 12, TotalSpent: 8400, DeliveredOrders: 10}, nil)
		orderRepo.EXPECT().ListByScope(gomock.Any(), scope, 5).Return([]domain.OrderSummary{{ID: 1}}, nil)
		orderRepo.EXPECT().ActiveOrders(gomock.Any(), 5).Return([]domain.OrderSummary{{ID: 2}}, nil)

		result, err := service.CustomerDashboard(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, 12, result.Stats.TotalOrders)
		assert.Len(t, result.RecentOrders, 1)
		assert.Len(t, result.ActiveOrders, 1)
	})
}
