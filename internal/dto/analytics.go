package dto

import "time"

type TrendBucketDTO struct {
	Bucket            string  `json:"bucket" example:"2024-03-01"`
	Revenue           float64 `json:"revenue" example:"15400.50"`
	Orders            int     `json:"orders" example:"12"`
	AverageOrderValue float64 `json:"averageOrderValue" example:"1283.37"`
}

type TrendTotalsDTO struct {
	TotalRevenue      float64 `json:"totalRevenue" example:"154000.00"`
	TotalOrders       int     `json:"totalOrders" example:"120"`
	AverageOrderValue float64 `json:"averageOrderValue" example:"1283.33"`
}

type TrendComparisonDTO struct {
	RevenueGrowth       float64 `json:"revenueGrowth" example:"12.5"`
	OrdersGrowth        float64 `json:"ordersGrowth" example:"-4.2"`
	AvgOrderValueGrowth float64 `json:"avgOrderValueGrowth" example:"8.1"`
}

type ReportPeriodDTO struct {
	Start    string `json:"start" example:"2024-03-01"`
	End      string `json:"end" example:"2024-03-31"`
	Interval string `json:"interval" example:"day"`
}

type SalesTrendsDTO struct {
	Trends     []TrendBucketDTO   `json:"trends"`
	Totals     TrendTotalsDTO     `json:"totals"`
	Comparison TrendComparisonDTO `json:"comparison"`
	Period     ReportPeriodDTO    `json:"period"`
}

type ProductSalesDTO struct {
	ProductID     int     `json:"productId" example:"12"`
	Title         string  `json:"title" example:"Industrial valve"`
	Image         string  `json:"image,omitempty"`
	Price         float64 `json:"price" example:"49.90"`
	Stock         int     `json:"stock" example:"140"`
	TotalRevenue  float64 `json:"totalRevenue" example:"9980.00"`
	TotalQuantity int     `json:"totalQuantity" example:"200"`
	OrderCount    int     `json:"orderCount" example:"37"`
}

type CategorySalesDTO struct {
	Category string  `json:"category" example:"Plumbing"`
	Revenue  float64 `json:"revenue" example:"9980.00"`
	Quantity int     `json:"quantity" example:"200"`
}

type LowStockProductDTO struct {
	ID    int    `json:"id" example:"12"`
	Title string `json:"title" example:"Industrial valve"`
	Stock int    `json:"stock" example:"4"`
	Image string `json:"image,omitempty"`
}

type StockAnalysisDTO struct {
	TotalProducts    int                  `json:"totalProducts" example:"60"`
	LowStock         int                  `json:"lowStock" example:"5"`
	OutOfStock       int                  `json:"outOfStock" example:"2"`
	LowStockProducts []LowStockProductDTO `json:"lowStockProducts"`
}

type ProductPerformanceDTO struct {
	TopProducts         []ProductSalesDTO  `json:"topProducts"`
	BottomProducts      []ProductSalesDTO  `json:"bottomProducts"`
	CategoryPerformance []CategorySalesDTO `json:"categoryPerformance"`
	StockAnalysis       *StockAnalysisDTO  `json:"stockAnalysis,omitempty"`
}

type CustomerSummaryDTO struct {
	TotalCustomers       int     `json:"totalCustomers" example:"48"`
	NewCustomers         int     `json:"newCustomers" example:"12"`
	ReturningCustomers   int     `json:"returningCustomers" example:"36"`
	AvgLifetimeValue     float64 `json:"avgLifetimeValue" example:"4210.77"`
	AvgOrdersPerCustomer float64 `json:"avgOrdersPerCustomer" example:"3.4"`
}

type TopCustomerDTO struct {
	CustomerID int       `json:"customerId" example:"7"`
	FirstName  string    `json:"firstName" example:"Jane"`
	LastName   string    `json:"lastName" example:"Doe"`
	Email      string    `json:"email" example:"buyer@acme.test"`
	OrderCount int       `json:"orderCount" example:"9"`
	TotalSpent float64   `json:"totalSpent" example:"12800.00"`
	FirstOrder time.Time `json:"firstOrder"`
	LastOrder  time.Time `json:"lastOrder"`
}

type CustomerBehaviorDTO struct {
	Summary      CustomerSummaryDTO `json:"summary"`
	TopCustomers []TopCustomerDTO   `json:"topCustomers"`
}

type OrderMetricsDTO struct {
	TotalOrders int `json:"totalOrders" example:"200"`
	Delivered   int `json:"delivered" example:"180"`
	Cancelled   int `json:"cancelled" example:"8"`
	Processing  int `json:"processing" example:"5"`
}

type ProductStatsDTO struct {
	TotalProducts  int `json:"totalProducts" example:"60"`
	ActiveProducts int `json:"activeProducts" example:"55"`
}

type SupplierPerformanceDTO struct {
	OrderMetrics    OrderMetricsDTO `json:"orderMetrics"`
	FulfillmentRate string          `json:"fulfillmentRate" example:"90.00"`
	AvgDeliveryTime string          `json:"avgDeliveryTime" example:"2.3"`
	ProductStats    ProductStatsDTO `json:"productStats"`
}

type PeriodRangeDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type MetricComparisonDTO struct {
	Current  float64 `json:"current" example:"15400.50"`
	Previous float64 `json:"previous" example:"13200.00"`
	Change   float64 `json:"change" example:"16.67"`
	Trend    string  `json:"trend" example:"up"`
}

type ComparisonBlockDTO struct {
	Revenue       MetricComparisonDTO `json:"revenue"`
	Orders        MetricComparisonDTO `json:"orders"`
	AvgOrderValue MetricComparisonDTO `json:"avgOrderValue"`
}

type ComparativeAnalysisDTO struct {
	Period         string             `json:"period" example:"month"`
	CurrentPeriod  PeriodRangeDTO     `json:"currentPeriod"`
	PreviousPeriod PeriodRangeDTO     `json:"previousPeriod"`
	Comparison     ComparisonBlockDTO `json:"comparison"`
}

type StatusCountDTO struct {
	Status string `json:"status" example:"delivered"`
	Count  int    `json:"count" example:"180"`
}

type CatalogStatsDTO struct {
	TotalProducts  int `json:"totalProducts" example:"60"`
	ActiveProducts int `json:"activeProducts" example:"55"`
	OutOfStock     int `json:"outOfStock" example:"2"`
	TotalStock     int `json:"totalStock" example:"4100"`
}

type SupplierDashboardDTO struct {
	Revenue         TrendTotalsDTO    `json:"revenue"`
	OrdersByStatus  []StatusCountDTO  `json:"ordersByStatus"`
	TopProducts     []ProductSalesDTO `json:"topProducts"`
	RevenueOverTime []TrendBucketDTO  `json:"revenueOverTime"`
	ProductStats    CatalogStatsDTO   `json:"productStats"`
	RecentOrders    []OrderDTO        `json:"recentOrders"`
}

type CustomerOrderStatsDTO struct {
	TotalOrders     int     `json:"totalOrders" example:"12"`
	TotalSpent      float64 `json:"totalSpent" example:"8400.00"`
	DeliveredOrders int     `json:"deliveredOrders" example:"10"`
}

type CustomerDashboardDTO struct {
	Stats        CustomerOrderStatsDTO `json:"stats"`
	RecentOrders []OrderDTO            `json:"recentOrders"`
	ActiveOrders []OrderDTO            `json:"activeOrders"`
}
