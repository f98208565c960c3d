package domain

import "time"

// Aggregate rows produced by the reporting queries. None of these are
// persisted; they are recomputed per request.

type TrendBucket struct {
	Bucket        string  `db:"bucket"`
	Revenue       float64 `db:"revenue"`
	Orders        int     `db:"orders"`
	AvgOrderValue float64 `db:"avg_order_value"`
}

type PeriodTotals struct {
	Revenue       float64 `db:"revenue"`
	Orders        int     `db:"orders"`
	AvgOrderValue float64 `db:"avg_order_value"`
}

type ProductSales struct {
	ProductID  int     `db:"product_id"`
	Title      string  `db:"title"`
	Image      string  `db:"image"`
	Price      float64 `db:"price"`
	Stock      int     `db:"stock"`
	Revenue    float64 `db:"revenue"`
	Quantity   int     `db:"quantity"`
	OrderCount int     `db:"order_count"`
}

type CategorySales struct {
	Category string  `db:"category"`
	Revenue  float64 `db:"revenue"`
	Quantity int     `db:"quantity"`
}

type CustomerStats struct {
	CustomerID int       `db:"customer_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	OrderCount int       `db:"order_count"`
	TotalSpent float64   `db:"total_spent"`
	FirstOrder time.Time `db:"first_order"`
	LastOrder  time.Time `db:"last_order"`
}

type SupplierOrderMetrics struct {
	TotalOrders int `db:"total_orders"`
	Delivered   int `db:"delivered"`
	Cancelled   int `db:"cancelled"`
	Processing  int `db:"processing"`
}

type OrderStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type CatalogStats struct {
	TotalProducts  int `db:"total_products"`
	ActiveProducts int `db:"active_products"`
	OutOfStock     int `db:"out_of_stock"`
	TotalStock     int `db:"total_stock"`
}

type StockLevel struct {
	ProductID int    `db:"product_id"`
	Title     string `db:"title"`
	Stock     int    `db:"stock"`
	Image     string `db:"image"`
}

type CustomerOrderStats struct {
	TotalOrders     int     `db:"total_orders"`
	TotalSpent      float64 `db:"total_spent"`
	DeliveredOrders int     `db:"delivered_orders"`
}

// OrderSummary is an order row joined with counterparty display fields.
type OrderSummary struct {
	ID           int        `db:"id"`
	CustomerName string     `db:"customer_name"`
	SupplierName string     `db:"supplier_name"`
	Status       string     `db:"status"`
	Total        float64    `db:"total"`
	ItemCount    int        `db:"item_count"`
	CreatedAt    time.Time  `db:"created_at"`
	DeliveredAt  *time.Time `db:"delivered_at"`
}

type ExportProductRow struct {
	ID       int     `db:"id"`
	Title    string  `db:"title"`
	Category *string `db:"category"`
	Price    float64 `db:"price"`
	Stock    int     `db:"stock"`
	Status   string  `db:"status"`
}
