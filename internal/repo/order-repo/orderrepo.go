package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Statuses that count towards revenue reporting.
const reportableStatuses = `('delivered', 'shipped', 'processing')`

// TrendBuckets groups reportable orders into calendar buckets. bucketFormat is
// a to_char pattern: YYYY-MM-DD for days, IYYY-"W"IW for ISO weeks, YYYY-MM
// for months.
func (r *Repository) TrendBuckets(ctx context.Context, scope domain.Scope, start, end time.Time, bucketFormat string) ([]domain.TrendBucket, error) {
	query := `
        SELECT to_char(created_at, $1) AS bucket,
               COALESCE(SUM(total), 0) AS revenue,
               COUNT(*) AS orders,
               COALESCE(AVG(total), 0) AS avg_order_value
        FROM orders
        WHERE status IN ` + reportableStatuses + `
          AND created_at >= $2 AND created_at <= $3`
	args := []any{bucketFormat, start, end}
	query, args = withScope(query, args, scope, "")
	query += `
        GROUP BY bucket
        ORDER BY bucket`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't aggregate trend buckets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var buckets []domain.TrendBucket
	for rows.Next() {
		var b domain.TrendBucket
		if err := rows.Scan(&b.Bucket, &b.Revenue, &b.Orders, &b.AvgOrderValue); err != nil {
			zap.L().Error("can't scan trend bucket", zap.Error(err))
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// PeriodTotals sums reportable orders over [start, end].
func (r *Repository) PeriodTotals(ctx context.Context, scope domain.Scope, start, end time.Time) (*domain.PeriodTotals, error) {
	query := `
        SELECT COALESCE(SUM(total), 0) AS revenue,
               COUNT(*) AS orders,
               COALESCE(AVG(total), 0) AS avg_order_value
        FROM orders
        WHERE status IN ` + reportableStatuses + `
          AND created_at >= $1 AND created_at <= $2`
	args := []any{start, end}
	query, args = withScope(query, args, scope, "")

	var totals domain.PeriodTotals
	err := r.db.QueryRow(ctx, query, args...).Scan(&totals.Revenue, &totals.Orders, &totals.AvgOrderValue)
	if err != nil {
		zap.L().Error("can't aggregate period totals", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

// ProductSales rolls delivered order line items up per product, joined with
// display fields. ascending=false returns the best sellers first.
func (r *Repository) ProductSales(ctx context.Context, scope domain.Scope, ascending bool, limit int) ([]domain.ProductSales, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}
	query := `
        SELECT i.product_id, p.title, p.image, p.price, p.stock,
               COALESCE(SUM(i.subtotal), 0) AS revenue,
               COALESCE(SUM(i.quantity), 0) AS quantity,
               COUNT(*) AS order_count
        FROM order_items i
        JOIN orders o ON o.id = i.order_id
        JOIN products p ON p.id = i.product_id
        WHERE o.status = 'delivered'`
	args := []any{}
	query, args = withScope(query, args, scope, "o")
	query += fmt.Sprintf(`
        GROUP BY i.product_id, p.title, p.image, p.price, p.stock
        ORDER BY revenue %s
        LIMIT $%d`, direction, len(args)+1)
	args = append(args, limit)

	return r.queryProductSales(ctx, query, args)
}

// TopProductsByQuantity is the dashboard variant of ProductSales ranked by
// units sold.
func (r *Repository) TopProductsByQuantity(ctx context.Context, supplierID, limit int) ([]domain.ProductSales, error) {
	query := `
        SELECT i.product_id, p.title, p.image, p.price, p.stock,
               COALESCE(SUM(i.subtotal), 0) AS revenue,
               COALESCE(SUM(i.quantity), 0) AS quantity,
               COUNT(*) AS order_count
        FROM order_items i
        JOIN orders o ON o.id = i.order_id
        JOIN products p ON p.id = i.product_id
        WHERE o.status = 'delivered' AND o.supplier_id = $1
        GROUP BY i.product_id, p.title, p.image, p.price, p.stock
        ORDER BY quantity DESC
        LIMIT $2`
	return r.queryProductSales(ctx, query, []any{supplierID, limit})
}

func (r *Repository) queryProductSales(ctx context.Context, query string, args []any) ([]domain.ProductSales, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't aggregate product sales", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sales []domain.ProductSales
	for rows.Next() {
		var s domain.ProductSales
		if err := rows.Scan(&s.ProductID, &s.Title, &s.Image, &s.Price, &s.Stock, &s.Revenue, &s.Quantity, &s.OrderCount); err != nil {
			zap.L().Error("can't scan product sales row", zap.Error(err))
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// CategorySales groups delivered line items by product category, highest
// revenue first. Products without a category fall into "Uncategorized".
func (r *Repository) CategorySales(ctx context.Context, scope domain.Scope) ([]domain.CategorySales, error) {
	query := `
        SELECT COALESCE(c.name, 'Uncategorized') AS category,
               COALESCE(SUM(i.subtotal), 0) AS revenue,
               COALESCE(SUM(i.quantity), 0) AS quantity
        FROM order_items i
        JOIN orders o ON o.id = i.order_id
        JOIN products p ON p.id = i.product_id
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE o.status = 'delivered'`
	args := []any{}
	query, args = withScope(query, args, scope, "o")
	query += `
        GROUP BY category
        ORDER BY revenue DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't aggregate category sales", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sales []domain.CategorySales
	for rows.Next() {
		var s domain.CategorySales
		if err := rows.Scan(&s.Category, &s.Revenue, &s.Quantity); err != nil {
			zap.L().Error("can't scan category sales row", zap.Error(err))
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// CustomerStats rolls orders up per customer with display fields, biggest
// spenders first. supplierID 0 means all suppliers.
func (r *Repository) CustomerStats(ctx context.Context, supplierID int) ([]domain.CustomerStats, error) {
	query := `
        SELECT o.customer_id, u.first_name, u.last_name, u.email,
               COUNT(*) AS order_count,
               COALESCE(SUM(o.total), 0) AS total_spent,
               MIN(o.created_at) AS first_order,
               MAX(o.created_at) AS last_order
        FROM orders o
        JOIN users u ON u.id = o.customer_id`
	args := []any{}
	if supplierID != 0 {
		query += `
        WHERE o.supplier_id = $1`
		args = append(args, supplierID)
	}
	query += `
        GROUP BY o.customer_id, u.first_name, u.last_name, u.email
        ORDER BY total_spent DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't aggregate customer stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stats []domain.CustomerStats
	for rows.Next() {
		var s domain.CustomerStats
		if err := rows.Scan(&s.CustomerID, &s.FirstName, &s.LastName, &s.Email, &s.OrderCount, &s.TotalSpent, &s.FirstOrder, &s.LastOrder); err != nil {
			zap.L().Error("can't scan customer stats row", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *Repository) SupplierOrderMetrics(ctx context.Context, supplierID int) (*domain.SupplierOrderMetrics, error) {
	query := `
        SELECT COUNT(*) AS total_orders,
               COUNT(*) FILTER (WHERE status = 'delivered') AS delivered,
               COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
               COUNT(*) FILTER (WHERE status = 'processing') AS processing
        FROM orders
        WHERE supplier_id = $1`
	var m domain.SupplierOrderMetrics
	err := r.db.QueryRow(ctx, query, supplierID).Scan(&m.TotalOrders, &m.Delivered, &m.Cancelled, &m.Processing)
	if err != nil {
		zap.L().Error("can't aggregate supplier order metrics", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// AvgDeliveryDays averages delivered_at - created_at in days over delivered
// orders that recorded a delivery timestamp.
func (r *Repository) AvgDeliveryDays(ctx context.Context, supplierID int) (float64, error) {
	query := `
        SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)) / 86400), 0)
        FROM orders
        WHERE supplier_id = $1 AND status = 'delivered' AND delivered_at IS NOT NULL`
	var days float64
	if err := r.db.QueryRow(ctx, query, supplierID).Scan(&days); err != nil {
		zap.L().Error("can't compute avg delivery time", zap.Error(err))
		return 0, err
	}
	return days, nil
}

func (r *Repository) CountByStatus(ctx context.Context, scope domain.Scope) ([]domain.OrderStatusCount, error) {
	query := `
        SELECT status, COUNT(*) AS count
        FROM orders`
	args := []any{}
	if cond, condArgs := scope.OrderFilter("", 1); cond != "" {
		query += `
        WHERE ` + cond
		args = append(args, condArgs...)
	}
	query += `
        GROUP BY status`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't count orders by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var counts []domain.OrderStatusCount
	for rows.Next() {
		var c domain.OrderStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			zap.L().Error("can't scan status count row", zap.Error(err))
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *Repository) CustomerOrderStats(ctx context.Context, customerID int) (*domain.CustomerOrderStats, error) {
	query := `
        SELECT COUNT(*) AS total_orders,
               COALESCE(SUM(total) FILTER (WHERE status = 'delivered'), 0) AS total_spent,
               COUNT(*) FILTER (WHERE status = 'delivered') AS delivered_orders
        FROM orders
        WHERE customer_id = $1`
	var stats domain.CustomerOrderStats
	err := r.db.QueryRow(ctx, query, customerID).Scan(&stats.TotalOrders, &stats.TotalSpent, &stats.DeliveredOrders)
	if err != nil {
		zap.L().Error("can't aggregate customer order stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

const summaryQuery = `
        SELECT o.id,
               TRIM(cu.first_name || ' ' || cu.last_name) AS customer_name,
               COALESCE(NULLIF(su.business_name, ''), TRIM(su.first_name || ' ' || su.last_name)) AS supplier_name,
               o.status, o.total,
               (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
               o.created_at, o.delivered_at
        FROM orders o
        JOIN users cu ON cu.id = o.customer_id
        JOIN users su ON su.id = o.supplier_id
        WHERE TRUE`

// ListByScope returns the scope's orders newest first, joined with
// counterparty names and item counts. limit 0 means no limit.
func (r *Repository) ListByScope(ctx context.Context, scope domain.Scope, limit int) ([]domain.OrderSummary, error) {
	query := summaryQuery
	args := []any{}
	query, args = withScope(query, args, scope, "o")
	query += `
        ORDER BY o.created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(`
        LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}
	return r.queryOrderSummaries(ctx, query, args)
}

// ActiveOrders returns the customer's orders that are neither delivered nor
// cancelled, newest first.
func (r *Repository) ActiveOrders(ctx context.Context, customerID int) ([]domain.OrderSummary, error) {
	query := summaryQuery + `
          AND o.customer_id = $1
          AND o.status NOT IN ('delivered', 'cancelled')
        ORDER BY o.created_at DESC`
	return r.queryOrderSummaries(ctx, query, []any{customerID})
}

// ExportRows returns the scope's orders created in [start, end], newest first.
func (r *Repository) ExportRows(ctx context.Context, scope domain.Scope, start, end time.Time) ([]domain.OrderSummary, error) {
	query := summaryQuery + `
          AND o.created_at >= $1 AND o.created_at <= $2`
	args := []any{start, end}
	query, args = withScope(query, args, scope, "o")
	query += `
        ORDER BY o.created_at DESC`
	return r.queryOrderSummaries(ctx, query, args)
}

func (r *Repository) queryOrderSummaries(ctx context.Context, query string, args []any) ([]domain.OrderSummary, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.OrderSummary
	for rows.Next() {
		var o domain.OrderSummary
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.SupplierName, &o.Status, &o.Total, &o.ItemCount, &o.CreatedAt, &o.DeliveredAt); err != nil {
			zap.L().Error("can't scan order summary row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// FindByID fetches a single order, nil when absent.
func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT id, customer_id, supplier_id, total, status, created_at, delivered_at
        FROM orders
        WHERE id = $1`
	var order domain.Order
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&order.ID, &order.CustomerID, &order.SupplierID, &order.Total,
		&order.Status, &order.CreatedAt, &order.DeliveredAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// withScope appends the scope's order predicate to a query that already ends
// inside its WHERE clause.
func withScope(query string, args []any, scope domain.Scope, alias string) (string, []any) {
	cond, condArgs := scope.OrderFilter(alias, len(args)+1)
	if cond == "" {
		return query, args
	}
	return query + `
          AND ` + cond, append(args, condArgs...)
}
