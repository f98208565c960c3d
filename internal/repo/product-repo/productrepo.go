package productrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// CatalogStats summarizes a supplier's product catalog.
func (r *Repository) CatalogStats(ctx context.Context, supplierID int) (*domain.CatalogStats, error) {
	query := `
        SELECT COUNT(*) AS total_products,
               COUNT(*) FILTER (WHERE status = 'active') AS active_products,
               COUNT(*) FILTER (WHERE stock = 0) AS out_of_stock,
               COALESCE(SUM(stock), 0) AS total_stock
        FROM products
        WHERE supplier_id = $1`
	var stats domain.CatalogStats
	err := r.db.QueryRow(ctx, query, supplierID).Scan(&stats.TotalProducts, &stats.ActiveProducts, &stats.OutOfStock, &stats.TotalStock)
	if err != nil {
		zap.L().Error("can't aggregate catalog stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// LowStockCount counts products with 0 < stock < 10.
func (r *Repository) LowStockCount(ctx context.Context, supplierID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM products
        WHERE supplier_id = $1 AND stock > 0 AND stock < 10`
	var count int
	if err := r.db.QueryRow(ctx, query, supplierID).Scan(&count); err != nil {
		zap.L().Error("can't count low-stock products", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// LowStockProducts lists the supplier's scarcest in-stock products.
func (r *Repository) LowStockProducts(ctx context.Context, supplierID, limit int) ([]domain.StockLevel, error) {
	query := `
        SELECT id AS product_id, title, stock, image
        FROM products
        WHERE supplier_id = $1 AND stock > 0 AND stock < 10
        ORDER BY stock ASC
        LIMIT $2`
	rows, err := r.db.Query(ctx, query, supplierID, limit)
	if err != nil {
		zap.L().Error("can't list low-stock products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var levels []domain.StockLevel
	for rows.Next() {
		var l domain.StockLevel
		if err := rows.Scan(&l.ProductID, &l.Title, &l.Stock, &l.Image); err != nil {
			zap.L().Error("can't scan stock level row", zap.Error(err))
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

// ExportRows returns products in the scope's catalog joined with category
// names, suitable for the CSV export.
func (r *Repository) ExportRows(ctx context.Context, scope domain.Scope) ([]domain.ExportProductRow, error) {
	query := `
        SELECT p.id, p.title, c.name AS category, p.price, p.stock, p.status
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id`
	args := []any{}
	if cond, condArgs := scope.ProductFilter("p", 1); cond != "" {
		query += `
        WHERE ` + cond
		args = append(args, condArgs...)
	}
	query += `
        ORDER BY p.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list products for export", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.ExportProductRow
	for rows.Next() {
		var p domain.ExportProductRow
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Price, &p.Stock, &p.Status); err != nil {
			zap.L().Error("can't scan product export row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

