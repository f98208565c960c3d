package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/b2bmart/b2bmart/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CatalogStats(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("Stats for supplier", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"total_products", "active_products", "out_of_stock", "total_stock"}).
			AddRow(40, 35, 2, 1870)
		mock.ExpectQuery(regexp.QuoteMeta("FILTER (WHERE stock = 0)")).
			WithArgs(3).
			WillReturnRows(rows)

		stats, err := repo.CatalogStats(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, 40, stats.TotalProducts)
		assert.Equal(t, 35, stats.ActiveProducts)
		assert.Equal(t, 2, stats.OutOfStock)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FILTER (WHERE stock = 0)")).
			WithArgs(3).
			WillReturnError(errors.New("db down"))

		_, err := repo.CatalogStats(ctx, 3)
		assert.Error(t, err)
	})
}

func TestRepository_LowStockCount(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"count"}).AddRow(4)
	mock.ExpectQuery(regexp.QuoteMeta("stock > 0 AND stock < 10")).
		WithArgs(3).
		WillReturnRows(rows)

	count, err := repo.LowStockCount(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestRepository_LowStockProducts(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"product_id", "title", "stock", "image"}).
		AddRow(9, "Copper Pipe", 2, "").
		AddRow(4, "Ball Valve", 6, "valve.png")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY stock ASC")).
		WithArgs(3, 5).
		WillReturnRows(rows)

	levels, err := repo.LowStockProducts(ctx, 3, 5)
	assert.NoError(t, err)
	assert.Len(t, levels, 2)
	assert.Equal(t, "Copper Pipe", levels[0].Title)
	assert.Equal(t, 2, levels[0].Stock)
}

func TestRepository_ExportRows(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	category := "Plumbing"

	t.Run("Supplier scope filters by supplier_id", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "title", "category", "price", "stock", "status"}).
			AddRow(9, "Copper Pipe", &category, 12.5, 200, "active").
			AddRow(10, "Odd Part", nil, 3.0, 0, "inactive")
		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.supplier_id = $1")).
			WithArgs(3).
			WillReturnRows(rows)

		products, err := repo.ExportRows(ctx, domain.Scope{UserID: 3, Role: domain.RoleSupplier})
		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Equal(t, "Plumbing", *products[0].Category)
		assert.Nil(t, products[1].Category)
	})

	t.Run("Admin scope exports the whole catalog", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "title", "category", "price", "stock", "status"})
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.id")).
			WillReturnRows(rows)

		products, err := repo.ExportRows(ctx, domain.Scope{UserID: 9, Role: domain.RoleAdmin})
		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}
