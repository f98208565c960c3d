package loyaltyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthroughTx(mockTxManager *pg.MockTXManager) {
	mockTxManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_GetAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)
	ctx := context.Background()
	updated := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Account exists", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"user_id", "balance", "lifetime_points", "tier", "updated_at"}).
			AddRow(5, 350, 1200, domain.TierSilver, updated)
		mock.ExpectQuery(regexp.QuoteMeta("FROM loyalty_accounts")).
			WithArgs(5).
			WillReturnRows(rows)

		account, err := repo.GetAccount(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, 350, account.Balance)
		assert.Equal(t, domain.TierSilver, account.Tier)
	})

	t.Run("Account does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM loyalty_accounts")).
			WithArgs(404).
			WillReturnError(pgx.ErrNoRows)

		account, err := repo.GetAccount(ctx, 404)
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM loyalty_accounts")).
			WithArgs(5).
			WillReturnError(errors.New("db down"))

		_, err := repo.GetAccount(ctx, 5)
		assert.Error(t, err)
	})
}

func TestRepository_CreateAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)
	ctx := context.Background()
	updated := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"user_id", "balance", "lifetime_points", "tier", "updated_at"}).
		AddRow(5, 0, 0, domain.TierBronze, updated)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loyalty_accounts")).
		WithArgs(5).
		WillReturnRows(rows)

	account, err := repo.CreateAccount(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, 0, account.Balance)
	assert.Equal(t, domain.TierBronze, account.Tier)
}

func TestRepository_Earn(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	ctx := context.Background()
	updated := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Credit without promotion", func(t *testing.T) {
		passthroughTx(txManager)
		accountRows := pgxmock.NewRows([]string{"user_id", "balance", "lifetime_points", "tier", "updated_at"}).
			AddRow(5, 450, 450, domain.TierBronze, updated)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1, lifetime_points = lifetime_points + $1")).
			WithArgs(100, 5).
			WillReturnRows(accountRows)
		txnRows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(13, updated)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loyalty_transactions")).
			WithArgs(5, domain.TransactionEarn, 100, "order completed", "order", "101", 450).
			WillReturnRows(txnRows)

		account, txn, err := repo.Earn(ctx, 5, 100, "order completed", "order", "101")
		assert.NoError(t, err)
		assert.Equal(t, 450, account.Balance)
		assert.Equal(t, domain.TierBronze, account.Tier)
		assert.Equal(t, 13, txn.ID)
		assert.Equal(t, 450, txn.BalanceAfter)
	})

	t.Run("Crossing a threshold rewrites the tier", func(t *testing.T) {
		passthroughTx(txManager)
		accountRows := pgxmock.NewRows([]string{"user_id", "balance", "lifetime_points", "tier", "updated_at"}).
			AddRow(5, 1050, 1050, domain.TierBronze, updated)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1, lifetime_points = lifetime_points + $1")).
			WithArgs(700, 5).
			WillReturnRows(accountRows)
		mock.ExpectExec(regexp.QuoteMeta("SET tier = $1")).
			WithArgs(domain.TierSilver, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		txnRows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(14, updated)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loyalty_transactions")).
			WithArgs(5, domain.TransactionEarn, 700, "promo", "", "", 1050).
			WillReturnRows(txnRows)

		account, txn, err := repo.Earn(ctx, 5, 700, "promo", "", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.TierSilver, account.Tier)
		assert.Equal(t, 1050, txn.BalanceAfter)
	})

	t.Run("Account does not exist", func(t *testing.T) {
		passthroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1, lifetime_points = lifetime_points + $1")).
			WithArgs(100, 404).
			WillReturnError(pgx.ErrNoRows)

		account, txn, err := repo.Earn(ctx, 404, 100, "order completed", "", "")
		assert.NoError(t, err)
		assert.Nil(t, account)
		assert.Nil(t, txn)
	})

	t.Run("Ledger insert failure rolls the credit back", func(t *testing.T) {
		passthroughTx(txManager)
		accountRows := pgxmock.NewRows([]string{"user_id", "balance", "lifetime_points", "tier", "updated_at"}).
			AddRow(5, 450, 450, domain.TierBronze, updated)
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1, lifetime_points = lifetime_points + $1")).
			WithArgs(100, 5).
			WillReturnRows(accountRows)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loyalty_transactions")).
			WithArgs(5, domain.TransactionEarn, 100, "order completed", "", "", 450).
			WillReturnError(errors.New("insert failed"))

		_, _, err := repo.Earn(ctx, 5, 100, "order completed", "", "")
		assert.Error(t, err)
	})
}

func TestRepository_Redeem(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	ctx := context.Background()
	updated := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Debit within balance", func(t *testing.T) {
		passthroughTx(txManager)
		accountRows := pgxmock.NewRows([]string{"user_id", "balance", "lifetime_points", "tier", "updated_at"}).
			AddRow(5, 150, 1200, domain.TierSilver, updated)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $2 AND balance >= $1")).
			WithArgs(200, 5).
			WillReturnRows(accountRows)
		txnRows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(15, updated)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loyalty_transactions")).
			WithArgs(5, domain.TransactionRedeem, 200, "discount", "", "", 150).
			WillReturnRows(txnRows)

		account, txn, err := repo.Redeem(ctx, 5, 200, "discount")
		assert.NoError(t, err)
		assert.Equal(t, 150, account.Balance)
		assert.Equal(t, 1200, account.LifetimePoints)
		assert.Equal(t, domain.TransactionRedeem, txn.Type)
	})

	t.Run("Guard rejects an overdraw", func(t *testing.T) {
		passthroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $2 AND balance >= $1")).
			WithArgs(9999, 5).
			WillReturnError(pgx.ErrNoRows)

		account, txn, err := repo.Redeem(ctx, 5, 9999, "discount")
		assert.NoError(t, err)
		assert.Nil(t, account)
		assert.Nil(t, txn)
	})
}

func TestRepository_Transactions(t *testing.T) {
	repo, mock, _ := NewMock(t)
	ctx := context.Background()
	created := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "user_id", "type", "points", "reason", "related_type", "related_id", "balance_after", "created_at"}).
		AddRow(15, 5, "redeem", 200, "discount", "", "", 150, created).
		AddRow(14, 5, "earn", 700, "promo", "order", "101", 350, created)
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(5, 20, 0).
		WillReturnRows(rows)

	txns, err := repo.Transactions(ctx, 5, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, "redeem", txns[0].Type)
	assert.Equal(t, "101", txns[1].RelatedID)
}

func TestRepository_CountTransactions(t *testing.T) {
	repo, mock, _ := NewMock(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"count"}).AddRow(42)
	mock.ExpectQuery(regexp.QuoteMeta("FROM loyalty_transactions")).
		WithArgs(5).
		WillReturnRows(rows)

	total, err := repo.CountTransactions(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, 42, total)
}
