package loyaltyrepo

import (
	"context"
	"errors"

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

func (r *Repository) GetAccount(ctx context.Context, userID int) (*domain.LoyaltyAccount, error) {
	query := `
        SELECT user_id, balance, lifetime_points, tier, updated_at
        FROM loyalty_accounts
        WHERE user_id = $1`
	var account domain.LoyaltyAccount
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&account.UserID, &account.Balance, &account.LifetimePoints, &account.Tier, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get loyalty account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) CreateAccount(ctx context.Context, userID int) (*domain.LoyaltyAccount, error) {
	query := `
        INSERT INTO loyalty_accounts (user_id, balance, lifetime_points, tier)
        VALUES ($1, 0, 0, 'bronze')
        RETURNING user_id, balance, lifetime_points, tier, updated_at`
	var account domain.LoyaltyAccount
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&account.UserID, &account.Balance, &account.LifetimePoints, &account.Tier, &account.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create loyalty account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// Earn atomically credits the balance and lifetime points, re-derives the tier
// from the new lifetime total, and appends the ledger entry, all in one
// transaction. Returns (nil, nil, nil) when the account does not exist.
func (r *Repository) Earn(ctx context.Context, userID, points int, reason, relatedType, relatedID string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error) {
	var account domain.LoyaltyAccount
	var txn domain.LoyaltyTransaction
	found := false

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
        UPDATE loyalty_accounts
        SET balance = balance + $1, lifetime_points = lifetime_points + $1, updated_at = now()
        WHERE user_id = $2
        RETURNING user_id, balance, lifetime_points, tier, updated_at`
		err := r.db.QueryRow(ctx, query, points, userID).Scan(
			&account.UserID, &account.Balance, &account.LifetimePoints, &account.Tier, &account.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("failed to credit loyalty account", zap.Error(err))
			return err
		}
		found = true

		if newTier := domain.TierForPoints(account.LifetimePoints); newTier != account.Tier {
			tierQuery := `
        UPDATE loyalty_accounts
        SET tier = $1
        WHERE user_id = $2`
			if _, err := r.db.Exec(ctx, tierQuery, newTier, userID); err != nil {
				zap.L().Error("failed to update loyalty tier", zap.Error(err))
				return err
			}
			account.Tier = newTier
		}

		txn, err = r.appendTransaction(ctx, userID, domain.TransactionEarn, points, reason, relatedType, relatedID, account.Balance)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, nil
	}
	return &account, &txn, nil
}

// Redeem atomically debits the balance when it covers the requested points and
// appends the ledger entry. The balance guard lives in the UPDATE itself, so
// concurrent redemptions cannot overdraw. Returns (nil, nil, nil) when the
// guard rejects the debit or the account does not exist; the caller tells the
// two apart by reading the account.
func (r *Repository) Redeem(ctx context.Context, userID, points int, reason string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error) {
	var account domain.LoyaltyAccount
	var txn domain.LoyaltyTransaction
	found := false

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
        UPDATE loyalty_accounts
        SET balance = balance - $1, updated_at = now()
        WHERE user_id = $2 AND balance >= $1
        RETURNING user_id, balance, lifetime_points, tier, updated_at`
		err := r.db.QueryRow(ctx, query, points, userID).Scan(
			&account.UserID, &account.Balance, &account.LifetimePoints, &account.Tier, &account.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("failed to debit loyalty account", zap.Error(err))
			return err
		}
		found = true

		txn, err = r.appendTransaction(ctx, userID, domain.TransactionRedeem, points, reason, "", "", account.Balance)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, nil
	}
	return &account, &txn, nil
}

func (r *Repository) appendTransaction(ctx context.Context, userID int, txType string, points int, reason, relatedType, relatedID string, balanceAfter int) (domain.LoyaltyTransaction, error) {
	query := `
        INSERT INTO loyalty_transactions (user_id, type, points, reason, related_type, related_id, balance_after)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`
	txn := domain.LoyaltyTransaction{
		UserID:       userID,
		Type:         txType,
		Points:       points,
		Reason:       reason,
		RelatedType:  relatedType,
		RelatedID:    relatedID,
		BalanceAfter: balanceAfter,
	}
	err := r.db.QueryRow(ctx, query, userID, txType, points, reason, relatedType, relatedID, balanceAfter).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append loyalty transaction", zap.Error(err))
		return domain.LoyaltyTransaction{}, err
	}
	return txn, nil
}

func (r *Repository) Transactions(ctx context.Context, userID, limit, offset int) ([]domain.LoyaltyTransaction, error) {
	query := `
        SELECT id, user_id, type, points, reason, related_type, related_id, balance_after, created_at
        FROM loyalty_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch loyalty transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.LoyaltyTransaction
	for rows.Next() {
		var txn domain.LoyaltyTransaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Type, &txn.Points, &txn.Reason,
			&txn.RelatedType, &txn.RelatedID, &txn.BalanceAfter, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan loyalty transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}

func (r *Repository) CountTransactions(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM loyalty_transactions
        WHERE user_id = $1`
	var total int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("failed to count loyalty transactions", zap.Error(err))
		return 0, err
	}
	return total, nil
}
