package loyaltyservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/notify"
	"github.com/b2bmart/b2bmart/pkg/metrics"
)

type Repo interface {
	GetAccount(ctx context.Context, userID int) (*domain.LoyaltyAccount, error)
	CreateAccount(ctx context.Context, userID int) (*domain.LoyaltyAccount, error)
	Earn(ctx context.Context, userID, points int, reason, relatedType, relatedID string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error)
	Redeem(ctx context.Context, userID, points int, reason string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error)
	Transactions(ctx context.Context, userID, limit, offset int) ([]domain.LoyaltyTransaction, error)
	CountTransactions(ctx context.Context, userID int) (int, error)
}

type Notifier interface {
	PublishLoyaltyEvent(ctx context.Context, event notify.LoyaltyEvent) error
}

type Service struct {
	repo     Repo
	notifier Notifier
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

var (
	ErrInvalidPoints      = errors.New("points must be a positive integer")
	ErrAccountNotFound    = errors.New("loyalty account not found")
	ErrInsufficientPoints = errors.New("insufficient points")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Award credits points, bumps lifetime accumulation and re-derives the tier.
// The balance update and the ledger append happen in one storage transaction.
func (s *Service) Award(ctx context.Context, userID, points int, reason, relatedType, relatedID string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error) {
	if points <= 0 {
		return nil, nil, ErrInvalidPoints
	}

	account, txn, err := s.repo.Earn(ctx, userID, points, reason, relatedType, relatedID)
	if err != nil {
		metrics.RecordLoyaltyOperation("award", false)
		zap.L().Error("failed to award points", zap.Error(err))
		return nil, nil, err
	}
	if account == nil {
		metrics.RecordLoyaltyOperation("award", false)
		return nil, nil, ErrAccountNotFound
	}
	metrics.RecordLoyaltyOperation("award", true)

	promoted := domain.TierForPoints(account.LifetimePoints-points) != account.Tier
	s.publish(ctx, notify.LoyaltyEvent{
		UserID:   userID,
		Type:     notify.EventPointsEarned,
		Points:   points,
		Balance:  account.Balance,
		Tier:     string(account.Tier),
		Promoted: promoted,
	})

	zap.L().Info("points awarded",
		zap.Int("user_id", userID),
		zap.Int("points", points),
		zap.String("tier", string(account.Tier)))
	return account, txn, nil
}

// Redeem debits points. Lifetime accumulation and tier are untouched, so a
// redemption can never demote. Fails with ErrInsufficientPoints when the
// balance does not cover the request, leaving it unchanged.
func (s *Service) Redeem(ctx context.Context, userID, points int, reason string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error) {
	if points <= 0 {
		return nil, nil, ErrInvalidPoints
	}

	account, txn, err := s.repo.Redeem(ctx, userID, points, reason)
	if err != nil {
		metrics.RecordLoyaltyOperation("redeem", false)
		zap.L().Error("failed to redeem points", zap.Error(err))
		return nil, nil, err
	}
	if account == nil {
		metrics.RecordLoyaltyOperation("redeem", false)
		existing, err := s.repo.GetAccount(ctx, userID)
		if err != nil {
			return nil, nil, err
		}
		if existing == nil {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, ErrInsufficientPoints
	}
	metrics.RecordLoyaltyOperation("redeem", true)

	s.publish(ctx, notify.LoyaltyEvent{
		UserID:  userID,
		Type:    notify.EventPointsRedeemed,
		Points:  points,
		Balance: account.Balance,
		Tier:    string(account.Tier),
	})

	zap.L().Info("points redeemed", zap.Int("user_id", userID), zap.Int("points", points))
	return account, txn, nil
}

func (s *Service) Points(ctx context.Context, userID int) (*domain.LoyaltyAccount, error) {
	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get loyalty account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) CreateAccount(ctx context.Context, userID int) (*domain.LoyaltyAccount, error) {
	account, err := s.repo.CreateAccount(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create loyalty account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Transactions returns one ledger page, newest first, with the total count.
func (s *Service) Transactions(ctx context.Context, userID, page, limit int) ([]domain.LoyaltyTransaction, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	txns, err := s.repo.Transactions(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("failed to fetch loyalty transactions", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.repo.CountTransactions(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count loyalty transactions", zap.Error(err))
		return nil, 0, err
	}
	return txns, total, nil
}

// TierInfo describes one level of the loyalty program.
type TierInfo struct {
	Name      domain.Tier
	MinPoints int
	Benefits  []string
	Color     string
}

// Tiers returns the static tier catalog. Thresholds match the derivation in
// domain.TierForPoints exactly.
func (s *Service) Tiers() []TierInfo {
	return []TierInfo{
		{
			Name:      domain.TierBronze,
			MinPoints: 0,
			Benefits:  []string{"1x points on purchases", "Standard support"},
			Color:     "#CD7F32",
		},
		{
			Name:      domain.TierSilver,
			MinPoints: domain.SilverThreshold,
			Benefits:  []string{"1.5x points on purchases", "Priority support", "5% discount"},
			Color:     "#C0C0C0",
		},
		{
			Name:      domain.TierGold,
			MinPoints: domain.GoldThreshold,
			Benefits:  []string{"2x points on purchases", "VIP support", "10% discount", "Free shipping"},
			Color:     "#FFD700",
		},
		{
			Name:      domain.TierPlatinum,
			MinPoints: domain.PlatinumThreshold,
			Benefits:  []string{"3x points on purchases", "24/7 support", "15% discount", "Free shipping", "Exclusive deals"},
			Color:     "#E5E4E2",
		},
	}
}

/// publish is best-effort: a broker failure never fails the request.
func (s *Service) publish(ctx context.Context, event notify.LoyaltyEvent) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.PublishLoyaltyEvent(ctx, event); err != nil {
		zap.L().Error("failed to publish loyalty event", zap.Error(err))
	}
}
