package orderservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/b2bmart/b2bmart/internal/domain"
)

type Repo interface {
	ListByScope(ctx context.Context, scope domain.Scope, limit int) ([]domain.OrderSummary, error)
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
}

type Service struct {
	orderRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		orderRepo: repo,
	}
}

var ErrOrderNotFound = errors.New("order not found")

// List returns the orders visible to the caller, newest first. Customers see
// their purchases, suppliers their sales, admins everything.
func (s *Service) List(ctx context.Context, scope domain.Scope) ([]domain.OrderSummary, error) {
	orders, err := s.orderRepo.ListByScope(ctx, scope, 0)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, scope domain.Scope, orderID int) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	switch scope.Role {
	case domain.RoleAdmin:
	case domain.RoleSupplier:
		if order.SupplierID != scope.UserID {
			return nil, ErrOrderNotFound
		}
	default:
		if order.CustomerID != scope.UserID {
			return nil, ErrOrderNotFound
		}
	}
	return order, nil
}
