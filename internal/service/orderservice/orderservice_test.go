package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/b2bmart/b2bmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()
	scope := domain.Scope{UserID: 1, Role: domain.RoleCustomer}

	t.Run("Returns orders for the caller's scope", func(t *testing.T) {
		orders := []domain.OrderSummary{{ID: 2, Status: "delivered"}, {ID: 1, Status: "pending"}}
		repo.EXPECT().ListByScope(ctx, scope, 0).Return(orders, nil)

		got, err := service.List(ctx, scope)
		assert.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("Repo error", func(t *testing.T) {
		repo.EXPECT().ListByScope(ctx, scope, 0).Return(nil, errors.New("db down"))

		_, err := service.List(ctx, scope)
		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	order := &domain.Order{ID: 7, CustomerID: 1, SupplierID: 3, Status: "delivered"}

	tests := []struct {
		name          string
		scope         domain.Scope
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Customer sees own order",
			scope: domain.Scope{UserID: 1, Role: domain.RoleCustomer},
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 7).Return(order, nil)
			},
		},
		{
			name:  "Supplier sees own order",
			scope: domain.Scope{UserID: 3, Role: domain.RoleSupplier},
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 7).Return(order, nil)
			},
		},
		{
			name:  "Admin sees any order",
			scope: domain.Scope{UserID: 99, Role: domain.RoleAdmin},
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 7).Return(order, nil)
			},
		},
		{
			name:  "Foreign customer gets not found",
			scope: domain.Scope{UserID: 2, Role: domain.RoleCustomer},
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 7).Return(order, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:  "Missing order",
			scope: domain.Scope{UserID: 1, Role: domain.RoleCustomer},
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 7).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, err := service.Get(ctx, tt.scope, 7)
			if tt.expectedError != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 7, got.ID)
		})
	}
}
