package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/dto"
	"github.com/b2bmart/b2bmart/internal/service/orderservice"
	"github.com/b2bmart/b2bmart/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetOrders(t *testing.T) {
	handler, service := NewMock(t)
	scope := domain.Scope{UserID: 1, Role: domain.RoleCustomer}

	t.Run("Successful retrieval", func(t *testing.T) {
		delivered := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
		orders := []domain.OrderSummary{
			{ID: 2, SupplierName: "Acme Ltd", Status: "delivered", Total: 1250.5, ItemCount: 3, CreatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), DeliveredAt: &delivered},
			{ID: 1, SupplierName: "Acme Ltd", Status: "pending", Total: 80, ItemCount: 1, CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		}
		service.EXPECT().List(gomock.Any(), scope).Return(orders, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		r = r.WithContext(context.WithValue(r.Context(), auth.ScopeKey, scope))
		w := httptest.NewRecorder()
		handler.GetOrders(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool           `json:"success"`
			Data    []dto.OrderDTO `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body.Data, 2)
		assert.Equal(t, 2, body.Data[0].ID)
		assert.NotNil(t, body.Data[0].DeliveredAt)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().List(gomock.Any(), scope).Return(nil, errors.New("db down"))

		r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		r = r.WithContext(context.WithValue(r.Context(), auth.ScopeKey, scope))
		w := httptest.NewRecorder()
		handler.GetOrders(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetOrder(t *testing.T) {
	handler, service := NewMock(t)
	scope := domain.Scope{UserID: 1, Role: domain.RoleCustomer}

	request := func(id string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/orders/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
		return r.WithContext(context.WithValue(r.Context(), auth.ScopeKey, scope))
	}

	t.Run("Successful retrieval", func(t *testing.T) {
		order := &domain.Order{ID: 7, CustomerID: 1, SupplierID: 3, Total: 1250.5, Status: "delivered", CreatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)}
		service.EXPECT().Get(gomock.Any(), scope, 7).Return(order, nil)

		w := httptest.NewRecorder()
		handler.GetOrder(w, request("7"))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool               `json:"success"`
			Data    dto.OrderDetailDTO `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 7, body.Data.ID)
		assert.Equal(t, 3, body.Data.SupplierID)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetOrder(w, request("abc"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Order not found", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), scope, 404).Return(nil, orderservice.ErrOrderNotFound)

		w := httptest.NewRecorder()
		handler.GetOrder(w, request("404"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
