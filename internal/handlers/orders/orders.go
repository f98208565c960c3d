package orders

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/dto"
	"github.com/b2bmart/b2bmart/internal/service/orderservice"
	"github.com/b2bmart/b2bmart/pkg/auth"
	"github.com/b2bmart/b2bmart/pkg/utils"
)

type Service interface {
	List(ctx context.Context, scope domain.Scope) ([]domain.OrderSummary, error)
	Get(ctx context.Context, scope domain.Scope, orderID int) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GetOrders godoc
//
//	@Summary		List visible orders
//	@Description	Customers see their purchases, suppliers their sales, admins all orders. Newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderDTO	"Orders"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	orders, err := h.orderService.List(r.Context(), scope)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderDTO, len(orders))
	for i, o := range orders {
		response[i] = dto.OrderDTO{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			SupplierName: o.SupplierName,
			Status:       o.Status,
			Total:        o.Total,
			ItemCount:    o.ItemCount,
			CreatedAt:    o.CreatedAt,
			DeliveredAt:  o.DeliveredAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get a single order
//	@Description	Returns the order when it belongs to the caller's scope.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Order ID"
//	@Success		200	{object}	dto.OrderDetailDTO	"Order"
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || orderID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.Get(r.Context(), scope, orderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.OrderDetailDTO{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		SupplierID:  order.SupplierID,
		Total:       order.Total,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		DeliveredAt: order.DeliveredAt,
	})
}
