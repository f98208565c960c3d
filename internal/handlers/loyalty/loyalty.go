package loyalty

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/dto"
	loyaltyservice "github.com/b2bmart/b2bmart/internal/service/loyaltyservice"
	"github.com/b2bmart/b2bmart/pkg/auth"
	"github.com/b2bmart/b2bmart/pkg/utils"
)

type Service interface {
	Points(ctx context.Context, userID int) (*domain.LoyaltyAccount, error)
	Award(ctx context.Context, userID, points int, reason, relatedType, relatedID string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error)
	Redeem(ctx context.Context, userID, points int, reason string) (*domain.LoyaltyAccount, *domain.LoyaltyTransaction, error)
	Transactions(ctx context.Context, userID, page, limit int) ([]domain.LoyaltyTransaction, int, error)
	CreateAccount(ctx context.Context, userID int) (*domain.LoyaltyAccount, error)
	Tiers() []loyaltyservice.TierInfo
}

type LoyaltyHandler struct {
	loyaltyService Service
}

func New(loyaltyService Service) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyService: loyaltyService,
	}
}

// GetPoints godoc
//
//	@Summary		Get loyalty balance
//	@Description	Current spendable points, lifetime accumulation and derived tier for the authenticated user.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LoyaltyPointsDTO	"Balance and tier"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/loyalty/points [get]
func (h *LoyaltyHandler) GetPoints(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	account, err := h.loyaltyService.Points(r.Context(), scope.UserID)
	if err != nil {
		if errors.Is(err, loyaltyservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoyaltyPointsDTO{
		Points:         account.Balance,
		Tier:           string(account.Tier),
		LifetimePoints: account.LifetimePoints,
	})
}

// AwardPoints godoc
//
//	@Summary		Award points to a user
//	@Description	Credit points to any user's account. Admin only. Lifetime points grow and the tier is re-derived.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AwardPointsRequestDTO	true	"Award payload"
//	@Success		200		{object}	dto.AwardPointsResponseDTO	"Recorded transaction and new balance"
//	@Failure		400		{object}	utils.Response				"Points must be a positive integer"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Admin role required"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/award [post]
func (h *LoyaltyHandler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())
	if scope.Role != domain.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "admin role required")
		return
	}

	var req dto.AwardPointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, txn, err := h.loyaltyService.Award(r.Context(), req.UserID, req.Points, req.Reason, req.RelatedType, req.RelatedID)
	if err != nil {
		switch {
		case errors.Is(err, loyaltyservice.ErrInvalidPoints):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, loyaltyservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AwardPointsResponseDTO{
		Transaction: mapTransaction(*txn),
		NewBalance:  account.Balance,
		NewTier:     string(account.Tier),
	})
}

// RedeemPoints godoc
//
//	@Summary		Redeem points
//	@Description	Spend points from the caller's balance. Fails when the balance is smaller than the requested amount; tier never changes on redemption.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedeemPointsRequestDTO	true	"Redeem payload"
//	@Success		200		{object}	dto.RedeemPointsResponseDTO	"Recorded transaction and new balance"
//	@Failure		400		{object}	utils.Response				"Non-positive points or insufficient balance"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/redeem [post]
func (h *LoyaltyHandler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	var req dto.RedeemPointsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, txn, err := h.loyaltyService.Redeem(r.Context(), scope.UserID, req.Points, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, loyaltyservice.ErrInvalidPoints):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, loyaltyservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, loyaltyservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedeemPointsResponseDTO{
		Transaction: mapTransaction(*txn),
		NewBalance:  account.Balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Loyalty transaction history
//	@Description	The caller's earn and redeem entries, newest first, paginated.
//	@Tags			Loyalty
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int							false	"Page (default 1)"
//	@Param			limit	query		int							false	"Page size (default 20, max 100)"
//	@Success		200		{object}	dto.LoyaltyTransactionsDTO	"Transactions and pagination"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/loyalty/transactions [get]
func (h *LoyaltyHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	scope := auth.ScopeFromContext(r.Context())

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	transactions, total, err := h.loyaltyService.Transactions(r.Context(), scope.UserID, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.LoyaltyTransactionsDTO{
		Transactions: make([]dto.LoyaltyTransactionDTO, len(transactions)),
		Pagination: dto.PaginationDTO{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}
	for i, txn := range transactions {
		response.Transactions[i] = mapTransaction(txn)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTiers godoc
//
//	@Summary		Tier catalog
//	@Description	The four loyalty tiers with thresholds and benefits. Public.
//	@Tags			Loyalty
//	@Produce		json
//	@Success		200	{array}	dto.TierDTO	"Tiers in ascending threshold order"
//	@Router			/api/loyalty/tiers [get]
func (h *LoyaltyHandler) GetTiers(w http.ResponseWriter, r *http.Request) {
	tiers := h.loyaltyService.Tiers()
	response := make([]dto.TierDTO, len(tiers))
	for i, t := range tiers {
		response[i] = dto.TierDTO{
			Name:      string(t.Name),
			MinPoints: t.MinPoints,
			Benefits:  t.Benefits,
			Color:     t.Color,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func mapTransaction(txn domain.LoyaltyTransaction) dto.LoyaltyTransactionDTO {
	return dto.LoyaltyTransactionDTO{
		ID:           txn.ID,
		Type:         txn.Type,
		Points:       txn.Points,
		Reason:       txn.Reason,
		RelatedType:  txn.RelatedType,
		RelatedID:    txn.RelatedID,
		BalanceAfter: txn.BalanceAfter,
		CreatedAt:    txn.CreatedAt,
	}
}
