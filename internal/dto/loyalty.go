package dto

import "time"

type LoyaltyPointsDTO struct {
	Points         int    `json:"points" example:"1200"`
	Tier           string `json:"tier" example:"silver"`
	LifetimePoints int    `json:"lifetimePoints" example:"1200"`
}

type LoyaltyTransactionDTO struct {
	ID           int       `json:"id" example:"55"`
	Type         string    `json:"type" example:"earn"`
	Points       int       `json:"points" example:"200"`
	Reason       string    `json:"reason" example:"order delivered"`
	RelatedType  string    `json:"relatedType,omitempty" example:"order"`
	RelatedID    string    `json:"relatedId,omitempty" example:"101"`
	BalanceAfter int       `json:"balanceAfter" example:"1200"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PaginationDTO struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"20"`
	Total int `json:"total" example:"42"`
	Pages int `json:"pages" example:"3"`
}

type LoyaltyTransactionsDTO struct {
	Transactions []LoyaltyTransactionDTO `json:"transactions"`
	Pagination   PaginationDTO           `json:"pagination"`
}

type AwardPointsRequestDTO struct {
	UserID      int    `json:"userId" example:"7"`
	Points      int    `json:"points" example:"200"`
	Reason      string `json:"reason" example:"order delivered"`
	RelatedType string `json:"relatedType,omitempty" example:"order"`
	RelatedID   string `json:"relatedId,omitempty" example:"101"`
}

type AwardPointsResponseDTO struct {
	Transaction LoyaltyTransactionDTO `json:"transaction"`
	NewBalance  int                   `json:"newBalance" example:"1200"`
	NewTier     string                `json:"newTier" example:"silver"`
}

type RedeemPointsRequestDTO struct {
	Points int    `json:"points" example:"200"`
	Reason string `json:"reason" example:"discount voucher"`
}

type RedeemPointsResponseDTO struct {
	Transaction LoyaltyTransactionDTO `json:"transaction"`
	NewBalance  int                   `json:"newBalance" example:"1000"`
}

type TierDTO struct {
	Name      string   `json:"name" example:"silver"`
	MinPoints int      `json:"minPoints" example:"1000"`
	Benefits  []string `json:"benefits"`
	Color     string   `json:"color" example:"#C0C0C0"`
}
