package dto

import "time"

type OrderDetailDTO struct {
	ID          int        `json:"id" example:"101"`
	CustomerID  int        `json:"customerId" example:"5"`
	SupplierID  int        `json:"supplierId" example:"3"`
	Total       float64    `json:"total" example:"1250.50"`
	Status      string     `json:"status" example:"delivered"`
	CreatedAt   time.Time  `json:"createdAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

type OrderDTO struct {
	ID           int        `json:"id" example:"101"`
	CustomerName string     `json:"customerName,omitempty" example:"Jane Doe"`
	SupplierName string     `json:"supplierName,omitempty" example:"Acme Ltd"`
	Status       string     `json:"status" example:"delivered"`
	Total        float64    `json:"total" example:"1250.50"`
	ItemCount    int        `json:"itemCount" example:"3"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
}
