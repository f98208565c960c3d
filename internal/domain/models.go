package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         Role      `db:"role"`
	BusinessName string    `db:"business_name"`
	CreatedAt    time.Time `db:"created_at"`
}

type Product struct {
	ID         int       `db:"id"`
	SupplierID int       `db:"supplier_id"`
	Title      string    `db:"title"`
	CategoryID *int      `db:"category_id"`
	Price      float64   `db:"price"`
	Stock      int       `db:"stock"`
	Image      string    `db:"image"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

const (
	OrderStatusPending    string = "pending"
	OrderStatusProcessing string = "processing"
	OrderStatusShipped    string = "shipped"
	OrderStatusDelivered  string = "delivered"
	OrderStatusCancelled  string = "cancelled"
)

type Order struct {
	ID          int        `db:"id"`
	CustomerID  int        `db:"customer_id"`
	SupplierID  int        `db:"supplier_id"`
	Total       float64    `db:"total"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	DeliveredAt *time.Time `db:"delivered_at"`
}

type OrderItem struct {
	ID        int     `db:"id"`
	OrderID   int     `db:"order_id"`
	ProductID int     `db:"product_id"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
	Subtotal  float64 `db:"subtotal"`
}

type LoyaltyAccount struct {
	UserID         int       `db:"user_id"`
	Balance        int       `db:"balance"`
	LifetimePoints int       `db:"lifetime_points"`
	Tier           Tier      `db:"tier"`
	UpdatedAt      time.Time `db:"updated_at"`
}

const (
	TransactionEarn   string = "earn"
	TransactionRedeem string = "redeem"
)

type LoyaltyTransaction struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Type         string    `db:"type"`
	Points       int       `db:"points"`
	Reason       string    `db:"reason"`
	RelatedType  string    `db:"related_type"`
	RelatedID    string    `db:"related_id"`
	BalanceAfter int       `db:"balance_after"`
	CreatedAt    time.Time `db:"created_at"`
}
