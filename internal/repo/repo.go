package repo

import (
	"github.com/b2bmart/b2bmart/internal/pg"
	loyaltyrepo "github.com/b2bmart/b2bmart/internal/repo/loyalty-repo"
	orderrepo "github.com/b2bmart/b2bmart/internal/repo/order-repo"
	productrepo "github.com/b2bmart/b2bmart/internal/repo/product-repo"
	userrepo "github.com/b2bmart/b2bmart/internal/repo/user-repo"
	"github.com/b2bmart/b2bmart/internal/service/analyticsservice"
	"github.com/b2bmart/b2bmart/internal/service/authservice"
	"github.com/b2bmart/b2bmart/internal/service/loyaltyservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	OrderRepo   *orderrepo.Repository
	ProductRepo analyticsservice.ProductRepo
	LoyaltyRepo loyaltyservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	orderRepo := orderrepo.New(conn, txManager)
	productRepo := productrepo.New(conn)
	loyaltyRepo := loyaltyrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:    userRepo,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		LoyaltyRepo: loyaltyRepo,
	}
}
