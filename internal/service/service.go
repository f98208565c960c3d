package service

import (
	"github.com/b2bmart/b2bmart/internal/handlers/analytics"
	"github.com/b2bmart/b2bmart/internal/handlers/auth"
	"github.com/b2bmart/b2bmart/internal/handlers/loyalty"
	"github.com/b2bmart/b2bmart/internal/handlers/orders"

	pkgauth "github.com/b2bmart/b2bmart/pkg/auth"

	"github.com/b2bmart/b2bmart/internal/notify"
	"github.com/b2bmart/b2bmart/internal/repo"
	analyticsservice "github.com/b2bmart/b2bmart/internal/service/analyticsservice"
	authservice "github.com/b2bmart/b2bmart/internal/service/authservice"
	loyaltyservice "github.com/b2bmart/b2bmart/internal/service/loyaltyservice"
	orderservice "github.com/b2bmart/b2bmart/internal/service/orderservice"
)

type Services struct {
	AuthService      auth.Service
	OrderService     orders.Service
	LoyaltyService   loyalty.Service
	AnalyticsService analytics.Service
}

func New(repo *repo.Repositories, notifier *notify.Publisher) *Services {
	loyaltyService := loyaltyservice.New(repo.LoyaltyRepo, notifier)
	orderService := orderservice.New(repo.OrderRepo)
	analyticsService := analyticsservice.New(repo.OrderRepo, repo.ProductRepo)
	authService := authservice.New(repo.UserRepo, loyaltyService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:      authService,
		OrderService:     orderService,
		LoyaltyService:   loyaltyService,
		AnalyticsService: analyticsService,
	}
}
