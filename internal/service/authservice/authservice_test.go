package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/internal/dto"
	"github.com/b2bmart/b2bmart/internal/handlers/loyalty"
	"github.com/b2bmart/b2bmart/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *loyalty.MockService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	loyaltyService := loyalty.NewMockService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, loyaltyService, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, loyaltyService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, loyaltyService, passwordHasher, _ := NewMock(t)
	ctx := context.Background()

	validReq := dto.RegisterRequestDTO{
		Email:     "buyer@acme.test",
		Password:  "s3cret",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      "customer",
	}

	tests := []struct {
		name          string
		req           dto.RegisterRequestDTO
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful registration creates a loyalty account",
			req:  validReq,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "buyer@acme.test").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("s3cret").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				loyaltyService.EXPECT().CreateAccount(ctx, 1).Return(&domain.LoyaltyAccount{UserID: 1, Tier: domain.TierBronze}, nil)
			},
		},
		{
			name:          "Admin role cannot self-register",
			req:           dto.RegisterRequestDTO{Email: "root@acme.test", Password: "x", Role: "admin"},
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name: "Email already taken",
			req:  validReq,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "buyer@acme.test").Return(&domain.User{ID: 2, Email: "buyer@acme.test"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Repo error on create",
			req:  validReq,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(ctx, "buyer@acme.test").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("s3cret").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(ctx, tt.req)
			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, user.ID)
			assert.Equal(t, domain.RoleCustomer, user.Role)
			assert.Equal(t, "hashedpassword", user.PasswordHash)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)
	ctx := context.Background()

	user := &domain.User{ID: 1, Email: "buyer@acme.test", PasswordHash: "hashedpassword", Role: domain.RoleCustomer}

	t.Run("Valid credentials", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail(ctx, "buyer@acme.test").Return(user, nil)
		passwordHasher.EXPECT().ComparePassword("hashedpassword", "s3cret").Return(true)

		got, err := service.Authenticate(ctx, "buyer@acme.test", "s3cret")
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail(ctx, "nobody@acme.test").Return(nil, nil)

		_, err := service.Authenticate(ctx, "nobody@acme.test", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo.EXPECT().FindByEmail(ctx, "buyer@acme.test").Return(user, nil)
		passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)

		_, err := service.Authenticate(ctx, "buyer@acme.test", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)
	ctx := context.Background()

	user := &domain.User{ID: 1, Role: domain.RoleSupplier}
	jwtService.EXPECT().GenerateJWT(1, domain.RoleSupplier, gomock.Any()).Return("signed-token", nil)

	token, err := service.GenerateToken(ctx, user)
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}
