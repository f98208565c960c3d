package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/b2bmart/b2bmart/internal/pg"
	"github.com/b2bmart/b2bmart/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(repos, nil)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.OrderService)
	assert.NotNil(t, services.LoyaltyService)
	assert.NotNil(t, services.AnalyticsService)
}
