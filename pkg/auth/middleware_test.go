package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/b2bmart/b2bmart/internal/domain"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	validToken, err := jwtService.GenerateJWT(7, domain.RoleSupplier, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name          string
		header        string
		expectedCode  int
		expectedScope domain.Scope
	}{
		{
			name:          "Valid bearer token",
			header:        "Bearer " + validToken,
			expectedCode:  http.StatusOK,
			expectedScope: domain.Scope{UserID: 7, Role: domain.RoleSupplier},
		},
		{
			name:         "Missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			header:       "Basic abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			header:       "Bearer garbage",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotScope domain.Scope
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotScope = ScopeFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedScope, gotScope)
			}
		})
	}
}
