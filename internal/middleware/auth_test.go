package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/careerbridge/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
	seen   string
}

func (v *stubValidator) ValidateToken(_ context.Context, token string) (*types.TokenClaims, error) {
	v.seen = token
	return v.claims, v.err
}

func newAuthTestRouter(validator *stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(validator), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("email")
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID.(uuid.UUID).String(),
			"email":   email,
		})
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newAuthTestRouter(&stubValidator{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadHeaderFormat(t *testing.T) {
	router := newAuthTestRouter(&stubValidator{})

	for _, header := range []string{"valid-token", "Basic valid-token", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q must be rejected", header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	validator := &stubValidator{err: assert.AnError}
	router := newAuthTestRouter(validator)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "bad-token", validator.seen)
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	userID := uuid.New()
	validator := &stubValidator{claims: &types.TokenClaims{UserID: userID, Email: "admin@example.com"}}
	router := newAuthTestRouter(validator)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "admin@example.com")
}
