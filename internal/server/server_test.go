package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerbridge/backend/config"
	"github.com/careerbridge/backend/internal/testhelpers/mocks"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		ServerHost: "localhost",
		ServerPort: "8080",
		JWTSecret:  "test-secret",
	}

	server := New(cfg,
		new(mocks.MockAuthService),
		new(mocks.MockProfileService),
		new(mocks.MockReviewService),
		new(mocks.MockAvatarService),
	)
	assert.NotNil(t, server)

	// The health endpoint is registered without auth
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{ServerPort: "8080", JWTSecret: "test-secret"}
	server := New(cfg,
		new(mocks.MockAuthService),
		new(mocks.MockProfileService),
		new(mocks.MockReviewService),
		new(mocks.MockAvatarService),
	)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/v1/professionals", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
