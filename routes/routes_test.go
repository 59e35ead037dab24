package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuthMeRouted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupAuthRoutes(router.Group("/api/v1"), nil, nil)

	// Sans jeton la route existe mais refuse l'accès, elle ne doit
	// jamais répondre 404.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
