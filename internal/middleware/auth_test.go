package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivharejitendra/visora/internal/auth"
	"github.com/shivharejitendra/visora/internal/config"
)

const testSecret = "middleware-test-secret"

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = testSecret

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := auth.GenerateToken("user-42", testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := setupAuthRouter(t)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := setupAuthRouter(t)

	// Без префикса Bearer
	token, err := auth.GenerateToken("user-42", testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := auth.GenerateToken("user-42", testSecret, -time.Minute)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ForgedToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := auth.GenerateToken("user-42", "attacker-secret", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
