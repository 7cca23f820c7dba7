package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, username, role string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "00000000-0000-0000-0000-000000000001",
		"username": username, "role": role,
		"exp": time.Now().Add(dur).Unix(), "iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func adminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin",
		JWTAuth(testSecret),
		RequireRole("admin"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"username": GetClaims(c).Username})
		})
	return r
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	w := do(adminRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	w := do(adminRouter(), signToken(t, "admin", "admin", -time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleRejectsCashier(t *testing.T) {
	w := do(adminRouter(), signToken(t, "cashier1", "cashier", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	w := do(adminRouter(), signToken(t, "admin", "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}
