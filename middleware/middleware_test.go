package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelsure/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", ok)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/", nil).Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AdminAuthMiddleware("s3cret"), ok)
	r.GET("/disabled", AdminAuthMiddleware(""), ok)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/admin", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer nope"}).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer s3cret"}).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/disabled", map[string]string{"Authorization": "Bearer s3cret"}).Code)
}

func TestPolicyAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/policies/:policyNumber", PolicyAuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("policyNumber"))
	})

	token, err := utils.GeneratePolicyToken("TS-1", "s1", time.Hour)
	require.NoError(t, err)

	w := serve(r, http.MethodGet, "/policies/TS-1", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "TS-1", w.Body.String())

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/policies/TS-1?token="+token, nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/policies/TS-2?token="+token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/policies/TS-1", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/policies/TS-1?token=garbage", nil).Code)

	expired, err := utils.GeneratePolicyToken("TS-1", "s1", -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/policies/TS-1?token="+expired, nil).Code)
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		_, exists := c.Get("logger")
		assert.True(t, exists)
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", map[string]string{"X-Request-ID": "req-1"})
	assert.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
}
