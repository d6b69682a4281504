package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/auth"
)

func newAuthTestRouter(t *testing.T, secret []byte) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{jwtSecret: secret}

	r := gin.New()
	r.GET("/protected", s.authRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, viewerID(c))
	})
	r.GET("/open", s.authOptional(), func(c *gin.Context) {
		c.String(http.StatusOK, viewerID(c))
	})
	return r
}

func doGet(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	secret := []byte("test-secret")
	r := newAuthTestRouter(t, secret)

	token, err := auth.GenerateToken("user-1", secret, time.Minute)
	assert.NoError(t, err)

	w := doGet(r, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())

	w = doGet(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "/protected", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired, err := auth.GenerateToken("user-1", secret, -time.Minute)
	assert.NoError(t, err)
	w = doGet(r, "/protected", expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthOptional(t *testing.T) {
	secret := []byte("test-secret")
	r := newAuthTestRouter(t, secret)

	token, err := auth.GenerateToken("user-1", secret, time.Minute)
	assert.NoError(t, err)

	w := doGet(r, "/open", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())

	// anonymous viewers pass through with an empty id
	w = doGet(r, "/open", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
