package middleware

import (
	"ImagineClub/internal/api/config"
	"ImagineClub/internal/pkg/consts"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthTestRouter(secret string) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{Admin: config.AdminConfig{Token: secret}}

	reached := false
	r := gin.New()
	r.GET("/guarded", AdminAuthMiddleware(), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	return r, &reached
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	r, reached := newAuthTestRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAdminAuthRejectsWrongToken(t *testing.T) {
	r, reached := newAuthTestRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(consts.AdminTokenHeader, "wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAdminAuthAcceptsHeaderToken(t *testing.T) {
	r, reached := newAuthTestRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(consts.AdminTokenHeader, "secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestAdminAuthAcceptsBearerToken(t *testing.T) {
	r, reached := newAuthTestRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestAdminAuthAcceptsCookieToken(t *testing.T) {
	r, reached := newAuthTestRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: consts.AdminTokenCookie, Value: "secret"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestAdminAuthRejectsAllWhenUnconfigured(t *testing.T) {
	r, reached := newAuthTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(consts.AdminTokenHeader, "")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}
