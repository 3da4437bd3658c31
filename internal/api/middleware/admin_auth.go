package middleware

import (
	"ImagineClub/internal/api/config"
	"ImagineClub/internal/pkg/consts"
	"ImagineClub/internal/pkg/response"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware 校验后台共享密钥，支持 x-admin-token、Bearer 与后台 UI 的 Cookie。
// 密钥未配置时一律拒绝
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.Cfg.Admin.Token
		if secret == "" {
			response.Fail(c, http.StatusUnauthorized, "后台密钥未配置")
			c.Abort()
			return
		}

		token := extractAdminToken(c)
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			response.Fail(c, http.StatusUnauthorized, "Token 缺失或无效")
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractAdminToken(c *gin.Context) string {
	if token := c.GetHeader(consts.AdminTokenHeader); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if token, err := c.Cookie(consts.AdminTokenCookie); err == nil {
		return token
	}
	return ""
}
