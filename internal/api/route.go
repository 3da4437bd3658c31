package api

import (
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/api/middleware"
	"ImagineClub/internal/pkg/logger"
	"ImagineClub/internal/web"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthDTO{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	// 公开接口：只读已发布内容
	newsGroup := r.Group("/news")
	{
		newsGroup.GET("", group.NewsHandler.ListNews)
		newsGroup.GET("/:slug", group.NewsHandler.GetNewsBySlug)
	}

	// 后台接口：共享密钥守卫
	adminGroup := r.Group("/admin/posts")
	adminGroup.Use(middleware.AdminAuthMiddleware())
	{
		adminGroup.POST("", group.PostHandler.CreatePost)
		adminGroup.GET("", group.PostHandler.ListPosts)
		adminGroup.GET("/:id", group.PostHandler.GetPost)
		adminGroup.PATCH("/:id", group.PostHandler.UpdatePost)
	}

	cmsGroup := r.Group("/cms/assets")
	cmsGroup.Use(middleware.AdminAuthMiddleware())
	{
		cmsGroup.POST("/upload", group.AssetHandler.Upload)
		cmsGroup.GET("", group.AssetHandler.ListAssets)
		cmsGroup.DELETE("/:id", group.AssetHandler.DeleteAsset)
	}

	setupWebRoutes(r, group.WebHandler)

	return r
}

// setupWebRoutes 服务端渲染页面。语言前缀逐个注册，避免与 /news 通配冲突
func setupWebRoutes(r *gin.Engine, h *web.Handler) {
	r.GET("/", h.RootRedirect)
	for _, locale := range web.SupportedLocales {
		prefix := "/" + string(locale)
		r.GET(prefix, h.Home(locale))
		r.GET(prefix+"/news/:slug", h.Article(locale))
	}

	uiGroup := r.Group("/admin/ui")
	{
		uiGroup.GET("/login", h.AdminLoginForm)
		uiGroup.POST("/login", h.AdminLogin)
		uiGroup.POST("/logout", h.AdminLogout)

		authGroup := uiGroup.Group("")
		authGroup.Use(h.RequireAdminUI())
		{
			authGroup.GET("/posts", h.AdminPosts)
			authGroup.GET("/posts/new", h.AdminPostNew)
			authGroup.GET("/posts/:id/edit", h.AdminPostEdit)
			authGroup.POST("/posts/save", h.AdminPostSave)
			authGroup.GET("/assets", h.AdminAssets)
			authGroup.POST("/assets/upload", h.AdminAssetUpload)
			authGroup.POST("/assets/:id/delete", h.AdminAssetDelete)
		}
	}
}
