package api

import (
	"ImagineClub/internal/api/handler"
	"ImagineClub/internal/web"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler  *handler.PostHandler
	NewsHandler  *handler.NewsHandler
	AssetHandler *handler.AssetHandler
	WebHandler   *web.Handler
}
