package wire

import (
	"ImagineClub/internal/api"
	"ImagineClub/internal/api/config"
	"ImagineClub/internal/api/handler"
	"ImagineClub/internal/pkg/minio"
	"ImagineClub/internal/repository"
	"ImagineClub/internal/service"
	"ImagineClub/internal/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, storage *minio.Storage, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	assetRepo := repository.NewAssetRepository(db)

	postService := service.NewPostService(postRepo)
	assetService := service.NewAssetService(assetRepo, storage, cfg.Upload.MaxSize)

	handlers := &api.HandlersGroup{
		PostHandler:  handler.NewPostHandler(postService),
		NewsHandler:  handler.NewNewsHandler(postService),
		AssetHandler: handler.NewAssetHandler(assetService),
		WebHandler:   web.NewHandler(postService, assetService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
