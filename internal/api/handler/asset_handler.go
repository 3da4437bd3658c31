package handler

import (
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/pkg/response"
	"ImagineClub/internal/service"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	assetSvc service.AssetService
}

func NewAssetHandler(assetSvc service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetSvc: assetSvc,
	}
}

func (s *AssetHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrFileMissing)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrFileMissing)
		return
	}
	defer func() { _ = reader.Close() }()

	asset, err := s.assetSvc.Upload(c.Request.Context(), &service.AssetUploadDTO{
		Filename: file.Filename,
		Mime:     file.Header.Get("Content-Type"),
		Body:     reader,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, asset)
}

func (s *AssetHandler) ListAssets(c *gin.Context) {
	var query dto.AssetQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.assetSvc.ListAssets(c.Request.Context(), query.Limit, query.Cursor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, page)
}

func (s *AssetHandler) DeleteAsset(c *gin.Context) {
	id := c.Param("id")

	result, err := s.assetSvc.DeleteAsset(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
