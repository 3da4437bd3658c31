package handler

import (
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/pkg/response"
	"ImagineClub/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsHandler 公开只读接口，只暴露已发布内容
type NewsHandler struct {
	postSvc service.PostService
}

func NewNewsHandler(postSvc service.PostService) *NewsHandler {
	return &NewsHandler{
		postSvc: postSvc,
	}
}

func (s *NewsHandler) ListNews(c *gin.Context) {
	var query dto.NewsQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	items, limit, err := s.postSvc.ListPublished(c.Request.Context(), query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewsListDTO{
		Items: items,
		Limit: limit,
	})
}

func (s *NewsHandler) GetNewsBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := s.postSvc.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}
