package web

import (
	"ImagineClub/internal/api/config"
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/pkg/consts"
	"ImagineClub/internal/service"
	"errors"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler 服务端渲染页面：公开站点与后台 UI 复用同一套 Service
type Handler struct {
	postSvc  service.PostService
	assetSvc service.AssetService
}

func NewHandler(postSvc service.PostService, assetSvc service.AssetService) *Handler {
	return &Handler{
		postSvc:  postSvc,
		assetSvc: assetSvc,
	}
}

type pageData struct {
	Site config.SiteConfig
	Lang Locale
	Alt  Locale
	T    Dict

	Posts      []*dto.PostDTO
	Post       *dto.PostDTO
	Paragraphs []string
}

// RootRedirect 无语言前缀时跳转到默认语言首页
func (h *Handler) RootRedirect(c *gin.Context) {
	locale := config.Cfg.Site.DefaultLocale
	c.Redirect(http.StatusFound, "/"+locale)
}

// Home 首页，展示已发布文章
func (h *Handler) Home(locale Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.home(c, locale)
	}
}

func (h *Handler) home(c *gin.Context, locale Locale) {
	posts, _, err := h.postSvc.ListPublished(c.Request.Context(), consts.DefaultPageSize)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "home.html", pageData{
		Site:  config.Cfg.Site,
		Lang:  locale,
		Alt:   AltLocale(locale),
		T:     DictFor(locale),
		Posts: posts,
	})
}

// Article 文章详情，未发布或不存在时渲染 404 页
func (h *Handler) Article(locale Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.article(c, locale)
	}
}

func (h *Handler) article(c *gin.Context, locale Locale) {
	post, err := h.postSvc.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			h.render(c, http.StatusNotFound, "not_found.html", pageData{
				Site: config.Cfg.Site,
				Lang: locale,
				T:    DictFor(locale),
			})
			return
		}
		h.renderError(c, err)
		return
	}

	var paragraphs []string
	if post.Content != nil {
		for _, p := range strings.Split(*post.Content, "\n") {
			if p = strings.TrimSpace(p); p != "" {
				paragraphs = append(paragraphs, p)
			}
		}
	}

	h.render(c, http.StatusOK, "article.html", pageData{
		Site:       config.Cfg.Site,
		Lang:       locale,
		Alt:        AltLocale(locale),
		T:          DictFor(locale),
		Post:       post,
		Paragraphs: paragraphs,
	})
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.ErrorContext(c.Request.Context(), "template render failed", "template", name, "err", err)
	}
}

func (h *Handler) renderError(c *gin.Context, err error) {
	log.ErrorContext(c.Request.Context(), "page render failed", "err", err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}
