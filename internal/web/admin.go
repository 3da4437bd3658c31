package web

import (
	"ImagineClub/internal/api/config"
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/pkg/consts"
	"ImagineClub/internal/pkg/util"
	"ImagineClub/internal/service"
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type adminPageData struct {
	Posts []*dto.PostDTO
	Post  *dto.PostDTO
	IsNew bool
	Page  *dto.AssetPageDTO
	Error string
}

// RequireAdminUI 后台页面守卫：Cookie 中的共享密钥无效时跳回登录页
func (h *Handler) RequireAdminUI() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.Cfg.Admin.Token
		token, _ := c.Cookie(consts.AdminTokenCookie)

		if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.Redirect(http.StatusSeeOther, "/admin/ui/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) AdminLoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_login.html", adminPageData{})
}

// AdminLogin 校验表单中的共享密钥并写入 Cookie
func (h *Handler) AdminLogin(c *gin.Context) {
	secret := config.Cfg.Admin.Token
	token := c.PostForm("token")

	if secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		h.render(c, http.StatusUnauthorized, "admin_login.html", adminPageData{Error: "Token 无效"})
		return
	}

	c.SetCookie(consts.AdminTokenCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/ui/posts")
}

func (h *Handler) AdminLogout(c *gin.Context) {
	c.SetCookie(consts.AdminTokenCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/ui/login")
}

func (h *Handler) AdminPosts(c *gin.Context) {
	posts, err := h.postSvc.ListAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_posts.html", adminPageData{Posts: posts})
}

func (h *Handler) AdminPostNew(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_post_form.html", adminPageData{
		Post:  &dto.PostDTO{Status: consts.PostStatusDraft},
		IsNew: true,
	})
}

func (h *Handler) AdminPostEdit(c *gin.Context) {
	post, err := h.postSvc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.Redirect(http.StatusSeeOther, "/admin/ui/posts")
			return
		}
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_post_form.html", adminPageData{Post: post})
}

// AdminPostSave 表单保存：无 id 创建，有 id 更新，冲突时回填表单重新渲染
func (h *Handler) AdminPostSave(c *gin.Context) {
	id := c.PostForm("id")

	form := &dto.PostBaseDTO{
		Title:         c.PostForm("title"),
		Slug:          c.PostForm("slug"),
		Excerpt:       util.PtrString(c.PostForm("excerpt")),
		Content:       util.PtrString(c.PostForm("content")),
		CoverImageURL: util.PtrString(c.PostForm("coverImageUrl")),
		Status:        c.PostForm("status"),
		Featured:      c.PostForm("featured") != "",
	}

	var err error
	if id == "" {
		_, err = h.postSvc.CreatePost(c.Request.Context(), form)
	} else {
		_, err = h.postSvc.UpdatePost(c.Request.Context(), id, form)
	}
	if err != nil {
		if _, known := service.ErrorMap[err]; known {
			h.render(c, http.StatusBadRequest, "admin_post_form.html", adminPageData{
				Post: &dto.PostDTO{
					ID:            id,
					Title:         form.Title,
					Slug:          form.Slug,
					Excerpt:       form.Excerpt,
					Content:       form.Content,
					CoverImageURL: form.CoverImageURL,
					Status:        form.Status,
					Featured:      form.Featured,
				},
				IsNew: id == "",
				Error: err.Error(),
			})
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/ui/posts")
}

func (h *Handler) AdminAssets(c *gin.Context) {
	page, err := h.assetSvc.ListAssets(c.Request.Context(), consts.DefaultPageSize, c.Query("cursor"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_assets.html", adminPageData{
		Page:  page,
		Error: c.Query("err"),
	})
}

// AdminAssetUpload 表单上传，错误信息通过 query 回显
func (h *Handler) AdminAssetUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/ui/assets?err="+url.QueryEscape(service.ErrFileMissing.Error()))
		return
	}

	reader, err := file.Open()
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/ui/assets?err="+url.QueryEscape(service.ErrFileMissing.Error()))
		return
	}
	defer func() { _ = reader.Close() }()

	_, err = h.assetSvc.Upload(c.Request.Context(), &service.AssetUploadDTO{
		Filename: file.Filename,
		Mime:     file.Header.Get("Content-Type"),
		Body:     reader,
	})
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/ui/assets?err="+url.QueryEscape(err.Error()))
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/ui/assets")
}

func (h *Handler) AdminAssetDelete(c *gin.Context) {
	if _, err := h.assetSvc.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin/ui/assets?err="+url.QueryEscape(err.Error()))
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/ui/assets")
}
