package consts

// 帖子状态
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// AdminTokenHeader 后台共享密钥请求头
const AdminTokenHeader = "x-admin-token"

// AdminTokenCookie 后台 UI 登录后写入的 Cookie 名
const AdminTokenCookie = "admin_token"

// AllowedImageMimes 上传允许的图片类型
var AllowedImageMimes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// 公共列表分页边界
const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// UploadKeyPrefix 对象存储Key前缀，最终形如 uploads/2026/08/<uuid>.<ext>
const UploadKeyPrefix = "uploads"
