package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrTitleSlugRequired = errors.New("标题和 Slug 不能为空")
	ErrSlugExists        = errors.New("Slug 已存在")
	ErrPostNotFound      = errors.New("文章不存在")
	ErrAssetNotFound     = errors.New("文件不存在")
	ErrFileMissing       = errors.New("未上传文件")
	ErrFileNotSupported  = errors.New("不支持的文件类型，仅允许图片")
	ErrFileTooLarge      = errors.New("文件超出大小限制")
	ErrUploadFailed      = errors.New("上传失败")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrTitleSlugRequired: BadRequest,
	ErrSlugExists:        BadRequest,
	ErrPostNotFound:      NotFound,
	ErrAssetNotFound:     NotFound,
	ErrFileMissing:       BadRequest,
	ErrFileNotSupported:  BadRequest,
	ErrFileTooLarge:      BadRequest,
	ErrUploadFailed:      InternalServerError,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
