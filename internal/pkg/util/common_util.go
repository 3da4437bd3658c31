package util

import (
	"ImagineClub/internal/pkg/consts"
)

// ClampPageSize 将分页大小限制到 [1, MaxPageSize]，0 使用默认值
func ClampPageSize(limit int) int {
	if limit == 0 {
		return consts.DefaultPageSize
	}
	if limit < 1 {
		return 1
	}
	if limit > consts.MaxPageSize {
		return consts.MaxPageSize
	}
	return limit
}

// PtrString 用于将 string 转换为 *string，空串返回 nil
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
