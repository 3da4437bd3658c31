package dto

import "time"

// AssetDTO 媒体资源
type AssetDTO struct {
	ID              string    `json:"id"`
	Key             string    `json:"key"`
	URL             string    `json:"url"`
	Filename        string    `json:"filename"`
	Mime            string    `json:"mime"`
	Size            int64     `json:"size"`
	Width           *int      `json:"width"`
	Height          *int      `json:"height"`
	CreatedByUserID *string   `json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AssetPageDTO 媒体资源游标分页
type AssetPageDTO struct {
	Items      []*AssetDTO `json:"items"`
	NextCursor *string     `json:"nextCursor"`
}

// AssetQueryDTO 媒体资源列表查询参数
type AssetQueryDTO struct {
	Limit  int    `form:"limit"`
	Cursor string `form:"cursor"`
}
