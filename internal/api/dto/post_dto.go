package dto

import "time"

// PostDTO 文章
type PostDTO struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	CoverImageURL *string    `json:"coverImageUrl"`
	Status        string     `json:"status"`
	Featured      bool       `json:"featured"`
	PublishedAt   *time.Time `json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// PostBaseDTO 文章 - 新增或修改
type PostBaseDTO struct {
	Title         string     `json:"title" binding:"required" validate:"min=1,max=255"`
	Slug          string     `json:"slug" binding:"required" validate:"min=1,max=255"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	CoverImageURL *string    `json:"coverImageUrl" validate:"omitempty,max=512"`
	Status        string     `json:"status" validate:"omitempty,oneof=draft published"`
	Featured      bool       `json:"featured"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

// NewsListDTO 公开文章列表
type NewsListDTO struct {
	Items []*PostDTO `json:"items"`
	Limit int        `json:"limit"`
}

// NewsQueryDTO 公开文章列表查询参数
type NewsQueryDTO struct {
	Limit int `form:"limit"`
}
