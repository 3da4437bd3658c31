package model

import (
	"time"
)

type Post struct {
	ID            string     `gorm:"type:char(36);primaryKey" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_slug" json:"slug"`
	Excerpt       *string    `gorm:"type:text" json:"excerpt"`
	Content       *string    `gorm:"type:longtext" json:"content"`
	CoverImageURL *string    `gorm:"type:varchar(512)" json:"coverImageUrl"`
	Status        string     `gorm:"type:varchar(16);not null;default:draft" json:"status"` // draft | published
	Featured      bool       `gorm:"type:tinyint(1);not null;default:0" json:"featured"`
	PublishedAt   *time.Time `gorm:"index:idx_published_at" json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

// IsPublished 是否已发布
func (p *Post) IsPublished() bool {
	return p.Status == "published"
}
