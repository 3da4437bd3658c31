package model

import (
	"time"
)

type Asset struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	Key             string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_key" json:"key"`
	URL             string    `gorm:"type:varchar(512);not null" json:"url"`
	Filename        string    `gorm:"type:varchar(255);not null" json:"filename"`
	Mime            string    `gorm:"type:varchar(64);not null" json:"mime"`
	Size            int64     `gorm:"not null;default:0" json:"size"`
	Width           *int      `json:"width"`  // 预留，暂不做图片解析
	Height          *int      `json:"height"` // 预留，暂不做图片解析
	CreatedByUserID *string   `gorm:"type:char(36)" json:"createdByUserId"`
	CreatedAt       time.Time `gorm:"index:idx_created_at" json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Asset) TableName() string {
	return "assets"
}
