package repository

import (
	"ImagineClub/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type AssetRepo interface {
	CreateAsset(ctx context.Context, asset *model.Asset) error
	GetAsset(ctx context.Context, id string) (*model.Asset, error)
	ListAssets(ctx context.Context, limit int, before *time.Time) ([]*model.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
}

type AssetRepoImpl struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepo {
	return &AssetRepoImpl{
		db: db,
	}
}

func (s AssetRepoImpl) CreateAsset(ctx context.Context, asset *model.Asset) error {
	return s.db.WithContext(ctx).Create(asset).Error
}

func (s AssetRepoImpl) GetAsset(ctx context.Context, id string) (*model.Asset, error) {
	var asset model.Asset
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListAssets 按创建时间倒序，before 非空时只取更早的行
func (s AssetRepoImpl) ListAssets(ctx context.Context, limit int, before *time.Time) ([]*model.Asset, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}

	var assets []*model.Asset
	if err := query.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (s AssetRepoImpl) DeleteAsset(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Asset{}, "id = ?", id).Error
}
