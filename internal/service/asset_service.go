package service

import (
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/model"
	"ImagineClub/internal/pkg/consts"
	"ImagineClub/internal/pkg/util"
	"ImagineClub/internal/repository"
	"bytes"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ObjectStorage 对象存储抽象，由 internal/pkg/minio 实现
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteFile(ctx context.Context, objectName string) error
}

// AssetUploadDTO 上传入参，由 handler 从 multipart 解出
type AssetUploadDTO struct {
	Filename string
	Mime     string
	Body     io.Reader
}

type AssetService interface {
	Upload(ctx context.Context, in *AssetUploadDTO) (*dto.AssetDTO, error)
	ListAssets(ctx context.Context, limit int, cursor string) (*dto.AssetPageDTO, error)
	DeleteAsset(ctx context.Context, id string) (*dto.DeleteResultDTO, error)
}

type assetServiceImpl struct {
	assetRepo repository.AssetRepo
	storage   ObjectStorage
	maxSize   int64
	now       func() time.Time
}

func NewAssetService(assetRepo repository.AssetRepo, storage ObjectStorage, maxSize int64) AssetService {
	return &assetServiceImpl{
		assetRepo: assetRepo,
		storage:   storage,
		maxSize:   maxSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upload 上传管线：校验类型 → 派生Key → 全量缓冲 → 上传 → 落库。
// 上传失败不落库；落库失败不回滚已上传对象（孤儿对象，接受该不一致）
func (s *assetServiceImpl) Upload(ctx context.Context, in *AssetUploadDTO) (*dto.AssetDTO, error) {
	if in == nil || in.Body == nil {
		return nil, ErrFileMissing
	}

	if _, ok := consts.AllowedImageMimes[in.Mime]; !ok {
		return nil, ErrFileNotSupported
	}

	buf, err := io.ReadAll(io.LimitReader(in.Body, s.maxSize+1))
	if err != nil {
		return nil, ErrParamInvalid
	}
	if int64(len(buf)) > s.maxSize {
		return nil, ErrFileTooLarge
	}
	size := int64(len(buf))

	id := uuid.NewString()
	key := deriveObjectKey(id, in.Filename, s.now())

	url, err := s.storage.UploadFile(ctx, key, bytes.NewReader(buf), size, in.Mime)
	if err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "key", key, "err", err)
		return nil, ErrUploadFailed
	}

	asset := &model.Asset{
		ID:       id,
		Key:      key,
		URL:      url,
		Filename: in.Filename,
		Mime:     in.Mime,
		Size:     size,
	}
	if err = s.assetRepo.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "asset upload success", "key", key, "mime", in.Mime, "size", size)
	return toAssetDTO(asset)
}

// ListAssets 游标分页：游标为上一页最后一行的创建时间，整页返回满时才给 nextCursor
func (s *assetServiceImpl) ListAssets(ctx context.Context, limit int, cursor string) (*dto.AssetPageDTO, error) {
	limit = util.ClampPageSize(limit)

	before, err := util.DecodeCursor(cursor)
	if err != nil {
		return nil, ErrParamInvalid
	}

	assets, err := s.assetRepo.ListAssets(ctx, limit, before)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AssetDTO, 0, len(assets))
	for _, a := range assets {
		item, err := toAssetDTO(a)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var nextCursor *string
	if len(assets) == limit {
		c := util.EncodeCursor(assets[len(assets)-1].CreatedAt)
		nextCursor = &c
	}

	return &dto.AssetPageDTO{
		Items:      items,
		NextCursor: nextCursor,
	}, nil
}

// DeleteAsset 先删存储对象再删行，两步之间不构成事务
func (s *assetServiceImpl) DeleteAsset(ctx context.Context, id string) (*dto.DeleteResultDTO, error) {
	asset, err := s.assetRepo.GetAsset(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	if err = s.storage.DeleteFile(ctx, asset.Key); err != nil {
		log.ErrorContext(ctx, "MinIO delete failed", "key", asset.Key, "err", err)
		return nil, err
	}

	if err = s.assetRepo.DeleteAsset(ctx, id); err != nil {
		// 对象已删而行还在，留给人工处理
		log.ErrorContext(ctx, "asset row delete failed after object removal", "id", id, "key", asset.Key, "err", err)
		return nil, err
	}

	return &dto.DeleteResultDTO{Status: "ok", Deleted: true}, nil
}

// deriveObjectKey 生成形如 uploads/2026/08/<uuid>.<ext> 的对象Key，无扩展名时用 bin
func deriveObjectKey(id, filename string, now time.Time) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%d/%02d/%s.%s", consts.UploadKeyPrefix, now.Year(), int(now.Month()), id, ext)
}

func toAssetDTO(asset *model.Asset) (*dto.AssetDTO, error) {
	var out dto.AssetDTO
	if err := copier.Copy(&out, asset); err != nil {
		return nil, err
	}
	return &out, nil
}
