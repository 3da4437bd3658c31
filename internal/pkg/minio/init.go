package minio

import (
	"ImagineClub/internal/api/config"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// Storage 封装 MinIO 客户端与目标存储桶
type Storage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	endpoint      string
	useSSL        bool
}

// Init 初始化 MinIO 客户端并校验连通性
func Init() (*Storage, error) {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize minio client")
	}

	ctx := context.Background()
	_, err = client.ListBuckets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to minio server")
	}

	return &Storage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		endpoint:      cfg.Endpoint,
		useSSL:        cfg.UseSSL,
	}, nil
}
