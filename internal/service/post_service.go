package service

import (
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/model"
	"ImagineClub/internal/pkg/consts"
	"ImagineClub/internal/pkg/util"
	"ImagineClub/internal/repository"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, id string, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, id string) (*dto.PostDTO, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*dto.PostDTO, error)
	ListPublished(ctx context.Context, limit int) ([]*dto.PostDTO, int, error)
	ListAll(ctx context.Context) ([]*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreatePost 创建文章，status 为 published 且未显式给出 publishedAt 时盖当前时间
func (s *postServiceImpl) CreatePost(ctx context.Context, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	title := strings.TrimSpace(postDTO.Title)
	slug := strings.TrimSpace(postDTO.Slug)
	if title == "" || slug == "" {
		return nil, ErrTitleSlugRequired
	}
	if err := util.ValidateDTO(postDTO); err != nil {
		return nil, ErrParamInvalid
	}

	status := postDTO.Status
	if status == "" {
		status = consts.PostStatusDraft
	}

	post := &model.Post{
		ID:            uuid.NewString(),
		Title:         title,
		Slug:          slug,
		Excerpt:       postDTO.Excerpt,
		Content:       postDTO.Content,
		CoverImageURL: postDTO.CoverImageURL,
		Status:        status,
		Featured:      postDTO.Featured,
	}

	if status == consts.PostStatusPublished {
		if postDTO.PublishedAt != nil {
			post.PublishedAt = postDTO.PublishedAt
		} else {
			now := s.now()
			post.PublishedAt = &now
		}
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}

	return toPostDTO(post)
}

// UpdatePost 更新文章，publishedAt 根据库中状态与目标状态重新推导：
// 目标 published 且库中为空 → 盖时间；已有 → 保持；目标 draft → 强制清空
func (s *postServiceImpl) UpdatePost(ctx context.Context, id string, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	title := strings.TrimSpace(postDTO.Title)
	slug := strings.TrimSpace(postDTO.Slug)
	if title == "" || slug == "" {
		return nil, ErrTitleSlugRequired
	}
	if err := util.ValidateDTO(postDTO); err != nil {
		return nil, ErrParamInvalid
	}

	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	status := postDTO.Status
	if status == "" {
		status = consts.PostStatusDraft
	}

	post.Title = title
	post.Slug = slug
	post.Excerpt = postDTO.Excerpt
	post.Content = postDTO.Content
	post.CoverImageURL = postDTO.CoverImageURL
	post.Featured = postDTO.Featured
	post.Status = status

	switch status {
	case consts.PostStatusPublished:
		if post.PublishedAt == nil {
			if postDTO.PublishedAt != nil {
				post.PublishedAt = postDTO.PublishedAt
			} else {
				now := s.now()
				post.PublishedAt = &now
			}
		}
	case consts.PostStatusDraft:
		post.PublishedAt = nil
	}

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}

	return toPostDTO(post)
}

func (s *postServiceImpl) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return toPostDTO(post)
}

func (s *postServiceImpl) GetPublishedBySlug(ctx context.Context, slug string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return toPostDTO(post)
}

// ListPublished 公开列表，limit 收敛到 [1, 50]，返回收敛后的值
func (s *postServiceImpl) ListPublished(ctx context.Context, limit int) ([]*dto.PostDTO, int, error) {
	limit = util.ClampPageSize(limit)

	posts, err := s.postRepo.ListPublished(ctx, limit)
	if err != nil {
		return nil, 0, err
	}

	items, err := batchToPostDTO(posts)
	if err != nil {
		return nil, 0, err
	}
	return items, limit, nil
}

func (s *postServiceImpl) ListAll(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return batchToPostDTO(posts)
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	var out dto.PostDTO
	if err := copier.Copy(&out, post); err != nil {
		return nil, err
	}
	return &out, nil
}

func batchToPostDTO(posts []*model.Post) ([]*dto.PostDTO, error) {
	items := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		item, err := toPostDTO(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
