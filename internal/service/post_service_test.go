package service

import (
	"ImagineClub/internal/api/dto"
	"ImagineClub/internal/model"
	"ImagineClub/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePostRepo struct {
	posts     map[string]*model.Post
	createErr error
	updateErr error

	lastListLimit int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*model.Post)}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id string) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *post
	return &cp, nil
}

func (f *fakePostRepo) GetPublishedBySlug(_ context.Context, slug string) (*model.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug && p.Status == consts.PostStatusPublished {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePostRepo) ListPublished(_ context.Context, limit int) ([]*model.Post, error) {
	f.lastListLimit = limit
	var out []*model.Post
	for _, p := range f.posts {
		if p.Status == consts.PostStatusPublished && len(out) < limit {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListAll(_ context.Context) ([]*model.Post, error) {
	out := make([]*model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func newTestPostService(repo *fakePostRepo, now time.Time) *postServiceImpl {
	return &postServiceImpl{
		postRepo: repo,
		now:      func() time.Time { return now },
	}
}

func dtoPostBase(title, slug string) dto.PostBaseDTO {
	return dto.PostBaseDTO{Title: title, Slug: slug}
}

func TestCreatePostDefaultsToDraft(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestPostService(repo, time.Now().UTC())

	in := dtoPostBase("Hello", "hello")
	post, err := svc.CreatePost(context.Background(), &in)
	require.NoError(t, err)

	assert.Equal(t, consts.PostStatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.NotEmpty(t, post.ID)
}

func TestCreatePostPublishedStampsNow(t *testing.T) {
	repo := newFakePostRepo()
	now := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestPostService(repo, now)

	in := dtoPostBase("Hello", "hello")
	in.Status = consts.PostStatusPublished

	post, err := svc.CreatePost(context.Background(), &in)
	require.NoError(t, err)

	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, now, *post.PublishedAt)
}

func TestCreatePostHonorsExplicitPublishedAt(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestPostService(repo, time.Now().UTC())

	explicit := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	in := dtoPostBase("Hello", "hello")
	in.Status = consts.PostStatusPublished
	in.PublishedAt = &explicit

	post, err := svc.CreatePost(context.Background(), &in)
	require.NoError(t, err)

	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, explicit, *post.PublishedAt)
}

func TestCreatePostRejectsBlankTitleOrSlug(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestPostService(repo, time.Now().UTC())

	in := dtoPostBase("   ", "hello")
	_, err := svc.CreatePost(context.Background(), &in)
	assert.ErrorIs(t, err, ErrTitleSlugRequired)

	in = dtoPostBase("Hello", "  ")
	_, err = svc.CreatePost(context.Background(), &in)
	assert.ErrorIs(t, err, ErrTitleSlugRequired)

	assert.Empty(t, repo.posts)
}

func TestCreatePostSlugConflict(t *testing.T) {
	repo := newFakePostRepo()
	repo.createErr = gorm.ErrDuplicatedKey
	svc := newTestPostService(repo, time.Now().UTC())

	in := dtoPostBase("Hello", "hello")
	_, err := svc.CreatePost(context.Background(), &in)
	assert.ErrorIs(t, err, ErrSlugExists)
	assert.Empty(t, repo.posts)
}

func TestUpdatePostPublishStampsOnlyWhenUnset(t *testing.T) {
	repo := newFakePostRepo()
	now := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	svc := newTestPostService(repo, now)

	repo.posts["p1"] = &model.Post{ID: "p1", Title: "Old", Slug: "old", Status: consts.PostStatusDraft}

	in := dtoPostBase("New", "new")
	in.Status = consts.PostStatusPublished
	post, err := svc.UpdatePost(context.Background(), "p1", &in)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, now, *post.PublishedAt)

	// 再次发布不覆盖已有时间
	later := newTestPostService(repo, now.Add(time.Hour))
	post, err = later.UpdatePost(context.Background(), "p1", &in)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, now, *post.PublishedAt)
}

func TestUpdatePostDraftClearsPublishedAt(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestPostService(repo, time.Now().UTC())

	published := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.posts["p1"] = &model.Post{
		ID:          "p1",
		Title:       "Hello",
		Slug:        "hello",
		Status:      consts.PostStatusPublished,
		PublishedAt: &published,
	}

	in := dtoPostBase("Hello", "hello")
	in.Status = consts.PostStatusDraft

	post, err := svc.UpdatePost(context.Background(), "p1", &in)
	require.NoError(t, err)
	assert.Nil(t, post.PublishedAt)
	assert.Nil(t, repo.posts["p1"].PublishedAt)
}

func TestUpdatePostNotFound(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestPostService(repo, time.Now().UTC())

	in := dtoPostBase("Hello", "hello")
	_, err := svc.UpdatePost(context.Background(), "missing", &in)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPublishedBySlugSkipsDrafts(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestPostService(repo, time.Now().UTC())

	repo.posts["p1"] = &model.Post{ID: "p1", Title: "Draft", Slug: "draft-only", Status: consts.PostStatusDraft}

	_, err := svc.GetPublishedBySlug(context.Background(), "draft-only")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPublishedClampsLimit(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestPostService(repo, time.Now().UTC())

	_, limit, err := svc.ListPublished(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, consts.MaxPageSize, limit)
	assert.Equal(t, consts.MaxPageSize, repo.lastListLimit)

	_, limit, err = svc.ListPublished(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, consts.DefaultPageSize, limit)
}
