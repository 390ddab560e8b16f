package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
)

type mockPostStore struct {
	listPublishedFunc func(context.Context, int) ([]*model.Post, error)
	getBySlugFunc     func(context.Context, string) (*model.Post, error)
	createFunc        func(context.Context, model.CreatePostParams) (*model.Post, error)
	updateBySlugFunc  func(context.Context, string, model.UpdatePostFields) (*model.Post, error)
	deleteBySlugFunc  func(context.Context, string) error
}

func (m *mockPostStore) ListPublished(ctx context.Context, limit int) ([]*model.Post, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockPostStore) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, errs.NotFound("post")
}

func (m *mockPostStore) Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, params)
	}
	return &model.Post{ID: uuid.New(), Title: params.Title, Slug: params.Slug, Content: params.Content}, nil
}

func (m *mockPostStore) UpdateBySlug(ctx context.Context, slug string, fields model.UpdatePostFields) (*model.Post, error) {
	if m.updateBySlugFunc != nil {
		return m.updateBySlugFunc(ctx, slug, fields)
	}
	return nil, errs.NotFound("post")
}

func (m *mockPostStore) DeleteBySlug(ctx context.Context, slug string) error {
	if m.deleteBySlugFunc != nil {
		return m.deleteBySlugFunc(ctx, slug)
	}
	return nil
}

// memoryPostCache records cache traffic for assertions.
type memoryPostCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	deletes []string
}

func newMemoryPostCache() *memoryPostCache {
	return &memoryPostCache{entries: make(map[string][]byte)}
}

func (c *memoryPostCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *memoryPostCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value
	return nil
}

func (c *memoryPostCache) Delete(_ context.Context, key string) error {
	c.deletes = append(c.deletes, key)
	delete(c.entries, key)
	return nil
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Mein erster Beitrag!", "mein-erster-beitrag"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"C++ & Go: A Comparison", "c-go-a-comparison"},
		{"123 Numbers First", "123-numbers-first"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestPostService_Create_GeneratesSlug(t *testing.T) {
	var captured model.CreatePostParams
	store := &mockPostStore{
		createFunc: func(_ context.Context, params model.CreatePostParams) (*model.Post, error) {
			captured = params
			return &model.Post{ID: uuid.New(), Title: params.Title, Slug: params.Slug}, nil
		},
	}
	svc := NewPostService(PostServiceOptions{Posts: store})

	post, err := svc.Create(context.Background(), CreateInput{
		Title:    "Mein erster Beitrag!",
		Content:  "Hallo Welt.",
		Tags:     []string{"go", " go ", "", "web"},
		AuthorID: uuid.NewString(),
	})

	require.NoError(t, err)
	assert.Equal(t, "mein-erster-beitrag", post.Slug)
	assert.Equal(t, []string{"go", "web"}, captured.Tags, "tags are trimmed and deduplicated")
}

func TestPostService_Create_Validation(t *testing.T) {
	svc := NewPostService(PostServiceOptions{Posts: &mockPostStore{}})
	authorID := uuid.NewString()

	cases := []struct {
		name  string
		input CreateInput
		field string
	}{
		{"missing title", CreateInput{Content: "x", AuthorID: authorID}, "title"},
		{"missing content", CreateInput{Title: "Hi", AuthorID: authorID}, "content"},
		{"symbol-only title", CreateInput{Title: "!!!", Content: "x", AuthorID: authorID}, "title"},
		{"bad author id", CreateInput{Title: "Hi", Content: "x", AuthorID: "nope"}, "userId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Equal(t, tc.field, errs.GetField(err))
		})
	}
}

func TestPostService_ListPublished_PopulatesCache(t *testing.T) {
	now := time.Now()
	calls := 0
	store := &mockPostStore{
		listPublishedFunc: func(_ context.Context, limit int) ([]*model.Post, error) {
			calls++
			return []*model.Post{{
				ID:          uuid.New(),
				Title:       "First",
				Slug:        "first",
				Content:     "short body",
				Published:   true,
				PublishedAt: &now,
				Author:      model.PostAuthor{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"},
			}}, nil
		},
	}
	cache := newMemoryPostCache()
	svc := NewPostService(PostServiceOptions{Posts: store, Cache: cache})

	first, err := svc.ListPublished(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "short body", first[0].Summary)

	second, err := svc.ListPublished(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second read must be served from cache")
}

func TestPostService_ListPublished_CacheFailuresAreNonFatal(t *testing.T) {
	store := &mockPostStore{
		listPublishedFunc: func(context.Context, int) ([]*model.Post, error) {
			return []*model.Post{{ID: uuid.New(), Title: "First", Slug: "first", Content: "x"}}, nil
		},
	}
	cache := newMemoryPostCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewPostService(PostServiceOptions{Posts: store, Cache: cache})

	items, err := svc.ListPublished(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPostService_MutationsInvalidateCache(t *testing.T) {
	published := true
	store := &mockPostStore{
		updateBySlugFunc: func(_ context.Context, slug string, _ model.UpdatePostFields) (*model.Post, error) {
			return &model.Post{ID: uuid.New(), Slug: slug}, nil
		},
	}
	cache := newMemoryPostCache()
	svc := NewPostService(PostServiceOptions{Posts: store, Cache: cache})

	_, err := svc.Create(context.Background(), CreateInput{Title: "Hi", Content: "x", AuthorID: uuid.NewString()})
	require.NoError(t, err)

	_, err = svc.UpdateBySlug(context.Background(), "hi", model.UpdatePostFields{Published: &published})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBySlug(context.Background(), "hi"))

	assert.Equal(t, []string{publishedListCacheKey, publishedListCacheKey, publishedListCacheKey}, cache.deletes)
}

func TestPostService_GetBySlug(t *testing.T) {
	store := &mockPostStore{
		getBySlugFunc: func(_ context.Context, slug string) (*model.Post, error) {
			if slug == "first" {
				return &model.Post{ID: uuid.New(), Slug: slug, Published: true}, nil
			}
			return nil, errs.NotFound("post not found")
		},
	}
	svc := NewPostService(PostServiceOptions{Posts: store})

	post, err := svc.GetBySlug(context.Background(), "first")
	require.NoError(t, err)
	assert.Equal(t, "first", post.Slug)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.True(t, errs.IsNotFound(err))

	_, err = svc.GetBySlug(context.Background(), "  ")
	assert.True(t, errs.IsValidation(err))
}
