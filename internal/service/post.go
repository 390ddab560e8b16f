package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
	"github.com/meinblog/blog-api/internal/ports"
)

// PostCache is an optional read-through cache for the published list.
// Lookups and writes that fail are logged and otherwise ignored.
type PostCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const publishedListCacheKey = "posts:published"

// PostServiceOptions groups dependencies for PostService.
type PostServiceOptions struct {
	Posts ports.PostStore
	Cache PostCache
}

// PostService orchestrates post CRUD with slug generation and list caching.
type PostService struct {
	posts    ports.PostStore
	cache    PostCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewPostService constructs a new PostService. Cache may be nil.
func NewPostService(opts PostServiceOptions) *PostService {
	return &PostService{
		posts:    opts.Posts,
		cache:    opts.Cache,
		cacheTTL: 5 * time.Minute,
		logger:   slog.Default().With("component", "post_service"),
	}
}

// SetCacheTTL overrides the published-list cache lifetime.
func (s *PostService) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

// PostListItem is a published post reduced to its listing shape.
type PostListItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Summary     string           `json:"summary"`
	Tags        []string         `json:"tags"`
	Likes       int              `json:"likes"`
	Author      model.PostAuthor `json:"author"`
	PublishedAt *time.Time       `json:"publishedAt,omitempty"`
}

// ListPublished returns the newest published posts, serving from cache when possible.
func (s *PostService) ListPublished(ctx context.Context, limit int) ([]PostListItem, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, publishedListCacheKey); err != nil {
			s.logger.WarnContext(ctx, "post list cache read failed", "err", err)
		} else if raw != nil {
			var items []PostListItem
			if unmarshalErr := json.Unmarshal(raw, &items); unmarshalErr == nil {
				return items, nil
			}
			s.logger.WarnContext(ctx, "post list cache entry is corrupt, ignoring")
		}
	}

	posts, err := s.posts.ListPublished(ctx, limit)
	if err != nil {
		return nil, err
	}

	items := make([]PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toListItem(p))
	}

	if s.cache != nil {
		if raw, marshalErr := json.Marshal(items); marshalErr == nil {
			if setErr := s.cache.Set(ctx, publishedListCacheKey, raw, s.cacheTTL); setErr != nil {
				s.logger.WarnContext(ctx, "post list cache write failed", "err", setErr)
			}
		}
	}
	return items, nil
}

// GetBySlug returns a single published post.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errs.ValidationField("slug", "slug is required")
	}
	return s.posts.GetBySlug(ctx, slug)
}

// CreateInput groups parameters for authoring a post.
type CreateInput struct {
	Title     string
	Content   string
	Tags      []string
	Published bool
	AuthorID  string
}

// Create validates the input, derives the slug from the title, and stores the post.
func (s *PostService) Create(ctx context.Context, input CreateInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errs.ValidationField("title", "title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errs.ValidationField("content", "content is required")
	}
	authorID, err := parseUserID(input.AuthorID)
	if err != nil {
		return nil, err
	}

	slug := Slugify(title)
	if slug == "" {
		return nil, errs.ValidationField("title", "title yields an empty slug")
	}

	post, createErr := s.posts.Create(ctx, model.CreatePostParams{
		Title:     title,
		Slug:      slug,
		Content:   input.Content,
		Tags:      normalizeTags(input.Tags),
		Published: input.Published,
		AuthorID:  authorID,
	})
	if createErr != nil {
		return nil, createErr
	}

	s.invalidateList(ctx)
	return post, nil
}

// UpdateBySlug applies the given field changes to a post. A changed title
// does not change the slug.
func (s *PostService) UpdateBySlug(ctx context.Context, slug string, fields model.UpdatePostFields) (*model.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errs.ValidationField("slug", "slug is required")
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return nil, errs.ValidationField("title", "title must not be empty")
	}
	if fields.Content != nil && strings.TrimSpace(*fields.Content) == "" {
		return nil, errs.ValidationField("content", "content must not be empty")
	}
	if fields.Tags != nil {
		tags := normalizeTags(*fields.Tags)
		fields.Tags = &tags
	}

	post, err := s.posts.UpdateBySlug(ctx, slug, fields)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return post, nil
}

// DeleteBySlug removes a post.
func (s *PostService) DeleteBySlug(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return errs.ValidationField("slug", "slug is required")
	}
	if err := s.posts.DeleteBySlug(ctx, slug); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

func (s *PostService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, publishedListCacheKey); err != nil {
		s.logger.WarnContext(ctx, "post list cache invalidation failed", "err", err)
	}
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, collapses every non-alphanumeric run into a
// single hyphen, and trims leading and trailing hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func toListItem(p *model.Post) PostListItem {
	return PostListItem{
		ID:          p.ID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Summary:     p.Summary(),
		Tags:        p.Tags,
		Likes:       p.Likes,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
