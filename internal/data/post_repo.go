package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/meinblog/blog-api/internal/data/pgxutil"
	"github.com/meinblog/blog-api/internal/domain/model"
	errs "github.com/meinblog/blog-api/internal/errors"
)

const postSelect = `
	SELECT p.id, p.title, p.slug, p.content, p.tags, p.likes, p.published,
	       p.published_at, p.created_at, p.updated_at,
	       u.id AS author_id, u.name AS author_name, u.email AS author_email
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// postRow is the joined row shape returned by postSelect.
type postRow struct {
	model.Post
	model.PostAuthor
}

func (row postRow) toPost() *model.Post {
	p := row.Post
	p.Author = row.PostAuthor
	return &p
}

// PostRepo provides database operations for blog posts.
type PostRepo struct {
	Conns        *ConnCache
	timeProvider TimeProvider
}

// NewPostRepo creates a new PostRepo with real time provider.
func NewPostRepo(conns *ConnCache) *PostRepo {
	return &PostRepo{Conns: conns, timeProvider: &RealTimeProvider{}}
}

// NewPostRepoWithTimeProvider creates a new PostRepo with a custom time provider (useful for tests).
func NewPostRepoWithTimeProvider(conns *ConnCache, tp TimeProvider) *PostRepo {
	return &PostRepo{Conns: conns, timeProvider: tp}
}

// ListPublished returns published posts, newest first.
func (r *PostRepo) ListPublished(ctx context.Context, limit int) ([]*model.Post, error) {
	if limit <= 0 {
		limit = 10
	}

	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var rowsOut []postRow
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, postSelect+`
			WHERE p.published
			ORDER BY p.published_at DESC NULLS LAST
			LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[postRow])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}

	posts := make([]*model.Post, len(rowsOut))
	for i := range rowsOut {
		posts[i] = rowsOut[i].toPost()
	}
	return posts, nil
}

// GetBySlug returns a published post by slug.
func (r *PostRepo) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var out postRow
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, postSelect+` WHERE p.slug = $1 AND p.published`, slug)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[postRow])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}
	return out.toPost(), nil
}

// Create inserts a new post. The unique-slug invariant is enforced by the
// database; a violation surfaces as a Conflict error.
func (r *PostRepo) Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error) {
	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var publishedAt any
	if params.Published {
		publishedAt = now
	}

	var out postRow
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			WITH inserted AS (
				INSERT INTO posts (id, title, slug, content, tags, published, published_at, author_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				RETURNING *
			)
			SELECT p.id, p.title, p.slug, p.content, p.tags, p.likes, p.published,
			       p.published_at, p.created_at, p.updated_at,
			       u.id AS author_id, u.name AS author_name, u.email AS author_email
			FROM inserted p
			JOIN users u ON u.id = p.author_id`,
			uuid.New(),
			strings.TrimSpace(params.Title),
			params.Slug,
			params.Content,
			params.Tags,
			params.Published,
			publishedAt,
			params.AuthorID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[postRow])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}
	return out.toPost(), nil
}

// UpdateBySlug applies only the provided fields and returns the updated post.
// Publishing sets published_at; unpublishing clears it.
func (r *PostRepo) UpdateBySlug(ctx context.Context, slug string, fields model.UpdatePostFields) (*model.Post, error) {
	if fields.IsEmpty() {
		return r.getAnyBySlug(ctx, slug)
	}

	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args := r.buildUpdateQuery(slug, fields)

	var out postRow
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[postRow])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}
	return out.toPost(), nil
}

// DeleteBySlug removes a post. Returns a NotFound error when no row matched.
func (r *PostRepo) DeleteBySlug(ctx context.Context, slug string) error {
	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return err
	}

	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM posts WHERE slug = $1`, slug)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	}); err != nil {
		return errs.MapDBError(err)
	}
	return nil
}

// buildUpdateQuery renders the partial UPDATE statement with its positional
// args. updated_at and a publish timestamp both come from the repo's time
// provider, stamped once so they agree.
func (r *PostRepo) buildUpdateQuery(slug string, fields model.UpdatePostFields) (string, []any) {
	now := r.timeProvider.Now().UTC()
	set, args := buildPostUpdate(fields, now)
	args = append(args, now, slug)
	query := fmt.Sprintf(`
		WITH updated AS (
			UPDATE posts SET %s, updated_at = $%d WHERE slug = $%d
			RETURNING *
		)
		SELECT p.id, p.title, p.slug, p.content, p.tags, p.likes, p.published,
		       p.published_at, p.created_at, p.updated_at,
		       u.id AS author_id, u.name AS author_name, u.email AS author_email
		FROM updated p
		JOIN users u ON u.id = p.author_id`,
		strings.Join(set, ", "), len(args)-1, len(args),
	)
	return query, args
}

// buildPostUpdate translates the partial-update fields into SET clauses with
// positional args starting at $1.
func buildPostUpdate(fields model.UpdatePostFields, now any) ([]string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Title != nil {
		add("title", strings.TrimSpace(*fields.Title))
	}
	if fields.Content != nil {
		add("content", *fields.Content)
	}
	if fields.Tags != nil {
		add("tags", *fields.Tags)
	}
	if fields.Published != nil {
		add("published", *fields.Published)
		if *fields.Published {
			add("published_at", now)
		} else {
			set = append(set, "published_at = NULL")
		}
	}
	return set, args
}

// getAnyBySlug fetches a post regardless of publication state, for the
// empty-update case.
func (r *PostRepo) getAnyBySlug(ctx context.Context, slug string) (*model.Post, error) {
	db, err := r.Conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var out postRow
	if err := pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, postSelect+` WHERE p.slug = $1`, slug)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[postRow])
		return err
	}); err != nil {
		return nil, errs.MapDBError(err)
	}
	return out.toPost(), nil
}
