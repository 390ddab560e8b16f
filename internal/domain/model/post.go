package model

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const postSummaryLength = 100

// PostAuthor is the author projection joined onto post reads.
type PostAuthor struct {
	ID    uuid.UUID `db:"author_id"    json:"id"`
	Name  string    `db:"author_name"  json:"name"`
	Email string    `db:"author_email" json:"email"`
}

// Post is a stored blog post with its author projection.
type Post struct {
	ID          uuid.UUID  `db:"id"           json:"id"`
	Title       string     `db:"title"        json:"title"`
	Slug        string     `db:"slug"         json:"slug"`
	Content     string     `db:"content"      json:"content"`
	Tags        []string   `db:"tags"         json:"tags,omitempty"`
	Likes       int        `db:"likes"        json:"likes"`
	Published   bool       `db:"published"    json:"published"`
	PublishedAt *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `db:"created_at"   json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at"   json:"updatedAt,omitempty"`

	Author PostAuthor `db:"-" json:"author"`
}

// Summary returns the leading content excerpt used on listing pages. The
// cut is measured in runes so multi-byte content is never split mid-character.
func (p *Post) Summary() string {
	if utf8.RuneCountInString(p.Content) <= postSummaryLength {
		return p.Content
	}
	return string([]rune(p.Content)[:postSummaryLength]) + "..."
}

// CreatePostParams carries the fields needed to insert a post. Slug is
// derived from the title by the service layer.
type CreatePostParams struct {
	Title     string
	Slug      string
	Content   string
	Tags      []string
	Published bool
	AuthorID  uuid.UUID
}

// UpdatePostFields applies a partial update to a post row.
type UpdatePostFields struct {
	Title     *string
	Content   *string
	Tags      *[]string
	Published *bool
}

// IsEmpty reports whether the update would touch no columns.
func (f UpdatePostFields) IsEmpty() bool {
	return f.Title == nil && f.Content == nil && f.Tags == nil && f.Published == nil
}
