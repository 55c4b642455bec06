package domain

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is one of the stored article states.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Label returns the human-readable name shown next to an article.
func (s Status) Label() string {
	switch s {
	case StatusPublished:
		return "Published"
	case StatusDraft:
		return "Draft"
	default:
		return string(s)
	}
}

type Article struct {
	ID        int64      `db:"id" json:"id"`
	AuthorID  int64      `db:"user_id" json:"authorId"`
	Title     string     `db:"title" json:"title"`
	Content   string     `db:"content" json:"content"`
	Status    Status     `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
	Author    *User      `db:"-" json:"author,omitempty"`
}

type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"-"`
}

// CreateArticleInput is the validated payload handed to the create flow.
type CreateArticleInput struct {
	AuthorID int64  `json:"authorId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Status   Status `json:"status,omitempty"`
}
