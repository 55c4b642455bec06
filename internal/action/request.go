package action

import (
	"net/http"
	"slices"
	"strings"
	"unicode/utf8"

	"blog/internal/domain"
	"blog/internal/responder"
)

const (
	titleMaxLength   = 255
	contentMinLength = 10
	tagsMaxLength    = 500
)

// CreateArticleRequest is the request payload for creating an article.
type CreateArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Status   string `json:"status"`
	Category string `json:"category"`
	Tags     string `json:"tags"`

	input map[string]string
}

// Bind runs after decoding. It keeps the raw values for re-display, trims every field
// and checks the field rules. Title uniqueness needs the store and is checked by the
// caller.
func (a *CreateArticleRequest) Bind(r *http.Request) error {
	a.input = map[string]string{
		"title":    a.Title,
		"content":  a.Content,
		"status":   a.Status,
		"category": a.Category,
		"tags":     a.Tags,
	}

	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	a.Status = strings.TrimSpace(a.Status)
	a.Category = strings.TrimSpace(a.Category)
	a.Tags = strings.TrimSpace(a.Tags)

	if a.Status == "" {
		a.Status = string(domain.StatusDraft)
	}

	if verr := a.validate(); !verr.Empty() {
		return verr
	}
	return nil
}

func (a *CreateArticleRequest) validate() *domain.ValidationError {
	verr := domain.NewValidationError()

	switch {
	case a.Title == "":
		verr.Add("title", "The title field is required.")
	case utf8.RuneCountInString(a.Title) > titleMaxLength:
		verr.Add("title", "The title may not be greater than 255 characters.")
	}

	switch {
	case a.Content == "":
		verr.Add("content", "The content field is required.")
	case utf8.RuneCountInString(a.Content) < contentMinLength:
		verr.Add("content", "The content must be at least 10 characters.")
	}

	if !domain.Status(a.Status).Valid() {
		verr.Add("status", "The selected status is invalid.")
	}

	if a.Category != "" && !slices.Contains(responder.Categories, a.Category) {
		verr.Add("category", "The selected category is invalid.")
	}

	if utf8.RuneCountInString(a.Tags) > tagsMaxLength {
		verr.Add("tags", "The tags may not be greater than 500 characters.")
	}

	return verr
}

// Input returns the values as submitted, before trimming.
func (a *CreateArticleRequest) Input() map[string]string {
	if a.input == nil {
		return map[string]string{}
	}
	return a.input
}

func (a *CreateArticleRequest) toDomain(authorID int64) domain.CreateArticleInput {
	return domain.CreateArticleInput{
		AuthorID: authorID,
		Title:    a.Title,
		Content:  a.Content,
		Status:   domain.Status(a.Status),
	}
}

func formRules() responder.FormRules {
	return responder.FormRules{
		TitleMaxLength:   titleMaxLength,
		ContentMinLength: contentMinLength,
		TagsMaxLength:    tagsMaxLength,
	}
}
