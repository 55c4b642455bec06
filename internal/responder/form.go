package responder

import (
	"net/http"

	"blog/internal/domain"
)

// Categories accepted on create. They are validated but not stored.
var Categories = []string{"technology", "design", "business", "lifestyle", "other"}

var categoryOptions = []Option{
	{Label: "Technology", Value: "technology"},
	{Label: "Design", Value: "design"},
	{Label: "Business", Value: "business"},
	{Label: "Lifestyle", Value: "lifestyle"},
	{Label: "Other", Value: "other"},
}

type FormDefaults struct {
	Status domain.Status `json:"status"`
}

type FormRules struct {
	TitleMaxLength   int `json:"titleMaxLength"`
	ContentMinLength int `json:"contentMinLength"`
	TagsMaxLength    int `json:"tagsMaxLength"`
}

// CreateFormResponse carries what a client needs to render the create form.
type CreateFormResponse struct {
	Defaults        FormDefaults `json:"defaults"`
	StatusOptions   []Option     `json:"statusOptions"`
	CategoryOptions []Option     `json:"categoryOptions"`
	Rules           FormRules    `json:"rules"`
}

func NewCreateFormResponse(rules FormRules) *CreateFormResponse {
	return &CreateFormResponse{
		Defaults: FormDefaults{Status: domain.StatusDraft},
		StatusOptions: []Option{
			{Label: domain.StatusDraft.Label(), Value: string(domain.StatusDraft)},
			{Label: domain.StatusPublished.Label(), Value: string(domain.StatusPublished)},
		},
		CategoryOptions: categoryOptions,
		Rules:           rules,
	}
}

func (rd *CreateFormResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
