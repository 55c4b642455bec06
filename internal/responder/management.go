package responder

import (
	"net/http"

	"blog/internal/domain"
)

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var statusOptions = []Option{
	{Label: "All", Value: string(domain.StatusAll)},
	{Label: domain.StatusPublished.Label(), Value: string(domain.StatusPublished)},
	{Label: domain.StatusDraft.Label(), Value: string(domain.StatusDraft)},
}

// AppliedFilters echoes the management filters that survived request parsing.
type AppliedFilters struct {
	Status   string `json:"status,omitempty"`
	Search   string `json:"search,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
}

type ManagementListResponse struct {
	*ArticleListResponse

	Filters            AppliedFilters `json:"filters"`
	StatusOptions      []Option       `json:"statusOptions"`
	ActiveStatusFilter string         `json:"activeStatusFilter"`
	SearchQuery        string         `json:"searchQuery"`
	DateFrom           string         `json:"dateFrom"`
	DateTo             string         `json:"dateTo"`
}

func NewManagementListResponse(page *domain.ArticlePage, filters AppliedFilters) *ManagementListResponse {
	active := filters.Status
	if active == "" {
		active = string(domain.StatusAll)
	}

	return &ManagementListResponse{
		ArticleListResponse: NewArticleListResponse(page),
		Filters:             filters,
		StatusOptions:       statusOptions,
		ActiveStatusFilter:  active,
		SearchQuery:         filters.Search,
		DateFrom:            filters.DateFrom,
		DateTo:              filters.DateTo,
	}
}

func (rd *ManagementListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
