package action

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/domain"
)

func TestCreateArticleRequest_Bind(t *testing.T) {
	tests := []struct {
		name       string
		req        CreateArticleRequest
		wantFields []string
	}{
		{
			name: "valid minimal",
			req:  CreateArticleRequest{Title: "Hello", Content: "0123456789"},
		},
		{
			name: "valid full",
			req: CreateArticleRequest{
				Title: "Hello", Content: "0123456789", Status: "published",
				Category: "design", Tags: "go,chi",
			},
		},
		{
			name:       "whitespace only is missing",
			req:        CreateArticleRequest{Title: "   ", Content: "\t\n"},
			wantFields: []string{"content", "title"},
		},
		{
			name:       "content counted after trim",
			req:        CreateArticleRequest{Title: "Hello", Content: "   123456789   "},
			wantFields: []string{"content"},
		},
		{
			name:       "title too long",
			req:        CreateArticleRequest{Title: strings.Repeat("a", 256), Content: "0123456789"},
			wantFields: []string{"title"},
		},
		{
			name: "title limit counts characters",
			req:  CreateArticleRequest{Title: strings.Repeat("é", 255), Content: "0123456789"},
		},
		{
			name:       "bad status and category",
			req:        CreateArticleRequest{Title: "Hello", Content: "0123456789", Status: "archived", Category: "sports"},
			wantFields: []string{"category", "status"},
		},
		{
			name:       "tags too long",
			req:        CreateArticleRequest{Title: "Hello", Content: "0123456789", Tags: strings.Repeat("t", 501)},
			wantFields: []string{"tags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := req.Bind(httptest.NewRequest("POST", "/articles", nil))

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			got := make([]string, 0, len(verr.Fields))
			for f := range verr.Fields {
				got = append(got, f)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestCreateArticleRequest_NormalizesAndKeepsRawInput(t *testing.T) {
	req := CreateArticleRequest{Title: "  Hello  ", Content: " 0123456789 "}
	require.NoError(t, req.Bind(httptest.NewRequest("POST", "/articles", nil)))

	assert.Equal(t, "Hello", req.Title)
	assert.Equal(t, "draft", req.Status)
	assert.Equal(t, "  Hello  ", req.Input()["title"])

	input := req.toDomain(9)
	assert.Equal(t, domain.CreateArticleInput{
		AuthorID: 9,
		Title:    "Hello",
		Content:  "0123456789",
		Status:   domain.StatusDraft,
	}, input)
}
