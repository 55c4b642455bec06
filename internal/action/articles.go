package action

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"blog/internal/config"
	"blog/internal/domain"
	"blog/internal/responder"
)

// Articles serves the article pages: public listing, detail, create and management.
type Articles struct {
	service ArticleService
	cfg     config.BlogConfig
	logger  *slog.Logger
}

func NewArticles(service ArticleService, cfg config.BlogConfig, logger *slog.Logger) *Articles {
	return &Articles{
		service: service,
		cfg:     cfg,
		logger:  logger.With("component", "article_action"),
	}
}

// List handles GET /articles.
func (a *Articles) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r, a.cfg.PerPage, a.cfg.MaxPerPage)

	result, err := a.service.ListPublished(r.Context(), page, perPage)
	if err != nil {
		a.systemError(w, r, err, nil)
		return
	}

	a.respond(w, r, responder.NewArticleListResponse(result))
}

// Show handles GET /articles/{id}. Missing ids and drafts share the same 404.
func (a *Articles) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.respond(w, r, responder.ErrNotFound)
		return
	}

	article, err := a.service.ShowArticle(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		a.respond(w, r, responder.ErrNotFound)
		return
	}
	if err != nil {
		a.systemError(w, r, err, nil)
		return
	}

	a.respond(w, r, responder.NewArticleDetailResponse(article))
}

// CreateForm handles GET /articles/create.
func (a *Articles) CreateForm(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, responder.NewCreateFormResponse(formRules()))
}

// Create handles POST /articles.
func (a *Articles) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := &CreateArticleRequest{}

	err := render.Bind(r, data)
	if errors.Is(err, io.EOF) {
		err = data.Bind(r)
	}

	verr := domain.NewValidationError()
	if err != nil && !errors.As(err, &verr) {
		a.respond(w, r, responder.ErrInvalidRequest(err))
		return
	}

	if _, titleFailed := verr.Fields["title"]; !titleFailed {
		duplicate, err := a.service.IsDuplicateTitle(ctx, data.Title)
		if err != nil {
			a.systemError(w, r, err, data.Input())
			return
		}
		if duplicate {
			verr.Add("title", "The title has already been taken.")
		}
	}

	if !verr.Empty() {
		a.respond(w, r, responder.ErrValidation(verr, data.Input()))
		return
	}

	input := data.toDomain(a.cfg.DefaultAuthorID)

	if err := a.service.CanCreate(ctx, input); err != nil {
		a.createFailed(w, r, err, data.Input())
		return
	}

	article, err := a.service.CreateArticle(ctx, input)
	if err != nil {
		a.createFailed(w, r, err, data.Input())
		return
	}

	a.respond(w, r, responder.NewCreatedResponse(article))
}

// Manage handles GET /articles/manage.
func (a *Articles) Manage(w http.ResponseWriter, r *http.Request) {
	page, perPage := pagination(r, a.cfg.ManagementPerPage, a.cfg.MaxPerPage)
	filter, applied := managementFilters(r)

	result, err := a.service.ListForManagement(r.Context(), filter, page, perPage)
	if err != nil {
		a.systemError(w, r, err, nil)
		return
	}

	a.respond(w, r, responder.NewManagementListResponse(result, applied))
}

func (a *Articles) createFailed(w http.ResponseWriter, r *http.Request, err error, input map[string]string) {
	if errors.Is(err, domain.ErrPreconditionFailed) {
		loggerFrom(r.Context(), a.logger).Info("article create rejected", "reason", err)
		a.respond(w, r, responder.ErrCreateRejected(err, input))
		return
	}
	a.systemError(w, r, err, input)
}

// systemError is the single place an unexpected failure is logged.
func (a *Articles) systemError(w http.ResponseWriter, r *http.Request, err error, input map[string]string) {
	attrs := []any{"error", err, "path", r.URL.Path}
	if input != nil {
		attrs = append(attrs, "input", input)
	}
	loggerFrom(r.Context(), a.logger).Error("request failed", attrs...)

	var echo any
	if input != nil {
		echo = input
	}
	a.respond(w, r, responder.ErrSystem(err, echo))
}

func (a *Articles) respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		loggerFrom(r.Context(), a.logger).Error("failed to render response", "error", err)
	}
}
