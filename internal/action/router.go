package action

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"blog/internal/config"
	"blog/internal/responder"
)

// NewRouter builds the HTTP surface of the blog.
func NewRouter(
	service ArticleService,
	health HealthChecker,
	cfg *config.Config,
	logger *slog.Logger,
) chi.Router {
	articles := NewArticles(service, cfg.Blog, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, responder.ErrNotFound)
	})

	r.Get("/healthz", healthz(health))

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", articles.List)
		r.Post("/", articles.Create)
		r.Get("/create", articles.CreateForm)
		r.Get("/manage", articles.Manage)
		r.Get("/{id:[0-9]+}", articles.Show)
	})

	return r
}

func healthz(health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.PingContext(r.Context()); err != nil {
			loggerFrom(r.Context(), slog.Default()).Error("health check failed", "error", err)
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, render.M{"status": "unavailable"})
			return
		}
		render.JSON(w, r, render.M{"status": "ok"})
	}
}
