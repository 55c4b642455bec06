package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	flag "github.com/spf13/pflag"

	"blog/internal/config"
	"blog/internal/domain"
	"blog/internal/logging"
	"blog/internal/storage/postgres"
)

var seedArticles = []struct {
	title   string
	content string
	status  domain.Status
}{
	{"Getting Started with the Blog", "A short tour of listing, reading and writing articles.", domain.StatusPublished},
	{"Writing Good Titles", "Titles are unique across live articles, so pick them with care.", domain.StatusPublished},
	{"Pagination Explained", "Listings show ten articles per page, newest first.", domain.StatusPublished},
	{"Drafts and Publishing", "Drafts stay private until they are published.", domain.StatusPublished},
	{"Searching the Archive", "Management search matches titles and bodies.", domain.StatusPublished},
	{"Upcoming Features", "Notes on what might come next. Not ready yet.", domain.StatusDraft},
	{"Style Guide Draft", "House style for headings, lists and code blocks.", domain.StatusDraft},
	{"Release Checklist", "Steps to run through before every release.", domain.StatusDraft},
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := logging.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := seed(context.Background(), db, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

// seed creates the admin author and sample articles. Titles already present are skipped,
// so running it twice is harmless.
func seed(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	users := postgres.NewUserStore(db)
	articles := postgres.NewArticleStore(db)
	txManager := postgres.NewTransactionManager(db)

	return txManager.WithTransaction(ctx, func(ctx context.Context) error {
		authorID, err := users.Upsert(ctx, &domain.User{Name: "Blog Admin", Email: "admin@example.com"})
		if err != nil {
			return fmt.Errorf("seed author: %w", err)
		}

		created := 0
		for _, a := range seedArticles {
			exists, err := articles.ExistsByTitle(ctx, a.title)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			if _, err := articles.Create(ctx, &domain.Article{
				AuthorID: authorID,
				Title:    a.title,
				Content:  a.content,
				Status:   a.status,
			}); err != nil {
				return fmt.Errorf("seed article %q: %w", a.title, err)
			}
			created++
		}

		logger.Info("seed complete", "author_id", authorID, "articles_created", created)
		return nil
	})
}
