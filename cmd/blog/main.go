package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/docgen"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	flag "github.com/spf13/pflag"

	"blog/internal/action"
	"blog/internal/config"
	"blog/internal/logging"
	"blog/internal/publisher"
	"blog/internal/service"
	"blog/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	routes := flag.Bool("routes", false, "print route documentation and exit")
	flag.Parse()

	logger := logging.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = logging.New(cfg.LogLevel)

	if *routes {
		r := action.NewRouter(nil, nil, cfg, logger)
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "blog",
			Intro:       "Routes served by the blog API.",
		}))
		return
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	logger.Info("connected to database")

	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:            cfg.RabbitMQ.URL,
			Exchange:       cfg.RabbitMQ.Exchange,
			RoutingKey:     cfg.RabbitMQ.RoutingKey,
			QueueName:      cfg.RabbitMQ.QueueName,
			ConfirmTimeout: cfg.RabbitMQ.ConfirmTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	articleStore := postgres.NewArticleStore(db)
	txManager := postgres.NewTransactionManager(db)

	articleService := service.NewArticleService(articleStore, txManager, events, logger)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      action.NewRouter(articleService, db, cfg, logger),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting blog api", "addr", cfg.HTTP.Addr, "events", cfg.RabbitMQ.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("blog api stopped")
}
