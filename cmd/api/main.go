package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fitlife-blog/internal/config"
	"fitlife-blog/internal/httpserver"
	articlesvc "fitlife-blog/internal/service/article"
	categorysvc "fitlife-blog/internal/service/category"
	newslettersvc "fitlife-blog/internal/service/newsletter"
	"fitlife-blog/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()
	logger.Printf("using %s store", store.Driver)

	articleService := articlesvc.New(store.Articles)
	categoryService := categorysvc.New(store.Articles)
	newsletterService := newslettersvc.New(store.Subscribers)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		ArticleSvc:    articleService,
		CategorySvc:   categoryService,
		NewsletterSvc: newsletterService,
		Store:         store,
	}, httpserver.Options{
		APIPrefix:   cfg.APIPrefix,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
