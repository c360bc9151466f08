package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"fitlife-blog/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

type ArticleService interface {
	List(ctx context.Context, category string) ([]domain.Article, error)
	ListFeatured(ctx context.Context) ([]domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, in domain.ArticleCreate) (*domain.Article, error)
	Update(ctx context.Context, id string, in domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	List(ctx context.Context) ([]domain.NewsletterSubscriber, error)
}

// Deps carries the services the router dispatches to.
type Deps struct {
	ArticleSvc    ArticleService
	CategorySvc   CategoryService
	NewsletterSvc NewsletterService
	Store         Pinger
}

// Options tunes the router. Zero values fall back to "/api" and allow-all CORS.
type Options struct {
	APIPrefix   string
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.ArticleSvc == nil || deps.CategorySvc == nil || deps.NewsletterSvc == nil {
		return nil, errors.New("httpserver: article, category and newsletter services are required")
	}
	var logOut io.Writer = io.Discard
	if logger != nil {
		logOut = logger.Writer()
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logOut), gin.Recovery())
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	router.Use(cors.New(corsConfig(opts.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))

	prefix := "/" + strings.Trim(opts.APIPrefix, "/")
	if opts.APIPrefix == "" {
		prefix = "/api"
	}
	api := router.Group(prefix)
	api.GET("/", rootHandler)

	articles := &articleHandlers{svc: deps.ArticleSvc}
	api.GET("/articles", articles.list)
	api.GET("/articles/featured", articles.featured)
	api.GET("/articles/:id", articles.get)
	api.POST("/articles", articles.create)
	api.PUT("/articles/:id", articles.update)
	api.DELETE("/articles/:id", articles.remove)

	api.GET("/categories", categoriesHandler(deps.CategorySvc))

	newsletter := &newsletterHandlers{svc: deps.NewsletterSvc}
	api.POST("/newsletter/subscribe", newsletter.subscribe)
	api.GET("/newsletter/subscribers", newsletter.list)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
