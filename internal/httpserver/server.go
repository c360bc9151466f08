package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the blog API mounted under opts.APIPrefix.
func New(addr string, logger *log.Logger, deps Deps, opts Options) (*Server, error) {
	router, err := buildRouter(logger, deps, opts)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "FitLife Blog API is running"})
}

func readyHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "store not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "store not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
