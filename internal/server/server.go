package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ldnexus/match-engine/internal/embedding"
	"github.com/ldnexus/match-engine/internal/matching"
	"github.com/ldnexus/match-engine/internal/matching/uae"
	"github.com/ldnexus/match-engine/internal/ranking"
	"go.uber.org/zap"
)

// Server exposes the match engine over HTTP.
type Server struct {
	matcher  *matching.Matcher
	regional *uae.Matcher
	ranker   *ranking.Ranker
	provider *embedding.Provider
	logger   *zap.Logger
}

// New wires the HTTP surface. The embedding provider may be nil; the health
// endpoint then reports heuristic-only operation.
func New(matcher *matching.Matcher, regional *uae.Matcher, ranker *ranking.Ranker, provider *embedding.Provider, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{
		matcher:  matcher,
		regional: regional,
		ranker:   ranker,
		provider: provider,
		logger:   log,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	api := r.Group("/api/v1")
	api.POST("/match", s.match)
	api.POST("/match/uae", s.matchUAE)
	api.POST("/rank", s.rank)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, listen string) error {
	srv := &http.Server{
		Addr:    listen,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("match engine listening", zap.String("addr", listen))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
