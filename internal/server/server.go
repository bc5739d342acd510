// Package server exposes the read operations over a small HTTP API. The
// API is stateless: each request performs its own fetch, so the console
// session slot is never shared across goroutines.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moviegraph/moviegraph/internal/apperr"
	"github.com/moviegraph/moviegraph/internal/export"
	"github.com/moviegraph/moviegraph/internal/movie"
)

type Server struct {
	Movies *movie.Service
	Logger *slog.Logger
}

func NewServer(svc *movie.Service, logger *slog.Logger) *Server {
	return &Server{Movies: svc, Logger: logger}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), s.requestLogger())

	r.GET("/healthz", s.Health)

	api := r.Group("/api")
	api.GET("/search", s.Search)
	api.GET("/movies/:title", s.Detail)
	api.GET("/movies/:title/graph", s.Graph)

	return r
}

func (s *Server) Health(c *gin.Context) {
	if err := s.Movies.Ping(c.Request.Context()); err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Search(c *gin.Context) {
	movies, err := s.Movies.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (s *Server) Detail(c *gin.Context) {
	rec, err := s.Movies.Detail(c.Request.Context(), c.Param("title"))
	if err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Graph serves the same node/link document the console export writes,
// built fresh from the store rather than from session state.
func (s *Server) Graph(c *gin.Context) {
	rec, err := s.Movies.Detail(c.Request.Context(), c.Param("title"))
	if err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, export.BuildGraph(rec))
}

func (s *Server) abort(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", c.FullPath(), "request_id", GetRequestID(c), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperr.UserMessage(err)})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.Logger.Debug("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"request_id", GetRequestID(c),
		)
	}
}
