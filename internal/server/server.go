// Package server provides the reference blocks store: a small REST API over
// the SQLite block storage.
//
//	GET    /blocks   list blocks in creation order
//	POST   /blocks   store {position:{x,y}, color:"#rrggbb"}, returns the block with its id
//	DELETE /blocks   delete every block
//	GET    /health   liveness and block count
//	GET    /metrics  Prometheus metrics
//
// The store does not check that positions are distinct; clients place
// blocks along the spiral and keep them apart themselves.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/blockspiral/internal/core"
)

// BlockStore is the persistence the server needs.
type BlockStore interface {
	ListBlocks(ctx context.Context) ([]core.Block, error)
	CreateBlock(ctx context.Context, b core.Block) (core.Block, error)
	ClearBlocks(ctx context.Context) (int64, error)
	CountBlocks(ctx context.Context) (int, error)
}

// Config holds server settings.
type Config struct {
	// Addr is the host:port to listen on (e.g., ":8080").
	Addr string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Logger receives request and lifecycle logs. Discarded when nil.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server is the HTTP blocks store.
type Server struct {
	config  Config
	store   BlockStore
	router  *gin.Engine
	metrics *Metrics
	logger  *log.Logger
}

// New creates a server backed by store.
func New(store BlockStore, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config:  cfg,
		store:   store,
		router:  router,
		metrics: NewMetrics("blockspiral"),
		logger:  logger,
	}

	router.Use(requestLogger(logger))
	router.Use(s.metrics.Handler())
	router.Use(cors())

	s.setupRoutes()
	return s
}

// setupRoutes registers the REST routes.
func (s *Server) setupRoutes() {
	blocks := s.router.Group("/blocks")
	{
		blocks.GET("", s.handleList)
		blocks.POST("", s.handleCreate)
		blocks.DELETE("", s.handleClear)
	}

	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", s.metrics.Endpoint())
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server's metrics.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// createRequest is the POST /blocks body.
type createRequest struct {
	Position *core.Position `json:"position" binding:"required"`
	Color    string         `json:"color" binding:"required"`
}

func (s *Server) handleList(c *gin.Context) {
	blocks, err := s.store.ListBlocks(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if blocks == nil {
		blocks = []core.Block{}
	}
	c.JSON(http.StatusOK, blocks)
}

func (s *Server) handleCreate(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid block: %w", err))
		return
	}
	if !req.Position.Valid() {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid block: position %v has a negative coordinate", *req.Position))
		return
	}
	color, err := core.ParseColor(req.Color)
	if err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid block: %w", err))
		return
	}

	saved, err := s.store.CreateBlock(c.Request.Context(), core.Block{Position: *req.Position, Color: color})
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	s.metrics.blocksCreated.Inc()

	c.JSON(http.StatusCreated, saved)
}

func (s *Server) handleClear(c *gin.Context) {
	n, err := s.store.ClearBlocks(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	s.metrics.blocksCleared.Add(float64(n))
	s.logger.Info("blocks cleared", "count", n)

	c.Status(http.StatusNoContent)
}

func (s *Server) handleHealth(c *gin.Context) {
	n, err := s.store.CountBlocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "blocks": n})
}

// fail writes a JSON error body.
func (s *Server) fail(c *gin.Context, code int, err error) {
	if code >= http.StatusInternalServerError {
		s.logger.Error("store error", "path", c.Request.URL.Path, "error", err)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run but uses an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("blocks store listening", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down blocks store...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
