package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"textwatch/internal/annotate"
	"textwatch/internal/config"
	"textwatch/internal/pipeline"
)

const (
	// ServiceName and ServiceVersion appear in liveness and health payloads.
	ServiceName    = "Malicious Text Analysis API"
	ServiceVersion = "1.0.0"
)

// Server owns the gin engine and the request-time dependencies: the store
// gateway, the write-once annotation result, and the weapon lexicon.
type Server struct {
	cfg     config.Config
	source  DataSource
	result  *pipeline.Result
	lexicon *annotate.Lexicon
	logger  *zap.Logger

	// readCache keeps hot store reads (raw data, schema sample) off the
	// database between requests.
	readCache *gocache.Cache

	httpServer *http.Server
}

// New wires the engine, middleware, and routes. The pipeline result is
// injected once and never mutated afterwards.
func New(cfg config.Config, source DataSource, result *pipeline.Result, lexicon *annotate.Lexicon, logger *zap.Logger) *Server {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		source:    source,
		result:    result,
		lexicon:   lexicon,
		logger:    logger,
		readCache: gocache.New(cfg.DataCacheTTL, 2*cfg.DataCacheTTL),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))
	engine.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)
	engine.GET("/data", s.handleData)
	engine.GET("/data-proses", s.handleProcessed)
	engine.GET("/processed-data", s.handleProcessed)
	engine.GET("/stats", s.handleStats)
	engine.GET("/debug/schema", s.handleSchema)
	engine.GET("/debug/weapons", s.handleWeapons)

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start serves HTTP until Shutdown is called. It returns nil on a clean
// shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.cfg.ListenAddr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
