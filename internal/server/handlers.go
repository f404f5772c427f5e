package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"textwatch/internal/model"
	"textwatch/internal/store"
)

const (
	cacheKeyData   = "data"
	cacheKeySchema = "schema"

	weaponSampleSize = 10
)

// handleRoot is the liveness check: a constant payload, no dependencies.
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": ServiceName,
		"version": ServiceVersion,
		"message": "Service is running",
	})
}

// handleHealth is the readiness check: 503 while the store is unreachable,
// otherwise connection state plus record counts.
func (s *Server) handleHealth(c *gin.Context) {
	if !s.source.Connected() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Database not available"})
		return
	}

	rawCount, err := s.source.Count(c.Request.Context())
	if err != nil {
		s.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"service":         ServiceName,
		"version":         ServiceVersion,
		"database_status": "connected",
		"data_status": gin.H{
			"raw_records":       rawCount,
			"processed_records": len(s.result.Records()),
			"processing_ready":  s.result.Ready(),
		},
	})
}

// handleData serves raw records straight from the store, behind a short TTL
// cache so a dashboard refresh loop does not hammer the collection.
func (s *Server) handleData(c *gin.Context) {
	if cached, found := s.readCache.Get(cacheKeyData); found {
		c.JSON(http.StatusOK, cached.([]model.Record))
		return
	}

	records, err := s.source.FetchAll(c.Request.Context())
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	if records == nil {
		records = []model.Record{}
	}

	s.readCache.SetDefault(cacheKeyData, records)
	c.JSON(http.StatusOK, records)
}

// handleProcessed serves the cached annotated records. An empty corpus is a
// valid, ready result ([]); a batch that never ran is a 503 whose detail
// names the startup failure, distinguishable from a later store outage.
func (s *Server) handleProcessed(c *gin.Context) {
	if !s.result.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": fmt.Sprintf("Processed data not available: %v", s.result.Err()),
		})
		return
	}

	records := s.result.Records()
	if records == nil {
		records = []model.AnnotatedRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// handleStats serves the corpus-level annotation breakdown.
func (s *Server) handleStats(c *gin.Context) {
	if !s.result.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": fmt.Sprintf("Stats not available: %v", s.result.Err()),
		})
		return
	}

	c.JSON(http.StatusOK, s.result.Summary())
}

// handleSchema infers field names and types from one sample document.
func (s *Server) handleSchema(c *gin.Context) {
	if cached, found := s.readCache.Get(cacheKeySchema); found {
		c.JSON(http.StatusOK, cached.(gin.H))
		return
	}

	sample, err := s.source.Sample(c.Request.Context())
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	if sample == nil {
		c.JSON(http.StatusOK, gin.H{"fields": gin.H{}, "note": "collection is empty"})
		return
	}

	fields := gin.H{}
	for name, value := range sample {
		fields[name] = fmt.Sprintf("%T", value)
	}

	payload := gin.H{"fields": fields}
	s.readCache.SetDefault(cacheKeySchema, payload)
	c.JSON(http.StatusOK, payload)
}

// handleWeapons exposes the loaded lexicon size and a small sample of terms.
func (s *Server) handleWeapons(c *gin.Context) {
	terms := s.lexicon.Terms()
	sample := terms
	if len(sample) > weaponSampleSize {
		sample = sample[:weaponSampleSize]
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  s.lexicon.Len(),
		"sample": sample,
	})
}

// respondStoreError translates store failures into the API error taxonomy:
// typed store errors mean the backing store is unavailable or misbehaving
// (503); anything else is an unexpected failure (500, generic message).
func (s *Server) respondStoreError(c *gin.Context, err error) {
	var opErr *store.OpError
	switch {
	case errors.Is(err, store.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "Database not available"})
	case errors.As(err, &opErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": fmt.Sprintf("Database error: %v", opErr)})
	default:
		s.logger.Error("unexpected handler error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "An unexpected error occurred"})
	}
}
