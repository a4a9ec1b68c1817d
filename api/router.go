// Package api exposes the explorer pipeline over HTTP with gin.
//
//	GET  /healthz  liveness probe
//	POST /explore  run the pipeline on a JSON-encoded map
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/dungeonmst/explorer"
)

// Option configures the router.
type Option func(*Options)

// Options holds router settings.
type Options struct {
	AllowOrigin string // Access-Control-Allow-Origin value
	MaxWorkers  int    // cap on per-request workers
	MaxBody     int64  // request body limit in bytes
	MaxKeys     int    // key locations per map
}

// DefaultOptions allows any origin, 64 workers, 1 MiB bodies and 256 key
// locations. Pair searches grow quadratically with the key count, so the
// body limit alone does not bound the work of a request.
func DefaultOptions() Options {
	return Options{
		AllowOrigin: "*",
		MaxWorkers:  64,
		MaxBody:     1 << 20,
		MaxKeys:     256,
	}
}

// WithAllowOrigin sets the CORS origin.
func WithAllowOrigin(origin string) Option {
	return func(o *Options) { o.AllowOrigin = origin }
}

// WithMaxWorkers caps the workers a request may ask for. Values < 1 are ignored.
func WithMaxWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxWorkers = n
		}
	}
}

// WithMaxBody sets the request body limit. Values < 1 are ignored.
func WithMaxBody(n int64) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxBody = n
		}
	}
}

// WithMaxKeys caps the key locations a map may hold; larger maps are
// rejected with 413. Values < 1 are ignored.
func WithMaxKeys(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxKeys = n
		}
	}
}

// NewRouter builds the gin engine. base supplies every setting a request
// leaves unset. A nil logger discards output.
func NewRouter(base explorer.Config, logger *slog.Logger, opts ...Option) *gin.Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &handler{
		base:   base,
		opts:   o,
		logger: logger.With(slog.String("component", "api")),
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.logger), CORSMiddleware(o.AllowOrigin))
	router.GET("/healthz", h.health)
	router.POST("/explore", h.explore)
	return router
}

// CORSMiddleware answers preflight requests and tags every response with
// the allowed origin.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}
