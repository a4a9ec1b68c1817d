package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/dungeonmst/astar"
	"github.com/katalvlaran/dungeonmst/explorer"
	"github.com/katalvlaran/dungeonmst/gridgraph"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
)

// ExploreRequest is the POST /explore body. Zero values fall back to the
// router's base config.
type ExploreRequest struct {
	Grid             []string `json:"grid" binding:"required"`
	Open             string   `json:"open"`
	Wall             string   `json:"wall"`
	Workers          int      `json:"workers"`
	Strict           bool     `json:"strict"`
	BothDirections   bool     `json:"bothDirections"`
	MaxExpansions    int      `json:"maxExpansions"`
	Method           string   `json:"method"`
	Root             string   `json:"root"`
	RequireConnected bool     `json:"requireConnected"`
	ClosedRoute      bool     `json:"closedRoute"`
}

// ExploreResponse wraps the report summary.
type ExploreResponse struct {
	Results       *explorer.Summary `json:"results,omitempty"`
	Error         string            `json:"error,omitempty"`
	ExecutionTime float64           `json:"executionTimeMs"`
}

type handler struct {
	base   explorer.Config
	opts   Options
	logger *slog.Logger
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) explore(c *gin.Context) {
	start := time.Now()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxBody)

	var req ExploreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err), start)
		return
	}
	cfg, err := h.config(req)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err, start)
		return
	}
	e, err := explorer.New(cfg, h.logger)
	if err != nil {
		h.fail(c, http.StatusBadRequest, err, start)
		return
	}

	report, err := e.Run(c.Request.Context(), req.Grid)
	if err != nil {
		resp := ExploreResponse{Error: err.Error()}
		if report != nil {
			s := report.Summary()
			resp.Results = &s
		}
		resp.ExecutionTime = elapsedMs(start)
		c.IndentedJSON(statusFor(err), resp)
		return
	}

	s := report.Summary()
	c.IndentedJSON(http.StatusOK, ExploreResponse{Results: &s, ExecutionTime: elapsedMs(start)})
}

// config overlays the request on the base config.
func (h *handler) config(req ExploreRequest) (explorer.Config, error) {
	cfg := h.base
	var err error
	if req.Open != "" {
		if cfg.Open, err = symbol("open", req.Open); err != nil {
			return cfg, err
		}
	}
	if req.Wall != "" {
		if cfg.Wall, err = symbol("wall", req.Wall); err != nil {
			return cfg, err
		}
	}
	if req.Workers > 0 {
		cfg.Workers = req.Workers
	}
	cfg.Workers = min(cfg.Workers, h.opts.MaxWorkers)
	if cfg.MaxKeys == 0 || cfg.MaxKeys > h.opts.MaxKeys {
		cfg.MaxKeys = h.opts.MaxKeys
	}
	if req.MaxExpansions != 0 {
		cfg.MaxExpansions = req.MaxExpansions
	}
	if req.Method != "" {
		cfg.Method = req.Method
	}
	if req.Root != "" {
		cfg.Root = req.Root
	}
	cfg.Strict = cfg.Strict || req.Strict
	cfg.BothDirections = cfg.BothDirections || req.BothDirections
	cfg.RequireConnected = cfg.RequireConnected || req.RequireConnected
	cfg.ClosedRoute = cfg.ClosedRoute || req.ClosedRoute
	return cfg, nil
}

func symbol(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s symbol must be a single character, got %q", explorer.ErrInvalidConfig, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, explorer.ErrTooManyKeys):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, gridgraph.ErrInvalidGrid),
		errors.Is(err, explorer.ErrInvalidConfig),
		errors.Is(err, prim_kruskal.ErrRootNotFound):
		return http.StatusBadRequest
	case errors.Is(err, astar.ErrInvalidEndpoint),
		errors.Is(err, astar.ErrStepLimit),
		errors.Is(err, prim_kruskal.ErrDisconnected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) fail(c *gin.Context, status int, err error, start time.Time) {
	h.logger.Warn("explore rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.AbortWithStatusJSON(status, ExploreResponse{Error: err.Error(), ExecutionTime: elapsedMs(start)})
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
