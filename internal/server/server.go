package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abdulachik/adskit/internal/app"
	"github.com/abdulachik/adskit/internal/campaign"
)

// RequestIDHeader carries the per-request correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"
	componentAI  = "ai"
)

// KitBuilder produces a kit archive for one request.
type KitBuilder interface {
	BuildKitWithID(ctx context.Context, requestID string, in campaign.Input) (*app.Kit, error)
}

type generateRequest struct {
	StoreURL    string `json:"storeUrl"`
	Description string `json:"description"`
	Country     string `json:"country"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
}

// Server is the inbound HTTP boundary.
type Server struct {
	builder KitBuilder
	health  *Health
	log     *slog.Logger
}

// New creates the HTTP handler with its routes.
func New(builder KitBuilder, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		builder: builder,
		health:  NewHealth(),
		log:     logger,
	}
	return s.router()
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/generate", s.handleGenerate)

	return r
}

// requestID takes the caller's X-Request-ID or mints one and echoes it back.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Info("http request",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:     "ok",
		Components: s.health.Snapshot(),
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	k, err := s.builder.BuildKitWithID(c.Request.Context(), c.GetString(requestIDKey), campaign.Input{
		StoreURL:    req.StoreURL,
		Description: req.Description,
		Country:     req.Country,
	})
	if err != nil {
		var inputErr *campaign.InputError
		if errors.As(err, &inputErr) {
			respondError(c, http.StatusBadRequest, inputErr)
			return
		}
		s.log.Error("kit generation failed", "request_id", c.GetString(requestIDKey), "error", err)
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	if k.Fallback {
		s.health.SetDegraded(componentAI, "last kit used fallback content")
	} else {
		s.health.SetHealthy(componentAI, "last kit generated by AI")
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", k.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/zip", k.Archive)
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, errorResponse{Error: err.Error()})
}
