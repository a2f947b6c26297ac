package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	errRateLimited = "rate limit exceeded"
)

// requestID propagates the caller's X-Request-ID or assigns a new one.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// accessLog writes one line per request and feeds the request metrics.
func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	took := time.Since(start)

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	h.metrics.ObserveRequest(c.Request.Method, route, status, took)

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", requestIDFrom(c),
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency_ms", took.Milliseconds(),
		)
	}
}

// rateLimit rejects requests over the shared token bucket.
func (h *Handler) rateLimit(c *gin.Context) {
	if !h.limiter.Allow() {
		if h.log != nil {
			h.log.Warnw("rate_limit_exceeded", "request_id", requestIDFrom(c), "path", c.Request.URL.Path)
		}
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": errRateLimited})
		return
	}
	c.Next()
}

func newCORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// originAllowed is the WebSocket counterpart of the CORS check. Requests
// without an Origin header are not from a browser and pass.
func (h *Handler) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.allowedOrigins) == 0 {
		return true
	}
	return slices.Contains(h.allowedOrigins, "*") || slices.Contains(h.allowedOrigins, origin)
}
