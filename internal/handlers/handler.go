package handlers

import (
	"service_directory/internal/logger"
	"service_directory/internal/metrics"
	"service_directory/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "service_directory/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Collector

	allowedOrigins []string
	limiter        *rate.Limiter
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMetrics records request metrics and serves them on /metrics.
func WithMetrics(m *metrics.Collector) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithAllowedOrigins enables CORS and WebSocket origin checks for origins.
// "*" allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.allowedOrigins = origins }
}

// WithRateLimit caps /api/v1 at rps requests per second with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(h *Handler) { h.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.accessLog)
	if len(h.allowedOrigins) > 0 {
		router.Use(newCORS(h.allowedOrigins))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	h.registerAPIRoutes(router)

	// view sessions; same port
	router.GET("/ws/directory", h.wsDirectory)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	if h.limiter != nil {
		api.Use(h.rateLimit)
	}
	{
		h.registerDirectoryRoutes(api)
		h.registerCategoryRoutes(api)
	}
}

func (h *Handler) registerDirectoryRoutes(api *gin.RouterGroup) {
	api.GET("/directory", h.browse)
	api.GET("/services/:id", h.getService)
	api.GET("/filters", h.listFilters)
}

func (h *Handler) registerCategoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:slug", h.getCategory)
	}
}
