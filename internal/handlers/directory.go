package handlers

import (
	"errors"
	"net/http"

	"service_directory/internal/directory"
	"service_directory/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errCatalogUnavailable = "service catalog unavailable"
	errServiceNotFound    = "service not found"
	errCategoryNotFound   = "category not found"
	errInternal           = "internal error"
	errInvalidQueryPref   = "invalid query: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", requestIDFrom(c)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondError maps service errors to status codes. Only unexpected
// failures are logged at error level.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, directory.ErrCatalogUnavailable):
		h.logAndJSONError(c, http.StatusServiceUnavailable, errCatalogUnavailable, logKey, err, kv...)
	case errors.Is(err, directory.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errServiceNotFound})
	case errors.Is(err, directory.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errCategoryNotFound})
	case errors.Is(err, service.ErrInvalidView):
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidQueryPref + err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

// directoryRequest is the query string of GET /api/v1/directory.
type directoryRequest struct {
	Query    string   `form:"q"`
	Category string   `form:"category"`
	Filters  []string `form:"filter"`
	Selected string   `form:"selected"`
	View     string   `form:"view" binding:"omitempty,oneof=grid list"`
}

// @Summary      Health check
// @Description  Reports "degraded" when the catalog could not be loaded.
// @Tags         system
// @Produce      json
// @Success      200  {object}  service_directory.Health
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Directory.Health())
}

// @Summary      Browse the directory
// @Description  Search (case-insensitive, name or description), subcategory and feature filters (any of). Catalog order is preserved.
// @Tags         directory
// @Produce      json
// @Param        q         query  string    false  "Search text"
// @Param        category  query  string    false  "Subcategory slug"  example(interior-painting)
// @Param        filter    query  []string  false  "Feature filter tag, repeatable"  collectionFormat(multi)
// @Param        selected  query  string    false  "Record id to show in detail"
// @Param        view      query  string    false  "Card layout"  Enums(grid,list)
// @Success      200  {object}  service_directory.DirectoryView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/directory [get]
func (h *Handler) browse(c *gin.Context) {
	var req directoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidQueryPref + err.Error()})
		return
	}
	view, err := h.services.Directory.Browse(c.Request.Context(), service.DirectoryQuery{
		Search:   req.Query,
		Category: req.Category,
		Filters:  req.Filters,
		Selected: req.Selected,
		View:     req.View,
	})
	if err != nil {
		h.respondError(c, err, "directory_browse_failed", "category", req.Category)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Service detail
// @Tags         directory
// @Produce      json
// @Param        id   path  string  true  "Service id"
// @Success      200  {object}  service_directory.ServiceDetail
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/services/{id} [get]
func (h *Handler) getService(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.services.Directory.Record(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "service_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary      Filter vocabulary
// @Tags         directory
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "groups"
// @Router       /api/v1/filters [get]
func (h *Handler) listFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.services.Directory.FilterGroups()})
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, categories"
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.services.Directory.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "categories_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(cats),
		"categories": cats,
	})
}

// @Summary      Category landing page
// @Description  Subcategory cards of one category, in catalog order.
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Category slug"  example(painting-drywall)
// @Success      200   {object}  service_directory.CategoryOverview
// @Failure      404   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/v1/categories/{slug} [get]
func (h *Handler) getCategory(c *gin.Context) {
	slug := c.Param("slug")
	ov, err := h.services.Directory.CategoryOverview(c.Request.Context(), slug)
	if err != nil {
		h.respondError(c, err, "category_get_failed", "slug", slug)
		return
	}
	c.JSON(http.StatusOK, ov)
}
