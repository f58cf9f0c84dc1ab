package handler

import (
	catalogapp "github.com/attarerp/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ProductSetHandler handles product set API endpoints
type ProductSetHandler struct {
	BaseHandler
	sets *catalogapp.ProductSetService
}

// NewProductSetHandler creates a new ProductSetHandler
func NewProductSetHandler(sets *catalogapp.ProductSetService) *ProductSetHandler {
	return &ProductSetHandler{sets: sets}
}

// RegisterRoutes registers all product set routes
func (h *ProductSetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sets := rg.Group("/product-sets")
	{
		sets.POST("", h.Create)
		sets.GET("", h.List)
		sets.GET("/:id", h.Get)
		sets.PUT("/:id", h.Update)
		sets.DELETE("/:id", h.Delete)
	}
}

// Create creates a product set with its opening stock quantity
func (h *ProductSetHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sets.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns one product set with its stock quantity
func (h *ProductSetHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product set ID")
		return
	}

	resp, err := h.sets.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns product sets matching the filter
func (h *ProductSetHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.sets.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// Update updates a product set and optionally its stock quantity
func (h *ProductSetHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product set ID")
		return
	}

	var req catalogapp.UpdateProductSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.sets.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a product set and its stock record
func (h *ProductSetHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product set ID")
		return
	}

	if err := h.sets.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
