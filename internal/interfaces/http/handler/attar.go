package handler

import (
	catalogapp "github.com/attarerp/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// AttarHandler handles attar API endpoints
type AttarHandler struct {
	BaseHandler
	attars *catalogapp.AttarService
}

// NewAttarHandler creates a new AttarHandler
func NewAttarHandler(attars *catalogapp.AttarService) *AttarHandler {
	return &AttarHandler{attars: attars}
}

// RegisterRoutes registers all attar routes
func (h *AttarHandler) RegisterRoutes(rg *gin.RouterGroup) {
	attars := rg.Group("/attars")
	{
		attars.POST("", h.Create)
		attars.GET("", h.List)
		attars.GET("/:id", h.Get)
		attars.PUT("/:id", h.Update)
		attars.DELETE("/:id", h.Delete)
	}
}

// Create creates an attar with its opening stock quantity
func (h *AttarHandler) Create(c *gin.Context) {
	var req catalogapp.CreateAttarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.attars.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns one attar with its stock quantity
func (h *AttarHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid attar ID")
		return
	}

	resp, err := h.attars.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns attars matching the filter
func (h *AttarHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	responses, total, err := h.attars.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// Update updates an attar and optionally its stock quantity
func (h *AttarHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid attar ID")
		return
	}

	var req catalogapp.UpdateAttarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.attars.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an attar and its stock record
func (h *AttarHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid attar ID")
		return
	}

	if err := h.attars.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
