package handler

import (
	partyapp "github.com/attarerp/backend/internal/application/party"
	"github.com/attarerp/backend/internal/domain/party"
	"github.com/gin-gonic/gin"
)

// PartyHandler handles customer and supplier API endpoints
type PartyHandler struct {
	BaseHandler
	parties *partyapp.Service
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(parties *partyapp.Service) *PartyHandler {
	return &PartyHandler{parties: parties}
}

// RegisterRoutes registers all party routes
func (h *PartyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	parties := rg.Group("/parties")
	{
		parties.POST("", h.Create)
		parties.GET("", h.List)
		parties.GET("/:id", h.Get)
		parties.PUT("/:id", h.Update)
		parties.DELETE("/:id", h.Delete)
	}
}

// Create creates a customer or supplier
func (h *PartyHandler) Create(c *gin.Context) {
	var req partyapp.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.parties.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns one party with its running balance
func (h *PartyHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	resp, err := h.parties.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns parties, optionally filtered by kind
func (h *PartyHandler) List(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	kind := party.Kind(c.Query("kind"))
	responses, total, err := h.parties.List(c.Request.Context(), kind, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// Update updates a party's contact fields
func (h *PartyHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	var req partyapp.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.parties.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a party. Refused while ledger history exists.
func (h *PartyHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	if err := h.parties.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": true})
}
