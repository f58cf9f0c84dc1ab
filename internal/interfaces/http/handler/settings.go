package handler

import (
	settingsapp "github.com/attarerp/backend/internal/application/settings"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles key-value settings endpoints
type SettingsHandler struct {
	BaseHandler
	settings *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settings *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// RegisterRoutes registers all settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", h.List)
		settings.GET("/:key", h.Get)
		settings.PUT("/:key", h.Set)
	}
}

// SettingResponse is the API view of one setting
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SetSettingRequest carries a setting value
type SetSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// List returns every stored setting
func (h *SettingsHandler) List(c *gin.Context) {
	stored, err := h.settings.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]SettingResponse, len(stored))
	for i := range stored {
		responses[i] = SettingResponse{Key: stored[i].Key, Value: stored[i].Value}
	}
	h.Success(c, responses)
}

// Get returns one setting by key
func (h *SettingsHandler) Get(c *gin.Context) {
	key := c.Param("key")

	value, found, err := h.settings.Get(c.Request.Context(), key)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !found {
		h.NotFound(c, "Setting not found")
		return
	}
	h.Success(c, SettingResponse{Key: key, Value: value})
}

// Set stores a setting value
func (h *SettingsHandler) Set(c *gin.Context) {
	key := c.Param("key")

	var req SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.settings.Set(c.Request.Context(), key, req.Value); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SettingResponse{Key: key, Value: req.Value})
}
