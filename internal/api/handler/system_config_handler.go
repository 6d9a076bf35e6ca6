package handler

import (
	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/service"
	"venuecrew/backend/pkg/response"
)

// SystemConfigHandler serves the engine settings endpoints.
type SystemConfigHandler struct {
	configSvc service.SystemConfigService
}

// NewSystemConfigHandler creates a SystemConfigHandler.
func NewSystemConfigHandler(configSvc service.SystemConfigService) *SystemConfigHandler {
	return &SystemConfigHandler{configSvc: configSvc}
}

// Get returns the engine-wide settings.
// GET /api/v1/system-config
func (h *SystemConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, cfg)
}

// Update patches the engine-wide settings.
// PATCH /api/v1/system-config
func (h *SystemConfigHandler) Update(c *gin.Context) {
	var req dto.UpdateSystemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 18001, "invalid request body")
		return
	}

	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	cfg, err := h.configSvc.Update(c.Request.Context(), &req, actorID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, cfg)
}
