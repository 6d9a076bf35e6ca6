package handler

import (
	"github.com/gin-gonic/gin"

	"venuecrew/backend/internal/dto"
	"venuecrew/backend/internal/service"
	"venuecrew/backend/pkg/response"
)

// NotificationHandler serves the caller's in-app notifications.
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// List returns the caller's notifications, newest first.
// GET /api/v1/notifications?unread=true
func (h *NotificationHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 18001, "invalid query parameters")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, total, err := h.notificationSvc.List(c.Request.Context(), userID, unreadOnly, page.GetOffset(), page.GetPageSize())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, notifications, total, page.GetPage(), page.GetPageSize())
}

// MarkRead marks one of the caller's notifications as read.
// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.notificationSvc.MarkRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
