package handler

import (
	"net/http"

	"delivery-backend/internal/middleware"
	"delivery-backend/internal/service"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications", middleware.RequireAuth())
	{
		notifications.GET("", h.List)
		notifications.PUT("/:id", h.MarkRead)
	}
}

// List handles GET /notifications?unread=true for the authenticated user
func (h *NotificationHandler) List(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationService.ListForUser(c.Request.Context(), user.ID, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch notifications"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, notifications))
}

// MarkRead handles PUT /notifications/:id. Only the owner can mark their own.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Notification not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Notification marked as read"))
}
