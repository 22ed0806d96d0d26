package handler

import (
	"net/http"
	"strconv"

	"delivery-backend/internal/middleware"
	"delivery-backend/internal/rbac"
	"delivery-backend/internal/service"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admin/logs", middleware.RequirePermission(rbac.ViewLogs), h.List)
}

// List handles GET /admin/logs?limit=N, newest first. Limit clamps to [1, 500].
func (h *LogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLogLimit)))
	if limit < 1 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	logs, err := h.logService.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch logs"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, logs))
}
