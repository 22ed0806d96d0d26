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

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/admin/analytics", middleware.RequirePermission(rbac.ViewAnalytics), h.Dashboard)
}

// Dashboard handles GET /admin/analytics?days=N
// @Summary      Analytics dashboard
// @Description  Aggregated order, revenue, vehicle and courier figures over the requested window
// @Tags         admin
// @Produce      json
// @Param        days  query     int  false  "Window in days (default 14, max 90)"
// @Success      200   {object}  response.Response{data=service.AnalyticsResponse}
// @Failure      500   {object}  response.Response
// @Router       /admin/analytics [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "14"))

	dashboard, err := h.analyticsService.Dashboard(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build analytics"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, dashboard))
}
