package handler

import (
	"net/http"
	"time"

	"delivery-backend/internal/middleware"
	"delivery-backend/internal/rbac"
	"delivery-backend/internal/service"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CourierHandler struct {
	courierService service.CourierService
}

func NewCourierHandler(courierService service.CourierService) *CourierHandler {
	return &CourierHandler{courierService: courierService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *CourierHandler) RegisterRoutes(router *gin.RouterGroup) {
	courier := router.Group("/courier")
	{
		courier.PUT("/location", middleware.RequirePermission(rbac.UpdateLocation), h.UpdateLocation)
		courier.GET("/orders", middleware.RequireRole("courier", "admin"), h.MyOrders)
		courier.GET("/route", middleware.RequireRole("courier", "admin"), h.SuggestRoute)
	}

	router.GET("/couriers", middleware.RequirePermission(rbac.ManageOrders), h.List)
}

// List handles GET /couriers for dispatchers
func (h *CourierHandler) List(c *gin.Context) {
	couriers, err := h.courierService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch couriers"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, couriers))
}

// UpdateLocation handles PUT /courier/location for the authenticated courier
func (h *CourierHandler) UpdateLocation(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	updatedAt, err := h.courierService.UpdateLocation(c.Request.Context(), user.ID.String(), req)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	res := map[string]interface{}{"lat": *req.Lat, "lng": *req.Lng}
	if updatedAt != nil {
		res["updatedAt"] = updatedAt.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// MyOrders handles GET /courier/orders listing the courier's assigned orders
func (h *CourierHandler) MyOrders(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	orders, err := h.courierService.MyOrders(c.Request.Context(), user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, orders))
}

// SuggestRoute handles GET /courier/route, returning stops in suggested visit order
func (h *CourierHandler) SuggestRoute(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	stops, err := h.courierService.SuggestRoute(c.Request.Context(), user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build route"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stops))
}
