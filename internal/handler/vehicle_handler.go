package handler

import (
	"net/http"

	"delivery-backend/internal/middleware"
	"delivery-backend/internal/model"
	"delivery-backend/internal/rbac"
	"delivery-backend/internal/service"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService service.VehicleService
	logService     service.LogService
}

func NewVehicleHandler(vehicleService service.VehicleService, logService service.LogService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, logService: logService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles", middleware.RequirePermission(rbac.ManageVehicles))
	{
		vehicles.GET("", h.List)
		vehicles.POST("", h.Create)
		vehicles.PUT("/:id", h.Update)
		vehicles.DELETE("/:id", h.Delete)
		vehicles.PUT("/:id/location", h.UpdateLocation)
	}
}

// List handles GET /vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch vehicles"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicles))
}

// Create handles POST /vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var req service.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	h.record(c, model.ActionVehicleCreated, vehicle.ID)

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, vehicle))
}

// Update handles PUT /vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	var req service.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	h.record(c, model.ActionVehicleUpdated, vehicle.ID)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicle))
}

// Delete handles DELETE /vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	h.record(c, model.ActionVehicleDeleted, id)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Vehicle deleted"))
}

// UpdateLocation handles PUT /vehicles/:id/location
func (h *VehicleHandler) UpdateLocation(c *gin.Context) {
	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	vehicle, err := h.vehicleService.UpdateLocation(c.Request.Context(), c.Param("id"), *req.Lat, *req.Lng)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicle))
}

func (h *VehicleHandler) record(c *gin.Context, action, vehicleID string) {
	if actor := middleware.UserFromContext(c); actor != nil {
		h.logService.Record(c.Request.Context(), &actor.ID, action, "vehicle", vehicleID,
			nil, c.ClientIP(), c.Request.UserAgent())
	}
}
