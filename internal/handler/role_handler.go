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

type RoleHandler struct {
	roleService service.RoleService
	logService  service.LogService
}

func NewRoleHandler(roleService service.RoleService, logService service.LogService) *RoleHandler {
	return &RoleHandler{roleService: roleService, logService: logService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/admin/roles", middleware.RequirePermission(rbac.ManageRoles))
	{
		roles.GET("", h.List)
		roles.POST("", h.Create)
		roles.PUT("/:id", h.Update)
		roles.DELETE("/:id", h.Delete)
	}
}

// List handles GET /admin/roles with per-role user counts
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch roles"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, roles))
}

// Create handles POST /admin/roles
func (h *RoleHandler) Create(c *gin.Context) {
	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), req)
	if err != nil {
		if err.Error() == "role already exists" {
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	h.record(c, model.ActionRoleCreated, role.ID)

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, role))
}

// Update handles PUT /admin/roles/:id
func (h *RoleHandler) Update(c *gin.Context) {
	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	role, err := h.roleService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	h.record(c, model.ActionRoleUpdated, role.ID)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, role))
}

// Delete handles DELETE /admin/roles/:id, refusing system and in-use roles
func (h *RoleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.roleService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	h.record(c, model.ActionRoleDeleted, id)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Role deleted"))
}

func (h *RoleHandler) record(c *gin.Context, action, roleID string) {
	if actor := middleware.UserFromContext(c); actor != nil {
		h.logService.Record(c.Request.Context(), &actor.ID, action, "role", roleID,
			nil, c.ClientIP(), c.Request.UserAgent())
	}
}
