package handler

import (
	"net/http"

	"delivery-backend/internal/middleware"
	"delivery-backend/internal/model"
	"delivery-backend/internal/rbac"
	"delivery-backend/internal/service"
	"delivery-backend/pkg/pagination"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	logService  service.LogService
}

// NewUserHandler sets up the routing dependencies for auth and user endpoints
func NewUserHandler(userService service.UserService, logService service.LogService) *UserHandler {
	return &UserHandler{userService: userService, logService: logService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.RequireAuth(), h.Me)
	}

	router.PUT("/profile", middleware.RequireAuth(), h.UpdateProfile)

	admin := router.Group("/admin/users")
	{
		admin.GET("", middleware.RequirePermission(rbac.ManageUsers), h.ListUsers)
		admin.POST("", middleware.RequirePermission(rbac.ManageUsers), h.CreateUser)
	}
}

// Login handles POST /auth/login to authenticate and issue the session cookie
// @Summary      Login user
// @Description  Authenticates a user by email and password, setting a signed HttpOnly session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  response.Response{data=service.MeResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
		return
	}

	middleware.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.userService.Me(user)))
}

// Logout handles POST /auth/logout to clear the session cookie
// @Summary      Logout user
// @Description  Clears the session cookie; previously issued tokens stay valid until they age out client-side
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Logged out"))
}

// Me handles GET /auth/me to return the authenticated user with their permissions
// @Summary      Get current user
// @Description  Returns the currently authenticated user and the resolved permission list
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.MeResponse}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.userService.Me(user)))
}

// UpdateProfile handles PUT /profile for the authenticated user
// @Summary      Update profile
// @Description  Updates the authenticated user's name, phone and optionally password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateProfileRequest  true  "Profile Fields"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), user.ID.String(), req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	h.logService.Record(c.Request.Context(), &user.ID, model.ActionProfileUpdated, "user", user.ID.String(),
		nil, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Profile updated"))
}

// ListUsers handles GET /admin/users with pagination controls
// @Summary      List users
// @Description  Retrieves a paginated list of users with their roles
// @Tags         admin
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := pagination.Parse(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), params.Offset, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"users": users,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}

// CreateUser handles POST /admin/users
// @Summary      Create a new user
// @Description  Creates a user with the given role, hashing the password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateUserRequest  true  "Create User Payload"
// @Success      201      {object}  response.Response{data=service.UserResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if err.Error() == "user already exists" {
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	if actor := middleware.UserFromContext(c); actor != nil {
		h.logService.Record(c.Request.Context(), &actor.ID, model.ActionUserCreated, "user", user.ID,
			map[string]string{"email": user.Email, "role": user.Role.Name}, c.ClientIP(), c.Request.UserAgent())
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user))
}
