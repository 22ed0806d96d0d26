package handler

import (
	"net/http"

	"delivery-backend/internal/middleware"
	"delivery-backend/internal/rbac"
	"delivery-backend/internal/service"
	"delivery-backend/pkg/pagination"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", middleware.RequirePermission(rbac.CreateOrder), h.Create)
		orders.GET("", middleware.RequirePermission(rbac.ViewAllOrders), h.List)
		orders.GET("/my", middleware.RequirePermission(rbac.ViewOwnOrders), h.ListMine)
		orders.PUT("/:id", middleware.RequirePermission(rbac.UpdateOrderStatus), h.UpdateStatus)
	}

	// Public tracking endpoint, no session required
	router.GET("/track/:ttn", h.Track)

	admin := router.Group("/admin")
	{
		admin.GET("/orders/unassigned", middleware.RequirePermission(rbac.ManageOrders), h.ListUnassigned)
		admin.POST("/assign", middleware.RequirePermission(rbac.ManageOrders), h.Assign)
	}
}

// Create handles POST /orders
// @Summary      Create order
// @Description  Creates a delivery order, resolving or creating the customer by phone number
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateOrderRequest  true  "Order Payload"
// @Success      201      {object}  response.Response{data=service.OrderResponse}
// @Failure      400      {object}  response.Response
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, order))
}

// List handles GET /orders with pagination
// @Summary      List orders
// @Description  Retrieves a paginated list of all orders
// @Tags         orders
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	orders, total, err := h.orderService.List(c.Request.Context(), params.Offset, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  total,
		"page":   params.Page,
		"limit":  params.Limit,
	}))
}

// ListMine handles GET /orders/my for the authenticated customer
func (h *OrderHandler) ListMine(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	orders, err := h.orderService.ListMine(c.Request.Context(), user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, orders))
}

// UpdateStatus handles PUT /orders/:id
// @Summary      Update order status
// @Description  Moves an order to a new client-facing status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Order ID"
// @Param        payload  body      service.UpdateOrderStatusRequest  true  "Target Status"
// @Success      200      {object}  response.Response{data=service.OrderResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// Track handles GET /track/:ttn, the public tracking endpoint
// @Summary      Track order
// @Description  Returns the public view of an order by its tracking number
// @Tags         orders
// @Produce      json
// @Param        ttn  path      string  true  "Tracking Number"
// @Success      200  {object}  response.Response{data=service.OrderResponse}
// @Failure      404  {object}  response.Response
// @Router       /track/{ttn} [get]
func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.orderService.TrackByTTN(c.Request.Context(), c.Param("ttn"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// ListUnassigned handles GET /admin/orders/unassigned
func (h *OrderHandler) ListUnassigned(c *gin.Context) {
	orders, err := h.orderService.ListUnassigned(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, orders))
}

// Assign handles POST /admin/assign linking an order to a courier
func (h *OrderHandler) Assign(c *gin.Context) {
	user := middleware.UserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	var req service.AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.orderService.Assign(c.Request.Context(), req, user.ID); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Order assigned"))
}
