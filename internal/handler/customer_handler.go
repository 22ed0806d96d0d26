package handler

import (
	"net/http"

	"delivery-backend/internal/middleware"
	"delivery-backend/internal/service"
	"delivery-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/customers/search", middleware.RequireAuth(), h.Search)
}

// Search handles GET /customers/search?q= for the order form autocomplete
func (h *CustomerHandler) Search(c *gin.Context) {
	results, err := h.customerService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to search customers"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}
