package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/response"
)

// AdminHandler serves the front-desk dashboard, search and confirmation views.
type AdminHandler struct {
	service *application.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *application.BookingService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers the dashboard routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.GET("/dashboard", h.Dashboard)
		api.GET("/search", h.Search)
		api.GET("/confirmation", h.Confirmation)
	}
}

// Dashboard handles GET /api/v1/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	response.Success(c, h.service.Dashboard(c.Request.Context()))
}

// Search handles GET /api/v1/search?q=<booking id or room number>.
func (h *AdminHandler) Search(c *gin.Context) {
	query, err := strconv.Atoi(c.Query("q"))
	if err != nil {
		response.BadRequest(c, "q must be a booking ID or room number")
		return
	}

	result, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Confirmation handles GET /api/v1/confirmation?action=book&booking=<id> and ?action=cancel.
func (h *AdminHandler) Confirmation(c *gin.Context) {
	action := c.Query("action")

	var bookingID int
	if action == application.ActionBook {
		id, err := strconv.Atoi(c.Query("booking"))
		if err != nil {
			response.BadRequest(c, "invalid booking ID")
			return
		}
		bookingID = id
	}

	response.Success(c, h.service.Confirmation(c.Request.Context(), action, bookingID))
}
