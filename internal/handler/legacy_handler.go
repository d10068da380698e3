package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain"
)

// LegacyRoom is the room shape of the form-based front end.
type LegacyRoom struct {
	RoomID      int    `json:"room_id"`
	Type        string `json:"type"`
	Price       int    `json:"price"`
	IsAvailable int    `json:"is_available"`
}

// LegacyHandler serves the plain-text form endpoints of the first front end.
type LegacyHandler struct {
	service *application.BookingService
}

// NewLegacyHandler creates a new LegacyHandler.
func NewLegacyHandler(service *application.BookingService) *LegacyHandler {
	return &LegacyHandler{service: service}
}

// RegisterRoutes registers /rooms, /book and /cancel.
func (h *LegacyHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/rooms", h.Rooms)
	r.POST("/book", h.Book)
	r.POST("/cancel", h.Cancel)
}

// Rooms handles GET /rooms.
func (h *LegacyHandler) Rooms(c *gin.Context) {
	rooms := h.service.ListRooms(c.Request.Context())
	out := make([]LegacyRoom, len(rooms))
	for i, r := range rooms {
		available := 0
		if r.Status == "available" {
			available = 1
		}
		out[i] = LegacyRoom{RoomID: r.ID, Type: r.Type, Price: r.Price, IsAvailable: available}
	}
	c.JSON(http.StatusOK, out)
}

// Book handles POST /book.
func (h *LegacyHandler) Book(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	roomID, _ := strconv.Atoi(c.PostForm("room_id"))
	if name == "" || roomID == 0 {
		c.String(http.StatusBadRequest, "Missing required fields (name, room_id).")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.service.GetRoom(ctx, roomID); err != nil {
		c.String(http.StatusBadRequest, "Room not found")
		return
	}

	bk, err := h.service.BookRoom(ctx, application.BookRoomRequest{
		Name:     name,
		RoomID:   roomID,
		CheckIn:  c.PostForm("check_in"),
		CheckOut: c.PostForm("check_out"),
	})
	if err != nil {
		c.String(http.StatusBadRequest, "%s", legacyMessage(err))
		return
	}
	c.String(http.StatusOK, "Booked successfully. Booking ID: %d", bk.ID)
}

// Cancel handles POST /cancel.
func (h *LegacyHandler) Cancel(c *gin.Context) {
	raw, ok := c.GetPostForm("booking_id")
	if !ok {
		c.String(http.StatusBadRequest, "Missing booking_id")
		return
	}
	bookingID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		c.String(http.StatusBadRequest, "Booking not found")
		return
	}

	if _, err := h.service.CancelBooking(c.Request.Context(), bookingID); err != nil {
		c.String(http.StatusBadRequest, "%s", legacyMessage(err))
		return
	}
	c.String(http.StatusOK, "Booking cancelled and room marked available")
}

func legacyMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoomUnavailable):
		return "Room not available"
	case errors.Is(err, domain.ErrBookingNotFound):
		return "Booking not found"
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return "Booking already cancelled"
	case errors.Is(err, domain.ErrMalformedInput):
		return "Invalid or missing dates (check_in, check_out must be YYYY-MM-DD)."
	default:
		return err.Error()
	}
}
