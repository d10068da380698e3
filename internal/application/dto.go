package application

import (
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	roomDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
	"github.com/hotel-frontdesk/service-frontdesk/internal/store"
)

// Confirmation actions.
const (
	ActionBook   = "book"
	ActionCancel = "cancel"
)

// BookRoomRequest holds the booking form fields.
type BookRoomRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	RoomID   int    `json:"room_id" form:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" form:"check_out" binding:"required,datetime=2006-01-02"`
}

// RoomDTO is the response representation of a room.
type RoomDTO struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Price  int    `json:"price"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID       int    `json:"id"`
	RoomID   int    `json:"room_id"`
	Customer string `json:"customer"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Status   string `json:"status"`
}

// DashboardDTO holds the three front-desk counters.
type DashboardDTO struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Active    int `json:"active"`
}

// SearchResultDTO is a search hit. Kind is "booking" or "room".
type SearchResultDTO struct {
	Kind    string      `json:"kind"`
	Booking *BookingDTO `json:"booking,omitempty"`
	Room    *RoomDTO    `json:"room,omitempty"`
}

// ConfirmationDTO is the data of the post-action success page.
type ConfirmationDTO struct {
	Action   string       `json:"action"`
	Message  string       `json:"message,omitempty"`
	Booking  *BookingDTO  `json:"booking,omitempty"`
	RoomType string       `json:"room_type,omitempty"`
	Rate     int          `json:"rate,omitempty"`
	Stats    DashboardDTO `json:"stats"`
}

func toRoomDTO(r roomDomain.Room) RoomDTO {
	return RoomDTO{
		ID:     r.ID,
		Type:   r.Type,
		Status: r.Status.String(),
		Price:  r.Price,
	}
}

func toBookingDTO(bk bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:       bk.ID,
		RoomID:   bk.RoomID,
		Customer: bk.Customer,
		CheckIn:  bk.CheckIn,
		CheckOut: bk.CheckOut,
		Status:   bk.Status.String(),
	}
}

func toDashboardDTO(d store.Dashboard) DashboardDTO {
	return DashboardDTO{
		Available: d.Available,
		Booked:    d.Booked,
		Active:    d.Active,
	}
}
