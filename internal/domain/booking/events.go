package booking

import "time"

// Kafka topics.
const (
	TopicFrontdeskEvents   = "frontdesk.events"
	TopicFrontdeskCommands = "frontdesk.commands"
)

// Event and command types.
const (
	EventBookingCreated   = "frontdesk.booking.created"
	EventBookingCancelled = "frontdesk.booking.cancelled"
	CommandCancelBooking  = "frontdesk.booking.cancel_requested"
)

// BookingCreatedEvent is published after a room is booked.
type BookingCreatedEvent struct {
	BookingID  int       `json:"booking_id"`
	RoomID     int       `json:"room_id"`
	Customer   string    `json:"customer"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published after a booking is cancelled.
type BookingCancelledEvent struct {
	BookingID  int       `json:"booking_id"`
	RoomID     int       `json:"room_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CancelBookingCommand asks the front desk to cancel a booking.
type CancelBookingCommand struct {
	BookingID int `json:"booking_id"`
}
