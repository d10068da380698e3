package booking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain"
)

// DateLayout is the calendar date format for check-in and check-out.
const DateLayout = "2006-01-02"

// Booking is a reservation of one room for a date range.
// The JSON field names are the persisted contract.
type Booking struct {
	ID       int           `json:"id"`
	RoomID   int           `json:"roomId"`
	Customer string        `json:"customer"`
	CheckIn  string        `json:"checkIn"`
	CheckOut string        `json:"checkOut"`
	Status   BookingStatus `json:"status"`
}

// NewBooking creates an active booking. Both dates must be YYYY-MM-DD but
// their ordering is not checked: a check-out before check-in is accepted.
func NewBooking(id, roomID int, customer, checkIn, checkOut string) (Booking, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return Booking{}, domain.NewMalformedInputError("customer name is required")
	}
	if id <= 0 {
		return Booking{}, domain.NewMalformedInputError(fmt.Sprintf("booking id must be positive, got %d", id))
	}
	if id == math.MaxInt {
		return Booking{}, domain.NewMalformedInputError("booking id space exhausted")
	}
	if err := ValidateDate(checkIn); err != nil {
		return Booking{}, domain.NewMalformedInputError("check-in: " + err.Error())
	}
	if err := ValidateDate(checkOut); err != nil {
		return Booking{}, domain.NewMalformedInputError("check-out: " + err.Error())
	}
	return Booking{
		ID:       id,
		RoomID:   roomID,
		Customer: customer,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   StatusActive,
	}, nil
}

// IsActive returns true if the booking still holds its room.
func (b Booking) IsActive() bool {
	return b.Status == StatusActive
}

// Cancel transitions the booking to cancelled.
func (b *Booking) Cancel() error {
	if !b.Status.CanBeCancelled() {
		return domain.NewAlreadyCancelledError(b.ID)
	}
	b.Status = StatusCancelled
	return nil
}

// Validate checks a booking against the persisted schema.
func (b Booking) Validate() error {
	if b.ID <= 0 {
		return fmt.Errorf("booking id must be positive, got %d", b.ID)
	}
	// The id counter resumes at the highest stored id plus one.
	if b.ID == math.MaxInt {
		return fmt.Errorf("booking id %d leaves no room for the next id", b.ID)
	}
	if b.RoomID <= 0 {
		return fmt.Errorf("booking %d: room id must be positive, got %d", b.ID, b.RoomID)
	}
	if strings.TrimSpace(b.Customer) == "" {
		return fmt.Errorf("booking %d: customer is required", b.ID)
	}
	if _, err := ParseBookingStatus(string(b.Status)); err != nil {
		return fmt.Errorf("booking %d: %w", b.ID, err)
	}
	if err := ValidateDate(b.CheckIn); err != nil {
		return fmt.Errorf("booking %d: check-in: %w", b.ID, err)
	}
	if err := ValidateDate(b.CheckOut); err != nil {
		return fmt.Errorf("booking %d: check-out: %w", b.ID, err)
	}
	return nil
}

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return nil
}
