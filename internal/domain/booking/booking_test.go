package booking

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain"
)

func TestNewBooking(t *testing.T) {
	bk, err := NewBooking(7, 101, "  Guest  ", "2025-12-10", "2025-12-01")
	require.NoError(t, err)
	assert.Equal(t, "Guest", bk.Customer)
	assert.Equal(t, StatusActive, bk.Status)
	assert.True(t, bk.IsActive())

	tests := []struct {
		name     string
		id       int
		customer string
		checkIn  string
		checkOut string
	}{
		{"blank customer", 1, "   ", "2025-12-01", "2025-12-02"},
		{"zero id", 0, "Guest", "2025-12-01", "2025-12-02"},
		{"bad check-in", 1, "Guest", "2025-13-01", "2025-12-02"},
		{"bad check-out", 1, "Guest", "2025-12-01", "02.12.2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBooking(tt.id, 101, tt.customer, tt.checkIn, tt.checkOut)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedInput))
		})
	}
}

func TestCancel(t *testing.T) {
	bk, err := NewBooking(1, 101, "Guest", "2025-12-01", "2025-12-02")
	require.NoError(t, err)

	require.NoError(t, bk.Cancel())
	assert.Equal(t, StatusCancelled, bk.Status)

	err = bk.Cancel()
	assert.True(t, errors.Is(err, domain.ErrAlreadyCancelled))
	assert.Equal(t, domain.CodeAlreadyCancelled, domain.Code(err))
}

func TestBookingStatus(t *testing.T) {
	assert.True(t, StatusActive.CanBeCancelled())
	assert.False(t, StatusCancelled.CanBeCancelled())
	assert.False(t, BookingStatus("pending").IsValid())

	s, err := ParseBookingStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, s)

	_, err = ParseBookingStatus("Cancelled")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Booking{ID: 1, RoomID: 101, Customer: "Guest", CheckIn: "2025-12-01", CheckOut: "2025-12-02", Status: StatusActive}
	assert.NoError(t, valid.Validate())

	broken := valid
	broken.Status = "open"
	assert.ErrorContains(t, broken.Validate(), "invalid booking status")

	broken = valid
	broken.RoomID = 0
	assert.Error(t, broken.Validate())

	broken = valid
	broken.CheckIn = ""
	assert.Error(t, broken.Validate())

	broken = valid
	broken.ID = math.MaxInt
	assert.Error(t, broken.Validate())

	broken.ID = math.MaxInt - 1
	assert.NoError(t, broken.Validate())

	_, err := NewBooking(math.MaxInt, 101, "Guest", "2025-12-01", "2025-12-02")
	assert.True(t, errors.Is(err, domain.ErrMalformedInput))
}
