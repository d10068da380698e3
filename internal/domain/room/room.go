package room

import (
	"fmt"
	"strings"
)

// Room is a bookable unit with a nightly rate and binary availability.
// The JSON field names are the persisted contract.
type Room struct {
	ID     int        `json:"id"`
	Type   string     `json:"type"`
	Status RoomStatus `json:"status"`
	Price  int        `json:"price"`
}

// IsAvailable returns true if the room can be booked.
func (r Room) IsAvailable() bool {
	return r.Status == StatusAvailable
}

// MarkBooked flips the room to booked.
func (r *Room) MarkBooked() error {
	if !r.Status.CanTransitionTo(StatusBooked) {
		return fmt.Errorf("room %d: cannot transition from %s to %s", r.ID, r.Status, StatusBooked)
	}
	r.Status = StatusBooked
	return nil
}

// Release flips the room back to available. Releasing an available room is a no-op.
func (r *Room) Release() {
	r.Status = StatusAvailable
}

// Validate checks a room against the persisted schema.
func (r Room) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("room id must be positive, got %d", r.ID)
	}
	if strings.TrimSpace(r.Type) == "" {
		return fmt.Errorf("room %d: type is required", r.ID)
	}
	if _, err := ParseRoomStatus(string(r.Status)); err != nil {
		return fmt.Errorf("room %d: %w", r.ID, err)
	}
	if r.Price <= 0 {
		return fmt.Errorf("room %d: price must be positive, got %d", r.ID, r.Price)
	}
	return nil
}
