package room

import "fmt"

// RoomStatus is the availability of a room.
type RoomStatus string

const (
	StatusAvailable RoomStatus = "available"
	StatusBooked    RoomStatus = "booked"
)

var validTransitions = map[RoomStatus][]RoomStatus{
	StatusAvailable: {StatusBooked},
	StatusBooked:    {StatusAvailable},
}

// IsValid returns true if the status is a recognized room status.
func (s RoomStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s RoomStatus) CanTransitionTo(target RoomStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s RoomStatus) String() string {
	return string(s)
}

// ParseRoomStatus converts a string to a RoomStatus, returning an error if invalid.
func ParseRoomStatus(s string) (RoomStatus, error) {
	status := RoomStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid room status: %s", s)
	}
	return status, nil
}
