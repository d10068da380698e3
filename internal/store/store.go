// Package store owns the in-memory room and booking collections and the
// operations that mutate them while keeping room availability and booking
// status consistent.
package store

import (
	"math"
	"sync"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	roomDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// Store is the front-desk domain store. All reads return copies.
type Store struct {
	mu       sync.RWMutex
	rooms    []roomDomain.Room
	bookings []bookingDomain.Booking
	nextID   int
}

// New creates a store over the given collections. The slices are copied.
func New(rooms []roomDomain.Room, bookings []bookingDomain.Booking) *Store {
	s := &Store{}
	s.restore(rooms, bookings)
	return s
}

// NewSeeded creates a store holding the seed data.
func NewSeeded() *Store {
	return New(SeedRooms(), SeedBookings())
}

// Restore replaces both collections wholesale.
func (s *Store) Restore(snapshot bookingDomain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restore(snapshot.Rooms, snapshot.Bookings)
}

func (s *Store) restore(rooms []roomDomain.Room, bookings []bookingDomain.Booking) {
	s.rooms = append([]roomDomain.Room(nil), rooms...)
	s.bookings = append([]bookingDomain.Booking(nil), bookings...)

	// Ids continue from the highest known booking, starting at 1 for an empty
	// collection. An id of math.MaxInt is ignored so the counter cannot wrap.
	s.nextID = 1
	for _, b := range s.bookings {
		if b.ID >= s.nextID && b.ID < math.MaxInt {
			s.nextID = b.ID + 1
		}
	}
}

// Snapshot returns a copy of both collections.
func (s *Store) Snapshot() bookingDomain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bookingDomain.Snapshot{
		Rooms:    append([]roomDomain.Room(nil), s.rooms...),
		Bookings: append([]bookingDomain.Booking(nil), s.bookings...),
	}
}

// CreateBooking books an available room and returns the new active booking.
// It fails with domain.ErrRoomUnavailable if the room does not exist or is
// already booked, and with domain.ErrMalformedInput if customer is empty.
// No state changes on failure.
func (s *Store) CreateBooking(roomID int, customer, checkIn, checkOut string) (bookingDomain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.roomIndex(roomID)
	if idx < 0 {
		return bookingDomain.Booking{}, domain.NewRoomUnavailableError(roomID, "room not found")
	}
	if !s.rooms[idx].IsAvailable() {
		return bookingDomain.Booking{}, domain.NewRoomUnavailableError(roomID, "room not available")
	}

	bk, err := bookingDomain.NewBooking(s.nextID, roomID, customer, checkIn, checkOut)
	if err != nil {
		return bookingDomain.Booking{}, err
	}
	if err := s.rooms[idx].MarkBooked(); err != nil {
		return bookingDomain.Booking{}, domain.NewRoomUnavailableError(roomID, err.Error())
	}

	s.bookings = append(s.bookings, bk)
	s.nextID++
	return bk, nil
}

// CancelBooking cancels an active booking and releases its room if the room
// still exists. It fails with domain.ErrBookingNotFound or
// domain.ErrAlreadyCancelled without changing state.
func (s *Store) CancelBooking(bookingID int) (bookingDomain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.bookingIndex(bookingID)
	if idx < 0 {
		return bookingDomain.Booking{}, domain.NewBookingNotFoundError(bookingID)
	}
	bk := &s.bookings[idx]
	if err := bk.Cancel(); err != nil {
		return bookingDomain.Booking{}, err
	}
	if r := s.roomIndex(bk.RoomID); r >= 0 {
		s.rooms[r].Release()
	}
	return *bk, nil
}

func (s *Store) roomIndex(id int) int {
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) bookingIndex(id int) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}
