package store

import (
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	roomDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// ResultKind tells which collection a search hit came from.
type ResultKind string

const (
	KindNone    ResultKind = ""
	KindBooking ResultKind = "booking"
	KindRoom    ResultKind = "room"
)

// SearchResult is the outcome of FindByIDOrRoom. At most one of Booking and Room is set.
type SearchResult struct {
	Kind    ResultKind
	Booking *bookingDomain.Booking
	Room    *roomDomain.Room
}

// Found returns true if the search matched anything.
func (r SearchResult) Found() bool { return r.Kind != KindNone }

// RoomCounts is the availability breakdown of all rooms.
type RoomCounts struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

// Dashboard combines the room counts with the active booking count.
type Dashboard struct {
	RoomCounts
	Active int `json:"active"`
}

// FindRoom looks a room up by id.
func (s *Store) FindRoom(id int) (roomDomain.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.roomIndex(id); i >= 0 {
		return s.rooms[i], true
	}
	return roomDomain.Room{}, false
}

// FindBooking looks a booking up by id.
func (s *Store) FindBooking(id int) (bookingDomain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.bookingIndex(id); i >= 0 {
		return s.bookings[i], true
	}
	return bookingDomain.Booking{}, false
}

// FindByIDOrRoom returns the first booking whose id or room id equals query,
// falling back to the room with that id. A booking match wins over a room match.
func (s *Store) FindByIDOrRoom(query int) SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == query || b.RoomID == query {
			bk := b
			return SearchResult{Kind: KindBooking, Booking: &bk}
		}
	}
	if i := s.roomIndex(query); i >= 0 {
		r := s.rooms[i]
		return SearchResult{Kind: KindRoom, Room: &r}
	}
	return SearchResult{}
}

// RoomCounts counts available rooms; every other room counts as booked.
func (s *Store) RoomCounts() RoomCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roomCounts()
}

func (s *Store) roomCounts() RoomCounts {
	available := 0
	for _, r := range s.rooms {
		if r.Status == roomDomain.StatusAvailable {
			available++
		}
	}
	return RoomCounts{Available: available, Booked: len(s.rooms) - available}
}

// ActiveBookingCount returns the number of active bookings.
func (s *Store) ActiveBookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeCount()
}

func (s *Store) activeCount() int {
	n := 0
	for _, b := range s.bookings {
		if b.IsActive() {
			n++
		}
	}
	return n
}

// Dashboard returns room counts and active bookings from one consistent read.
func (s *Store) Dashboard() Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Dashboard{RoomCounts: s.roomCounts(), Active: s.activeCount()}
}

// Rooms returns all rooms in collection order.
func (s *Store) Rooms() []roomDomain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]roomDomain.Room(nil), s.rooms...)
}

// Bookings returns all bookings in collection order.
func (s *Store) Bookings() []bookingDomain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]bookingDomain.Booking(nil), s.bookings...)
}
