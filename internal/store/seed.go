package store

import (
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	roomDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// SeedRooms returns the initial room collection used when no durable state exists.
func SeedRooms() []roomDomain.Room {
	return []roomDomain.Room{
		{ID: 101, Type: "Deluxe Single", Status: roomDomain.StatusAvailable, Price: 8000},
		{ID: 102, Type: "Standard Double", Status: roomDomain.StatusAvailable, Price: 6000},
		{ID: 103, Type: "Deluxe Suite", Status: roomDomain.StatusBooked, Price: 14000},
		{ID: 104, Type: "Family Room", Status: roomDomain.StatusAvailable, Price: 9500},
		{ID: 105, Type: "Executive Suite", Status: roomDomain.StatusAvailable, Price: 18000},
		{ID: 106, Type: "Standard Single", Status: roomDomain.StatusBooked, Price: 5000},
	}
}

// SeedBookings returns the initial booking collection used when no durable state exists.
func SeedBookings() []bookingDomain.Booking {
	return []bookingDomain.Booking{
		{ID: 1001, RoomID: 101, Customer: "Rahul Sharma", CheckIn: "2025-12-15", CheckOut: "2025-12-18", Status: bookingDomain.StatusActive},
		{ID: 1002, RoomID: 102, Customer: "Priya Patel", CheckIn: "2025-12-20", CheckOut: "2025-12-23", Status: bookingDomain.StatusActive},
		{ID: 1003, RoomID: 104, Customer: "Amit Kumar", CheckIn: "2025-12-16", CheckOut: "2025-12-19", Status: bookingDomain.StatusActive},
		{ID: 1004, RoomID: 103, Customer: "Neha Gupta", CheckIn: "2025-12-18", CheckOut: "2025-12-21", Status: bookingDomain.StatusCancelled},
	}
}

// Seed returns the seed state as a snapshot.
func Seed() bookingDomain.Snapshot {
	return bookingDomain.Snapshot{Rooms: SeedRooms(), Bookings: SeedBookings()}
}
