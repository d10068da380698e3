package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	roomDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// Adapter implements booking.SnapshotRepository on top of a KV backend.
type Adapter struct {
	kv     KV
	logger *zap.Logger
}

// NewAdapter creates a new Adapter.
func NewAdapter(kv KV, logger *zap.Logger) *Adapter {
	return &Adapter{kv: kv, logger: logger}
}

// Load reads both keys. An absent key keeps the seed collection; a present
// key replaces it wholesale once it passes validation. A malformed entry is
// rejected as a whole: the seed is kept and the key is reported.
func (a *Adapter) Load(ctx context.Context, seed bookingDomain.Snapshot) (bookingDomain.Snapshot, []string, error) {
	result := seed
	var rejected []string

	raw, ok, err := a.kv.Get(ctx, KeyRooms)
	if err != nil {
		return seed, nil, fmt.Errorf("failed to read %s: %w", KeyRooms, err)
	}
	if ok {
		rooms, err := DecodeRooms(raw)
		if err != nil {
			a.logger.Warn("rejecting stored rooms, keeping seed",
				zap.String("key", KeyRooms),
				zap.Error(err),
			)
			rejected = append(rejected, KeyRooms)
		} else {
			result.Rooms = rooms
		}
	}

	raw, ok, err = a.kv.Get(ctx, KeyBookings)
	if err != nil {
		return seed, nil, fmt.Errorf("failed to read %s: %w", KeyBookings, err)
	}
	if ok {
		bookings, err := DecodeBookings(raw)
		if err != nil {
			a.logger.Warn("rejecting stored bookings, keeping seed",
				zap.String("key", KeyBookings),
				zap.Error(err),
			)
			rejected = append(rejected, KeyBookings)
		} else {
			result.Bookings = bookings
		}
	}

	return result, rejected, nil
}

// Save writes both collections wholesale.
func (a *Adapter) Save(ctx context.Context, snapshot bookingDomain.Snapshot) error {
	rooms := snapshot.Rooms
	if rooms == nil {
		rooms = []roomDomain.Room{}
	}
	bookings := snapshot.Bookings
	if bookings == nil {
		bookings = []bookingDomain.Booking{}
	}

	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}
	bookingsJSON, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}

	if err := a.kv.Put(ctx, KeyRooms, roomsJSON); err != nil {
		return fmt.Errorf("failed to write %s: %w", KeyRooms, err)
	}
	if err := a.kv.Put(ctx, KeyBookings, bookingsJSON); err != nil {
		return fmt.Errorf("failed to write %s: %w", KeyBookings, err)
	}
	return nil
}

// Ping checks the underlying backend.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.kv.Ping(ctx)
}

// DecodeRooms parses and validates a stored room collection.
func DecodeRooms(raw []byte) ([]roomDomain.Room, error) {
	if err := expectArray(raw); err != nil {
		return nil, err
	}
	var rooms []roomDomain.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rooms: %w", err)
	}
	seen := make(map[int]struct{}, len(rooms))
	for _, r := range rooms {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate room id %d", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return rooms, nil
}

// DecodeBookings parses and validates a stored booking collection.
func DecodeBookings(raw []byte) ([]bookingDomain.Booking, error) {
	if err := expectArray(raw); err != nil {
		return nil, err
	}
	var bookings []bookingDomain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}
	seen := make(map[int]struct{}, len(bookings))
	for _, b := range bookings {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("duplicate booking id %d", b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return bookings, nil
}

func expectArray(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("stored value is not a JSON array")
	}
	return nil
}
