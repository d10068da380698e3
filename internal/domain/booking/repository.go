package booking

import (
	"context"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// Snapshot is the full front-desk state: both collections in collection order.
type Snapshot struct {
	Rooms    []room.Room
	Bookings []Booking
}

// SnapshotRepository defines the wholesale persistence contract for the front-desk state.
type SnapshotRepository interface {
	// Load restores the state over seed. Absent or rejected entries keep the seed collection;
	// the keys of rejected entries are returned alongside the state.
	Load(ctx context.Context, seed Snapshot) (Snapshot, []string, error)

	// Save writes both collections wholesale.
	Save(ctx context.Context, snapshot Snapshot) error
}
