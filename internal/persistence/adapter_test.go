package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	roomDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
	"github.com/hotel-frontdesk/service-frontdesk/internal/store"
)

func newBackends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	fileKV, err := NewFileKV(filepath.Join(dir, "files"))
	require.NoError(t, err)
	sqliteKV, err := NewSQLiteKV(filepath.Join(dir, "state", "frontdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteKV.Close() })

	return map[string]KV{
		DriverMemory: NewMemoryKV(),
		DriverFile:   fileKV,
		DriverSQLite: sqliteKV,
	}
}

func TestLoad_AbsentKeysKeepSeed(t *testing.T) {
	for name, kv := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			a := NewAdapter(kv, zap.NewNop())

			snap, rejected, err := a.Load(context.Background(), store.Seed())
			require.NoError(t, err)
			assert.Empty(t, rejected)
			assert.Equal(t, store.Seed(), snap)
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for name, kv := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := NewAdapter(kv, zap.NewNop())

			s := store.NewSeeded()
			_, err := s.CreateBooking(105, "Test User", "2025-12-01", "2025-12-02")
			require.NoError(t, err)
			_, err = s.CancelBooking(1001)
			require.NoError(t, err)
			want := s.Snapshot()

			require.NoError(t, a.Save(ctx, want))

			got, rejected, err := a.Load(ctx, store.Seed())
			require.NoError(t, err)
			assert.Empty(t, rejected)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoad_PresentKeyReplacesOnlyThatCollection(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Put(ctx, KeyRooms, []byte(`[{"id":1,"type":"Loft","status":"booked","price":100}]`)))

	snap, rejected, err := NewAdapter(kv, zap.NewNop()).Load(ctx, store.Seed())
	require.NoError(t, err)
	assert.Empty(t, rejected)
	assert.Equal(t, []roomDomain.Room{{ID: 1, Type: "Loft", Status: roomDomain.StatusBooked, Price: 100}}, snap.Rooms)
	assert.Equal(t, store.SeedBookings(), snap.Bookings)
}

func TestLoad_EmptyArraysReplaceSeed(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Put(ctx, KeyBookings, []byte(`[]`)))

	snap, _, err := NewAdapter(kv, zap.NewNop()).Load(ctx, store.Seed())
	require.NoError(t, err)
	assert.Empty(t, snap.Bookings)
	assert.Equal(t, store.SeedRooms(), snap.Rooms)
}

func TestLoad_MalformedEntriesRejected(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "not json", key: KeyRooms, value: `{{{`},
		{name: "object instead of array", key: KeyRooms, value: `{"id":101}`},
		{name: "null", key: KeyBookings, value: `null`},
		{name: "unknown room status", key: KeyRooms, value: `[{"id":101,"type":"Deluxe","status":"dirty","price":8000}]`},
		{name: "zero price", key: KeyRooms, value: `[{"id":101,"type":"Deluxe","status":"available","price":0}]`},
		{name: "string id", key: KeyRooms, value: `[{"id":"101","type":"Deluxe","status":"available","price":8000}]`},
		{name: "duplicate room id", key: KeyRooms, value: `[{"id":101,"type":"A","status":"available","price":1},{"id":101,"type":"B","status":"available","price":1}]`},
		{name: "unknown booking status", key: KeyBookings, value: `[{"id":1,"roomId":101,"customer":"X","checkIn":"2025-01-01","checkOut":"2025-01-02","status":"pending"}]`},
		{name: "bad date", key: KeyBookings, value: `[{"id":1,"roomId":101,"customer":"X","checkIn":"01/01/2025","checkOut":"2025-01-02","status":"active"}]`},
		{name: "max booking id", key: KeyBookings, value: `[{"id":9223372036854775807,"roomId":101,"customer":"X","checkIn":"2025-01-01","checkOut":"2025-01-02","status":"active"}]`},
		{name: "empty customer", key: KeyBookings, value: `[{"id":1,"roomId":101,"customer":"","checkIn":"2025-01-01","checkOut":"2025-01-02","status":"active"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKV()
			require.NoError(t, kv.Put(ctx, tt.key, []byte(tt.value)))

			snap, rejected, err := NewAdapter(kv, zap.NewNop()).Load(ctx, store.Seed())
			require.NoError(t, err)
			assert.Equal(t, []string{tt.key}, rejected)
			assert.Equal(t, store.Seed(), snap)
		})
	}
}

func TestSave_NilCollectionsWriteEmptyArrays(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, NewAdapter(kv, zap.NewNop()).Save(ctx, bookingDomain.Snapshot{}))

	raw, ok, err := kv.Get(ctx, KeyRooms)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))

	raw, ok, err = kv.Get(ctx, KeyBookings)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestSave_PersistedFieldNames(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	snap := bookingDomain.Snapshot{
		Rooms: []roomDomain.Room{{ID: 101, Type: "Deluxe Single", Status: roomDomain.StatusAvailable, Price: 8000}},
		Bookings: []bookingDomain.Booking{
			{ID: 1001, RoomID: 101, Customer: "Rahul Sharma", CheckIn: "2025-12-15", CheckOut: "2025-12-18", Status: bookingDomain.StatusCancelled},
		},
	}
	require.NoError(t, NewAdapter(kv, zap.NewNop()).Save(ctx, snap))

	raw, _, _ := kv.Get(ctx, KeyRooms)
	assert.JSONEq(t, `[{"id":101,"type":"Deluxe Single","status":"available","price":8000}]`, string(raw))

	raw, _, _ = kv.Get(ctx, KeyBookings)
	assert.JSONEq(t, `[{"id":1001,"roomId":101,"customer":"Rahul Sharma","checkIn":"2025-12-15","checkOut":"2025-12-18","status":"cancelled"}]`, string(raw))
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, Config{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)

	kv, err = Open(ctx, Config{Driver: DriverFile, Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileKV{}, kv)
	assert.NoError(t, kv.Ping(ctx))

	_, err = Open(ctx, Config{Driver: DriverPostgres})
	assert.Error(t, err)

	_, err = Open(ctx, Config{Driver: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
