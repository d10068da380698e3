package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/kafka"
	"github.com/hotel-frontdesk/service-frontdesk/internal/metrics"
	"github.com/hotel-frontdesk/service-frontdesk/internal/store"
)

const eventSource = "service-frontdesk"

// EventPublisher publishes CloudEvents. *kafka.Producer satisfies it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event kafka.CloudEvent) error
}

// BookingService is the application service orchestrating front-desk use cases.
type BookingService struct {
	store     *store.Store
	repo      bookingDomain.SnapshotRepository
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	autosave  bool

	// saveMu orders saves. The snapshot is taken under it so the last save
	// to finish always carries the newest state.
	saveMu sync.Mutex
}

// NewBookingService creates a new BookingService. publisher and m may be nil.
func NewBookingService(
	st *store.Store,
	repo bookingDomain.SnapshotRepository,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
	autosave bool,
) *BookingService {
	return &BookingService{
		store:     st,
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		autosave:  autosave,
	}
}

// Restore loads the durable state over the current store contents.
// It returns the keys whose stored value was rejected.
func (s *BookingService) Restore(ctx context.Context) ([]string, error) {
	loaded, rejected, err := s.repo.Load(ctx, s.store.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	s.store.Restore(loaded)
	s.observeState()

	s.logger.Info("state restored",
		zap.Int("rooms", len(loaded.Rooms)),
		zap.Int("bookings", len(loaded.Bookings)),
		zap.Strings("rejected", rejected),
	)
	return rejected, nil
}

// Persist writes the current state wholesale. Concurrent calls are serialized.
func (s *BookingService) Persist(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.repo.Save(ctx, s.store.Snapshot()); err != nil {
		s.recordSave("error")
		return fmt.Errorf("failed to save state: %w", err)
	}
	s.recordSave("ok")
	return nil
}

// BookRoom books an available room for a guest.
func (s *BookingService) BookRoom(ctx context.Context, req BookRoomRequest) (*BookingDTO, error) {
	bk, err := s.store.CreateBooking(req.RoomID, req.Name, req.CheckIn, req.CheckOut)
	if err != nil {
		s.recordFailure("book", err)
		return nil, err
	}

	s.logger.Info("room booked",
		zap.Int("booking_id", bk.ID),
		zap.Int("room_id", bk.RoomID),
	)
	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}
	s.afterMutation(ctx)

	evt := bookingDomain.BookingCreatedEvent{
		BookingID:  bk.ID,
		RoomID:     bk.RoomID,
		Customer:   bk.Customer,
		CheckIn:    bk.CheckIn,
		CheckOut:   bk.CheckOut,
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, bookingDomain.EventBookingCreated, bk.ID, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// CancelBooking cancels an active booking and releases its room.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int) (*BookingDTO, error) {
	bk, err := s.store.CancelBooking(bookingID)
	if err != nil {
		s.recordFailure("cancel", err)
		return nil, err
	}

	s.logger.Info("booking cancelled",
		zap.Int("booking_id", bk.ID),
		zap.Int("room_id", bk.RoomID),
	)
	if s.metrics != nil {
		s.metrics.BookingsCancelled.Inc()
	}
	s.afterMutation(ctx)

	evt := bookingDomain.BookingCancelledEvent{
		BookingID:  bk.ID,
		RoomID:     bk.RoomID,
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, bookingDomain.EventBookingCancelled, bk.ID, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetRoom retrieves a single room by ID.
func (s *BookingService) GetRoom(_ context.Context, roomID int) (*RoomDTO, error) {
	r, ok := s.store.FindRoom(roomID)
	if !ok {
		return nil, domain.NewRoomNotFoundError(roomID)
	}
	result := toRoomDTO(r)
	return &result, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(_ context.Context, bookingID int) (*BookingDTO, error) {
	bk, ok := s.store.FindBooking(bookingID)
	if !ok {
		return nil, domain.NewBookingNotFoundError(bookingID)
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ListRooms returns every room in collection order.
func (s *BookingService) ListRooms(_ context.Context) []RoomDTO {
	rooms := s.store.Rooms()
	dtos := make([]RoomDTO, len(rooms))
	for i, r := range rooms {
		dtos[i] = toRoomDTO(r)
	}
	return dtos
}

// ListBookings returns every booking in collection order.
func (s *BookingService) ListBookings(_ context.Context) []BookingDTO {
	bookings := s.store.Bookings()
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}

// Dashboard returns the room and booking counters.
func (s *BookingService) Dashboard(_ context.Context) DashboardDTO {
	return toDashboardDTO(s.store.Dashboard())
}

// Search looks up a booking by id or room number, then a room by id.
// It fails with domain.ErrNoMatch when nothing matches.
func (s *BookingService) Search(_ context.Context, query int) (*SearchResultDTO, error) {
	res := s.store.FindByIDOrRoom(query)
	if !res.Found() {
		return nil, domain.NewNoMatchError(query)
	}

	out := SearchResultDTO{Kind: string(res.Kind)}
	if res.Booking != nil {
		bk := toBookingDTO(*res.Booking)
		out.Booking = &bk
	}
	if res.Room != nil {
		r := toRoomDTO(*res.Room)
		out.Room = &r
	}
	return &out, nil
}

// Confirmation builds the data shown after a booking or cancellation.
// Unknown actions or bookings yield only the counters.
func (s *BookingService) Confirmation(_ context.Context, action string, bookingID int) ConfirmationDTO {
	out := ConfirmationDTO{
		Action: action,
		Stats:  toDashboardDTO(s.store.Dashboard()),
	}

	switch action {
	case ActionBook:
		bk, ok := s.store.FindBooking(bookingID)
		if !ok {
			return out
		}
		dto := toBookingDTO(bk)
		out.Booking = &dto
		out.Message = "Booking Confirmed!"
		if r, ok := s.store.FindRoom(bk.RoomID); ok {
			out.RoomType = r.Type
			out.Rate = r.Price
		}
	case ActionCancel:
		out.Message = "Cancellation Confirmed! Room is now available for booking."
	}
	return out
}

// --- Helpers ---

func (s *BookingService) afterMutation(ctx context.Context) {
	s.observeState()
	if !s.autosave {
		return
	}
	if err := s.Persist(ctx); err != nil {
		s.logger.Error("autosave failed", zap.Error(err))
	}
}

func (s *BookingService) observeState() {
	if s.metrics == nil {
		return
	}
	d := s.store.Dashboard()
	s.metrics.ObserveState(d.Available, d.Booked, d.Active)
}

func (s *BookingService) recordFailure(operation string, err error) {
	code := domain.Code(err)
	if code == "" {
		code = "INTERNAL"
	}
	s.logger.Warn("operation rejected",
		zap.String("operation", operation),
		zap.String("code", code),
		zap.Error(err),
	)
	if s.metrics != nil {
		s.metrics.OperationFailures.WithLabelValues(operation, code).Inc()
	}
}

func (s *BookingService) recordSave(result string) {
	if s.metrics != nil {
		s.metrics.SnapshotSaves.WithLabelValues(result).Inc()
	}
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, bookingID int, data interface{}) {
	if s.publisher == nil {
		return
	}

	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	key := fmt.Sprintf("%d", bookingID)
	if err := s.publisher.PublishEvent(ctx, bookingDomain.TopicFrontdeskEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", bookingDomain.TopicFrontdeskEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
