package events

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/kafka"
)

// CancellationCommandConsumer listens to front-desk commands and cancels bookings.
type CancellationCommandConsumer struct {
	consumer *kafka.Consumer
	service  *application.BookingService
	logger   *zap.Logger
}

// NewCancellationCommandConsumer creates a new CancellationCommandConsumer.
func NewCancellationCommandConsumer(
	brokers []string,
	groupID string,
	service *application.BookingService,
	logger *zap.Logger,
) *CancellationCommandConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, bookingDomain.TopicFrontdeskCommands, logger)
	return &CancellationCommandConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming commands. This blocks until the context is cancelled.
func (c *CancellationCommandConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *CancellationCommandConsumer) Close() error {
	return c.consumer.Close()
}

func (c *CancellationCommandConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	return c.handle(ctx, msg.Value)
}

func (c *CancellationCommandConsumer) handle(ctx context.Context, value []byte) error {
	cloudEvent, err := kafka.ParseCloudEvent(value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from command topic",
			zap.Error(err),
			zap.String("raw", string(value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case bookingDomain.CommandCancelBooking:
		return c.handleCancelRequested(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled command type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *CancellationCommandConsumer) handleCancelRequested(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var cmd bookingDomain.CancelBookingCommand
	if err := cloudEvent.ParseData(&cmd); err != nil || cmd.BookingID <= 0 {
		c.logger.Error("invalid cancel command data",
			zap.String("event_id", cloudEvent.ID),
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	c.logger.Info("processing cancel command",
		zap.Int("booking_id", cmd.BookingID),
	)

	if _, err := c.service.CancelBooking(ctx, cmd.BookingID); err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			// Not found and already cancelled will never succeed on retry.
			c.logger.Warn("cancel command rejected",
				zap.Int("booking_id", cmd.BookingID),
				zap.String("code", de.Code),
			)
			return nil
		}
		c.logger.Error("failed to cancel booking from command",
			zap.Int("booking_id", cmd.BookingID),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("booking cancelled from command",
		zap.Int("booking_id", cmd.BookingID),
	)
	return nil
}
