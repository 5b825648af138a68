package service

import (
	"context"

	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

// EventPublisher is an external event transport such as NATS JetStream.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    message.Publisher
	external  EventPublisher
	logger    logger.ILogger
}

// NewPublisherService publishes to external when it is set, otherwise to the
// in-process topic.
func NewPublisherService(topicName string, pubSub message.Publisher, external EventPublisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		external:  external,
		logger:    log,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) error {
	if s.external != nil {
		if err := s.external.Publish(ctx, event); err != nil {
			s.logEventError(event, err)
			return err
		}
		return nil
	}

	payload, err := events.Marshal(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("type", event.EventType())

	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logEventError(event, err)
		return err
	}
	return nil
}

func (s *publisherService) logEventError(event events.Event, err error) {
	s.logger.Error("EVENTS", "Failed to publish event", map[string]interface{}{
		"type":  event.EventType(),
		"error": err.Error(),
	})
}

// publishAfterCommit sends an event for a write that already committed. A
// publish failure is logged by the publisher and does not fail the request.
func publishAfterCommit(ctx context.Context, publisher IPublisherService, event events.Event) {
	if publisher == nil {
		return
	}
	_ = publisher.Publish(ctx, event)
}
