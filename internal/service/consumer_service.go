package service

import (
	"context"

	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/pkg/mailer"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	Handle(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
	}
}

// Consume reads the in-process topic until ctx is done.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	event, err := events.Unmarshal(msg.Payload)
	if err != nil {
		cs.logger.Error("CONSUMER", "Dropping undecodable event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	if err := cs.Handle(ctx, event); err != nil {
		msg.Nack()
		return
	}
	msg.Ack()
}

// Handle processes one event. Mail failures are logged and not retried.
func (cs *consumerService) Handle(ctx context.Context, event events.Event) error {
	data := event.Payload()
	cs.logger.Info("CONSUMER", "Event received", map[string]interface{}{
		"type": event.EventType(),
		"data": data,
	})

	switch event.EventType() {
	case events.SubscriptionActivated:
		return cs.mailUser(ctx, events.Uint(data, "gebruikerId"), func(email, naam string) error {
			return cs.emailService.SendSubscriptionConfirmation(email, naam, events.String(data, "bedrag"), events.String(data, "interval"))
		})
	case events.SubscriptionCancelled:
		return cs.mailUser(ctx, events.Uint(data, "gebruikerId"), cs.emailService.SendSubscriptionCancellation)
	case events.PaymentFailed:
		cs.logger.Warn("CONSUMER", "Payment failed", map[string]interface{}{
			"gebruiker_id": events.Uint(data, "gebruikerId"),
			"payment_id":   events.String(data, "paymentId"),
			"status":       events.String(data, "status"),
		})
	}
	return nil
}

func (cs *consumerService) mailUser(ctx context.Context, userId uint, send func(email, naam string) error) error {
	if cs.emailService == nil || userId == 0 {
		return nil
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil || user.Email == "" {
		cs.logger.Warn("CONSUMER", "No mail address for user", map[string]interface{}{"gebruiker_id": userId})
		return nil
	}

	if err := send(user.Email, user.Naam); err != nil {
		cs.logger.Error("CONSUMER", "Failed to send mail", map[string]interface{}{
			"gebruiker_id": userId,
			"error":        err.Error(),
		})
	}
	return nil
}
