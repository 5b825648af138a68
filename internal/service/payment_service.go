package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"ouderschapsplan-api/internal/config"
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/mapper"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/repository/specification"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/pkg/events"
	"ouderschapsplan-api/pkg/mollie"

	"gorm.io/datatypes"
)

const msgProviderError = "Payment provider error"

type IPaymentService interface {
	Checkout(ctx context.Context, userId uint) (*dto.CheckoutResponse, error)
	Status(ctx context.Context, userId uint) (*dto.SubscriptionStatusResponse, error)
	Cancel(ctx context.Context, userId uint) (*dto.AbonnementResponse, error)
	// HandleWebhook reconciles one payment. Callers answer the provider with
	// 200 whatever the outcome.
	HandleWebhook(ctx context.Context, paymentId string) error
}

type paymentService struct {
	uowFactory       unitofwork.RepositoryFactory
	mollie           mollie.API
	publisherService IPublisherService
	cfg              config.MollieConfig
	billingMapper    *mapper.BillingMapper
	logger           logger.ILogger
	now              func() time.Time
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	mollieClient mollie.API,
	publisherService IPublisherService,
	cfg config.MollieConfig,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory:       uowFactory,
		mollie:           mollieClient,
		publisherService: publisherService,
		cfg:              cfg,
		billingMapper:    mapper.NewBillingMapper(),
		logger:           log,
		now:              time.Now,
	}
}

func (s *paymentService) amount() mollie.Amount {
	return mollie.Amount{Currency: s.cfg.SubscriptionCurrency, Value: s.cfg.SubscriptionAmount}
}

func (s *paymentService) Checkout(ctx context.Context, userId uint) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	active, err := uow.AbonnementRepository().FindActiveByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperror.Conflict("An active subscription already exists")
	}

	customerId := ""
	if user.MollieCustomerId != nil {
		customerId = *user.MollieCustomerId
	}
	if customerId == "" {
		customer, err := s.mollie.CreateCustomer(ctx, user.Naam, user.Email)
		if err != nil {
			return nil, apperror.Internal(msgProviderError, err)
		}
		customerId = customer.Id
		if err := uow.UserRepository().SetMollieCustomerId(ctx, userId, customerId); err != nil {
			return nil, err
		}
	}

	payment, err := s.mollie.CreatePayment(ctx, mollie.CreatePayment{
		Amount:       s.amount(),
		Description:  s.cfg.Description,
		RedirectUrl:  s.cfg.RedirectURL,
		WebhookUrl:   s.cfg.WebhookURL,
		CustomerId:   customerId,
		SequenceType: mollie.SequenceFirst,
		Metadata:     map[string]string{"gebruikerId": strconv.FormatUint(uint64(userId), 10)},
	})
	if err != nil {
		return nil, apperror.Internal(msgProviderError, err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	abonnement := &model.Abonnement{
		GebruikerId:      userId,
		MollieCustomerId: customerId,
		Status:           model.AbonnementStatusPending,
		Bedrag:           s.cfg.SubscriptionAmount,
		Valuta:           s.cfg.SubscriptionCurrency,
		Interval:         s.cfg.SubscriptionInterval,
	}
	if err := uow.AbonnementRepository().Create(ctx, abonnement); err != nil {
		return nil, err
	}

	betaling := &model.Betaling{
		AbonnementId:    &abonnement.Id,
		GebruikerId:     userId,
		MolliePaymentId: payment.Id,
		Bedrag:          s.cfg.SubscriptionAmount,
		Valuta:          s.cfg.SubscriptionCurrency,
		Status:          model.BetalingStatusOpen,
		SequenceType:    mollie.SequenceFirst,
	}
	if err := uow.BetalingRepository().Create(ctx, betaling); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("PAYMENT", "Checkout started", map[string]interface{}{
		"gebruiker_id":  userId,
		"abonnement_id": abonnement.Id,
		"payment_id":    payment.Id,
	})
	return &dto.CheckoutResponse{CheckoutUrl: payment.CheckoutUrl(), AbonnementId: abonnement.Id}, nil
}

func (s *paymentService) Status(ctx context.Context, userId uint) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	latest, err := uow.AbonnementRepository().FindLatestByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionStatusResponse{
		HeeftAbonnement: user.HeeftAbonnement,
		Abonnement:      s.billingMapper.AbonnementToResponse(latest),
	}, nil
}

func (s *paymentService) Cancel(ctx context.Context, userId uint) (*dto.AbonnementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	abonnement, err := uow.AbonnementRepository().FindActiveByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if abonnement == nil {
		return nil, apperror.NotFound("No active subscription")
	}

	if abonnement.MollieSubscriptionId != nil && *abonnement.MollieSubscriptionId != "" {
		if _, err := s.mollie.CancelSubscription(ctx, abonnement.MollieCustomerId, *abonnement.MollieSubscriptionId); err != nil {
			return nil, apperror.Internal(msgProviderError, err)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := s.now()
	abonnement.Status = model.AbonnementStatusCancelled
	abonnement.GeannuleerdOp = &now
	if err := uow.AbonnementRepository().Update(ctx, abonnement); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().SetSubscriptionFlag(ctx, userId, false); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	publishAfterCommit(ctx, s.publisherService, events.New(events.SubscriptionCancelled, map[string]interface{}{
		"gebruikerId":  userId,
		"abonnementId": abonnement.Id,
	}))
	return s.billingMapper.AbonnementToResponse(abonnement), nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, paymentId string) error {
	paymentId = strings.TrimSpace(paymentId)
	if paymentId == "" {
		return apperror.BadRequest("id: is required")
	}

	payment, err := s.mollie.GetPayment(ctx, paymentId)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	betaling, err := uow.BetalingRepository().FindByMolliePaymentId(ctx, payment.Id)
	if err != nil {
		return err
	}

	var abonnement *model.Abonnement
	switch {
	case betaling != nil && betaling.AbonnementId != nil:
		abonnement, err = uow.AbonnementRepository().FindOne(ctx, specification.ByID{ID: *betaling.AbonnementId})
	case betaling == nil && payment.SubscriptionId != "":
		abonnement, err = uow.AbonnementRepository().FindOne(ctx, specification.Filter("mollie_subscription_id", payment.SubscriptionId))
	}
	if err != nil {
		return err
	}

	if betaling == nil {
		if abonnement == nil {
			s.logger.Warn("PAYMENT", "Webhook for unknown payment", map[string]interface{}{"payment_id": payment.Id})
			return nil
		}
		betaling = &model.Betaling{
			AbonnementId:    &abonnement.Id,
			GebruikerId:     abonnement.GebruikerId,
			MolliePaymentId: payment.Id,
			Bedrag:          payment.Amount.Value,
			Valuta:          payment.Amount.Currency,
			SequenceType:    mollie.SequenceRecurring,
		}
	}

	betaling.Status = model.BetalingStatus(payment.Status)
	betaling.BetaaldOp = payment.PaidAt
	if raw, err := json.Marshal(payment); err == nil {
		betaling.Payload = datatypes.JSON(raw)
	}

	activate := payment.Status == mollie.PaymentPaid &&
		betaling.SequenceType == mollie.SequenceFirst &&
		abonnement != nil && abonnement.Status == model.AbonnementStatusPending
	failed := payment.Status == mollie.PaymentFailed ||
		payment.Status == mollie.PaymentExpired ||
		payment.Status == mollie.PaymentCanceled

	// Only the delivery that claims the pending row talks to Mollie.
	claimed := false
	activated := false
	if activate {
		claimed, err = uow.AbonnementRepository().TransitionStatus(ctx, abonnement.Id,
			model.AbonnementStatusPending, model.AbonnementStatusActivating)
		if err != nil {
			return err
		}
		if !claimed {
			s.logger.Info("PAYMENT", "Abonnement already being activated", map[string]interface{}{
				"payment_id":    payment.Id,
				"abonnement_id": abonnement.Id,
			})
		}
		activate = claimed
	}
	if claimed {
		defer func() {
			if !activated {
				s.releaseClaim(ctx, uow, abonnement.Id)
			}
		}()
	}

	var subscription *mollie.Subscription
	if activate {
		subscription, err = s.startSubscription(ctx, abonnement, payment)
		if err != nil {
			return err
		}
		activate = subscription != nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if betaling.Id == 0 {
		err = uow.BetalingRepository().Create(ctx, betaling)
	} else {
		err = uow.BetalingRepository().Update(ctx, betaling)
	}
	if err != nil {
		return err
	}

	switch {
	case activate:
		now := s.now()
		abonnement.Status = model.AbonnementStatusActive
		abonnement.MollieSubscriptionId = &subscription.Id
		abonnement.MollieMandateId = &payment.MandateId
		abonnement.StartDatum = &now
		if err := uow.AbonnementRepository().Update(ctx, abonnement); err != nil {
			return err
		}
		if err := uow.UserRepository().SetSubscriptionFlag(ctx, abonnement.GebruikerId, true); err != nil {
			return err
		}
	case failed && abonnement != nil && abonnement.Status == model.AbonnementStatusPending:
		moved, err := uow.AbonnementRepository().TransitionStatus(ctx, abonnement.Id,
			model.AbonnementStatusPending, model.AbonnementStatusFailed)
		if err != nil {
			return err
		}
		if moved {
			abonnement.Status = model.AbonnementStatusFailed
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	activated = activate

	s.logger.Info("PAYMENT", "Webhook processed", map[string]interface{}{
		"payment_id": payment.Id,
		"status":     payment.Status,
		"activated":  activate,
	})

	switch {
	case activate:
		publishAfterCommit(ctx, s.publisherService, events.New(events.SubscriptionActivated, map[string]interface{}{
			"gebruikerId":  abonnement.GebruikerId,
			"abonnementId": abonnement.Id,
			"bedrag":       abonnement.Bedrag,
			"interval":     abonnement.Interval,
		}))
	case failed:
		publishAfterCommit(ctx, s.publisherService, events.New(events.PaymentFailed, map[string]interface{}{
			"gebruikerId": betaling.GebruikerId,
			"paymentId":   payment.Id,
			"status":      payment.Status,
		}))
	}
	return nil
}

// startSubscription creates the recurring Mollie subscription once the first
// payment left a valid mandate. It returns nil when the mandate is not valid.
func (s *paymentService) startSubscription(ctx context.Context, abonnement *model.Abonnement, payment *mollie.Payment) (*mollie.Subscription, error) {
	if payment.MandateId == "" {
		s.logger.Warn("PAYMENT", "Paid first payment without mandate", map[string]interface{}{"payment_id": payment.Id})
		return nil, nil
	}

	mandate, err := s.mollie.GetMandate(ctx, abonnement.MollieCustomerId, payment.MandateId)
	if err != nil {
		return nil, err
	}
	if mandate.Status != mollie.MandateValid {
		s.logger.Warn("PAYMENT", "Mandate not valid yet", map[string]interface{}{
			"payment_id": payment.Id,
			"mandate_id": mandate.Id,
			"status":     mandate.Status,
		})
		return nil, nil
	}

	return s.mollie.CreateSubscription(ctx, abonnement.MollieCustomerId, mollie.CreateSubscription{
		Amount:      mollie.Amount{Currency: abonnement.Valuta, Value: abonnement.Bedrag},
		Interval:    abonnement.Interval,
		Description: s.cfg.Description,
		WebhookUrl:  s.cfg.WebhookURL,
		MandateId:   mandate.Id,
		StartDate:   nextBillingDate(abonnement.Interval, s.now()),
		Metadata:    map[string]string{"abonnementId": strconv.FormatUint(uint64(abonnement.Id), 10)},
		// Retries for the same first payment must not open a second subscription.
		IdempotencyKey: "subscription-" + payment.Id,
	})
}

// releaseClaim puts a claimed abonnement back to pending so a later webhook
// delivery can retry the activation. It runs after the transaction closed.
func (s *paymentService) releaseClaim(ctx context.Context, uow unitofwork.UnitOfWork, abonnementId uint) {
	_, err := uow.AbonnementRepository().TransitionStatus(context.WithoutCancel(ctx), abonnementId,
		model.AbonnementStatusActivating, model.AbonnementStatusPending)
	if err != nil {
		s.logger.Error("PAYMENT", "Failed to release abonnement claim", map[string]interface{}{
			"abonnement_id": abonnementId,
			"error":         err.Error(),
		})
	}
}

// nextBillingDate returns the first recurring charge date, one interval after
// from. The first payment already covers the current period.
func nextBillingDate(interval string, from time.Time) string {
	parts := strings.Fields(interval)
	n := 1
	unit := "month"
	if len(parts) == 2 {
		if v, err := strconv.Atoi(parts[0]); err == nil && v > 0 {
			n = v
		}
		unit = strings.TrimSuffix(parts[1], "s")
	}

	var next time.Time
	switch unit {
	case "day":
		next = from.AddDate(0, 0, n)
	case "week":
		next = from.AddDate(0, 0, 7*n)
	default:
		next = from.AddDate(0, n, 0)
	}
	return next.Format("2006-01-02")
}
