package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"ouderschapsplan-api/internal/config"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/testutil"
	"ouderschapsplan-api/pkg/events"
	"ouderschapsplan-api/pkg/mollie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type fakeMollie struct {
	mu            sync.Mutex
	customers     int
	paymentIds    []string
	payments      map[string]*mollie.Payment
	mandateStatus string
	subscriptions []mollie.CreateSubscription
	cancelled     []string
	failCreate    error
	failSubscribe error
	// arrived, when set, holds every GetPayment caller until all have arrived.
	arrived *sync.WaitGroup
}

func newFakeMollie() *fakeMollie {
	return &fakeMollie{
		paymentIds:    []string{"tr_first", "tr_second", "tr_third"},
		payments:      map[string]*mollie.Payment{},
		mandateStatus: mollie.MandateValid,
	}
}

func (f *fakeMollie) CreateCustomer(ctx context.Context, name, email string) (*mollie.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers++
	return &mollie.Customer{Id: "cst_test", Name: name, Email: email}, nil
}

func (f *fakeMollie) CreatePayment(ctx context.Context, req mollie.CreatePayment) (*mollie.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	id := f.paymentIds[0]
	f.paymentIds = f.paymentIds[1:]
	p := &mollie.Payment{
		Id:           id,
		Status:       mollie.PaymentOpen,
		Amount:       req.Amount,
		SequenceType: req.SequenceType,
		CustomerId:   req.CustomerId,
		Metadata:     req.Metadata,
	}
	p.Links.Checkout = &mollie.Link{Href: "https://www.mollie.com/checkout/test"}
	f.payments[p.Id] = p
	return p, nil
}

func (f *fakeMollie) GetPayment(ctx context.Context, paymentId string) (*mollie.Payment, error) {
	if f.arrived != nil {
		f.arrived.Done()
		f.arrived.Wait()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[paymentId]
	if !ok {
		return nil, &mollie.APIError{Status: http.StatusNotFound, Title: "Not Found"}
	}
	return p, nil
}

func (f *fakeMollie) GetMandate(ctx context.Context, customerId, mandateId string) (*mollie.Mandate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &mollie.Mandate{Id: mandateId, Status: f.mandateStatus}, nil
}

func (f *fakeMollie) CreateSubscription(ctx context.Context, customerId string, req mollie.CreateSubscription) (*mollie.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscriptions = append(f.subscriptions, req)
	if f.failSubscribe != nil {
		return nil, f.failSubscribe
	}
	return &mollie.Subscription{Id: "sub_test", Status: "active", CustomerId: customerId, Interval: req.Interval}, nil
}

func (f *fakeMollie) CancelSubscription(ctx context.Context, customerId, subscriptionId string) (*mollie.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, subscriptionId)
	return &mollie.Subscription{Id: subscriptionId, Status: "canceled"}, nil
}

type paymentFixture struct {
	db        *gorm.DB
	svc       *paymentService
	mollie    *fakeMollie
	publisher *recordingPublisher
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	db, factory := newFactory(t)
	testutil.SeedUser(t, db, 42, "ouder@example.nl")
	fake := newFakeMollie()
	publisher := &recordingPublisher{}
	cfg := config.MollieConfig{
		WebhookURL:           "https://api.example.nl/api/mollie/webhook",
		RedirectURL:          "https://app.example.nl/abonnement",
		SubscriptionAmount:   "9.95",
		SubscriptionCurrency: "EUR",
		SubscriptionInterval: "1 month",
		Description:          "Ouderschapsplan abonnement",
	}
	svc := NewPaymentService(factory, fake, publisher, cfg, logger.NewNopLogger()).(*paymentService)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC) }
	return &paymentFixture{db: db, svc: svc, mollie: fake, publisher: publisher}
}

func (f *paymentFixture) user(t *testing.T) model.Gebruiker {
	t.Helper()
	var user model.Gebruiker
	require.NoError(t, f.db.First(&user, 42).Error)
	return user
}

func TestPaymentServiceCheckout(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "https://www.mollie.com/checkout/test", res.CheckoutUrl)
	assert.NotZero(t, res.AbonnementId)

	user := f.user(t)
	require.NotNil(t, user.MollieCustomerId)
	assert.Equal(t, "cst_test", *user.MollieCustomerId)
	assert.False(t, user.HeeftAbonnement)

	var abonnement model.Abonnement
	require.NoError(t, f.db.First(&abonnement, res.AbonnementId).Error)
	assert.Equal(t, model.AbonnementStatusPending, abonnement.Status)
	assert.Equal(t, "9.95", abonnement.Bedrag)

	var betaling model.Betaling
	require.NoError(t, f.db.Where("mollie_payment_id = ?", "tr_first").First(&betaling).Error)
	assert.Equal(t, model.BetalingStatusOpen, betaling.Status)
	assert.Equal(t, mollie.SequenceFirst, betaling.SequenceType)

	_, err = f.svc.Checkout(ctx, 42)
	require.NoError(t, err, "a pending abonnement does not block a new checkout")
	assert.Equal(t, 1, f.mollie.customers, "the mollie customer is created once")
}

func TestPaymentServiceCheckoutProviderFailure(t *testing.T) {
	f := newPaymentFixture(t)
	f.mollie.failCreate = errors.New("mollie down")

	_, err := f.svc.Checkout(context.Background(), 42)
	assertAppError(t, err, http.StatusInternalServerError, "Payment provider error")

	var count int64
	require.NoError(t, f.db.Model(&model.Abonnement{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPaymentServiceWebhookActivates(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)

	paidAt := time.Date(2024, 5, 10, 10, 5, 0, 0, time.UTC)
	payment := f.mollie.payments["tr_first"]
	payment.Status = mollie.PaymentPaid
	payment.MandateId = "mdt_test"
	payment.PaidAt = &paidAt

	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_first"))

	var abonnement model.Abonnement
	require.NoError(t, f.db.First(&abonnement, res.AbonnementId).Error)
	assert.Equal(t, model.AbonnementStatusActive, abonnement.Status)
	require.NotNil(t, abonnement.MollieSubscriptionId)
	assert.Equal(t, "sub_test", *abonnement.MollieSubscriptionId)
	assert.True(t, f.user(t).HeeftAbonnement)

	require.Len(t, f.mollie.subscriptions, 1)
	assert.Equal(t, "2024-06-10", f.mollie.subscriptions[0].StartDate)
	assert.Equal(t, "mdt_test", f.mollie.subscriptions[0].MandateId)
	assert.Equal(t, "subscription-tr_first", f.mollie.subscriptions[0].IdempotencyKey)

	event := f.publisher.last()
	require.NotNil(t, event)
	assert.Equal(t, events.SubscriptionActivated, event.EventType())
	assert.Equal(t, uint(42), events.Uint(event.Payload(), "gebruikerId"))

	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_first"))
	assert.Len(t, f.mollie.subscriptions, 1, "a repeated webhook does not subscribe twice")

	status, err := f.svc.Status(ctx, 42)
	require.NoError(t, err)
	assert.True(t, status.HeeftAbonnement)
	require.NotNil(t, status.Abonnement)
	assert.Equal(t, "active", status.Abonnement.Status)

	_, err = f.svc.Checkout(ctx, 42)
	assertAppError(t, err, http.StatusConflict, "An active subscription already exists")
}

func TestPaymentServiceWebhookConcurrentDeliveries(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	payment := f.mollie.payments["tr_first"]
	payment.Status = mollie.PaymentPaid
	payment.MandateId = "mdt_test"

	var arrived sync.WaitGroup
	arrived.Add(2)
	f.mollie.arrived = &arrived

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error { return f.svc.HandleWebhook(ctx, "tr_first") })
	}
	require.NoError(t, g.Wait())

	assert.Len(t, f.mollie.subscriptions, 1, "one first payment opens one subscription")

	var abonnement model.Abonnement
	require.NoError(t, f.db.First(&abonnement, res.AbonnementId).Error)
	assert.Equal(t, model.AbonnementStatusActive, abonnement.Status)
	assert.True(t, f.user(t).HeeftAbonnement)
	assert.Equal(t, 1, f.publisher.count())
}

func TestPaymentServiceWebhookRetriesAfterProviderFailure(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	payment := f.mollie.payments["tr_first"]
	payment.Status = mollie.PaymentPaid
	payment.MandateId = "mdt_test"

	f.mollie.failSubscribe = errors.New("mollie down")
	assert.Error(t, f.svc.HandleWebhook(ctx, "tr_first"))

	var abonnement model.Abonnement
	require.NoError(t, f.db.First(&abonnement, res.AbonnementId).Error)
	assert.Equal(t, model.AbonnementStatusPending, abonnement.Status, "the claim is released")

	f.mollie.failSubscribe = nil
	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_first"))

	require.NoError(t, f.db.First(&abonnement, res.AbonnementId).Error)
	assert.Equal(t, model.AbonnementStatusActive, abonnement.Status)
	require.Len(t, f.mollie.subscriptions, 2)
	assert.Equal(t, f.mollie.subscriptions[0].IdempotencyKey, f.mollie.subscriptions[1].IdempotencyKey)
}

func TestPaymentServiceWebhookWaitsForValidMandate(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	f.mollie.mandateStatus = "pending"

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	payment := f.mollie.payments["tr_first"]
	payment.Status = mollie.PaymentPaid
	payment.MandateId = "mdt_test"

	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_first"))

	var abonnement model.Abonnement
	require.NoError(t, f.db.First(&abonnement, res.AbonnementId).Error)
	assert.Equal(t, model.AbonnementStatusPending, abonnement.Status)
	assert.Empty(t, f.mollie.subscriptions)
	assert.False(t, f.user(t).HeeftAbonnement)
}

func TestPaymentServiceWebhookFailure(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	res, err := f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	f.mollie.payments["tr_first"].Status = mollie.PaymentExpired

	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_first"))

	var abonnement model.Abonnement
	require.NoError(t, f.db.First(&abonnement, res.AbonnementId).Error)
	assert.Equal(t, model.AbonnementStatusFailed, abonnement.Status)

	var betaling model.Betaling
	require.NoError(t, f.db.Where("mollie_payment_id = ?", "tr_first").First(&betaling).Error)
	assert.Equal(t, model.BetalingStatusExpired, betaling.Status)
	assert.NotEmpty(t, betaling.Payload)

	event := f.publisher.last()
	require.NotNil(t, event)
	assert.Equal(t, events.PaymentFailed, event.EventType())
}

func TestPaymentServiceWebhookRecurringPayment(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	subId := "sub_test"
	abonnement := &model.Abonnement{
		GebruikerId:          42,
		MollieCustomerId:     "cst_test",
		MollieSubscriptionId: &subId,
		Status:               model.AbonnementStatusActive,
		Bedrag:               "9.95",
		Valuta:               "EUR",
		Interval:             "1 month",
	}
	require.NoError(t, f.db.Create(abonnement).Error)

	f.mollie.payments["tr_recurring"] = &mollie.Payment{
		Id:             "tr_recurring",
		Status:         mollie.PaymentPaid,
		Amount:         mollie.Amount{Currency: "EUR", Value: "9.95"},
		SequenceType:   mollie.SequenceRecurring,
		SubscriptionId: subId,
	}

	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_recurring"))

	var betaling model.Betaling
	require.NoError(t, f.db.Where("mollie_payment_id = ?", "tr_recurring").First(&betaling).Error)
	require.NotNil(t, betaling.AbonnementId)
	assert.Equal(t, abonnement.Id, *betaling.AbonnementId)
	assert.Equal(t, model.BetalingStatusPaid, betaling.Status)
	assert.Equal(t, 0, f.publisher.count())
}

func TestPaymentServiceWebhookUnknownPayment(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	assert.Error(t, f.svc.HandleWebhook(ctx, "tr_missing"))
	assertAppError(t, f.svc.HandleWebhook(ctx, " "), http.StatusBadRequest, "")

	f.mollie.payments["tr_orphan"] = &mollie.Payment{Id: "tr_orphan", Status: mollie.PaymentPaid}
	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_orphan"))

	var count int64
	require.NoError(t, f.db.Model(&model.Betaling{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPaymentServiceCancel(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, 42)
	assertAppError(t, err, http.StatusNotFound, "No active subscription")

	_, err = f.svc.Checkout(ctx, 42)
	require.NoError(t, err)
	payment := f.mollie.payments["tr_first"]
	payment.Status = mollie.PaymentPaid
	payment.MandateId = "mdt_test"
	require.NoError(t, f.svc.HandleWebhook(ctx, "tr_first"))

	res, err := f.svc.Cancel(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)
	assert.Equal(t, []string{"sub_test"}, f.mollie.cancelled)
	assert.False(t, f.user(t).HeeftAbonnement)

	event := f.publisher.last()
	require.NotNil(t, event)
	assert.Equal(t, events.SubscriptionCancelled, event.EventType())
}

func TestNextBillingDate(t *testing.T) {
	from := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-02", nextBillingDate("1 month", from))
	assert.Equal(t, "2024-05-01", nextBillingDate("3 months", from))
	assert.Equal(t, "2024-02-14", nextBillingDate("2 weeks", from))
	assert.Equal(t, "2024-02-10", nextBillingDate("10 days", from))
	assert.Equal(t, "2024-03-02", nextBillingDate("", from))
}
