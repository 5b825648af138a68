// Package mollie adapts the Mollie API SDK to the customer, payment, mandate
// and subscription calls the billing flow needs.
package mollie

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	sdk "github.com/VictorAvelar/mollie-api-go/v4/mollie"
	"github.com/VictorAvelar/mollie-api-go/v4/pkg/idempotency"
)

// DefaultBaseURL is the API root; the SDK appends the v2 paths.
const DefaultBaseURL = "https://api.mollie.com/"

const (
	SequenceFirst     = "first"
	SequenceRecurring = "recurring"

	PaymentOpen     = "open"
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentCanceled = "canceled"
	PaymentExpired  = "expired"

	MandateValid = "valid"
)

const shortDate = "2006-01-02"

type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type Link struct {
	Href string `json:"href"`
}

type Customer struct {
	Id    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type CreatePayment struct {
	Amount       Amount
	Description  string
	RedirectUrl  string
	WebhookUrl   string
	CustomerId   string
	SequenceType string
	Metadata     map[string]string
}

type Payment struct {
	Id             string            `json:"id"`
	Status         string            `json:"status"`
	Amount         Amount            `json:"amount"`
	Description    string            `json:"description"`
	SequenceType   string            `json:"sequenceType"`
	CustomerId     string            `json:"customerId"`
	MandateId      string            `json:"mandateId"`
	SubscriptionId string            `json:"subscriptionId"`
	PaidAt         *time.Time        `json:"paidAt"`
	Metadata       map[string]string `json:"metadata"`
	Links          struct {
		Checkout *Link `json:"checkout"`
	} `json:"_links"`
}

// CheckoutUrl returns the hosted checkout link, empty when Mollie gave none.
func (p *Payment) CheckoutUrl() string {
	if p.Links.Checkout == nil {
		return ""
	}
	return p.Links.Checkout.Href
}

type Mandate struct {
	Id     string
	Status string
	Method string
}

type CreateSubscription struct {
	Amount      Amount
	Interval    string
	Description string
	WebhookUrl  string
	MandateId   string
	StartDate   string
	Metadata    map[string]string
	// IdempotencyKey makes a retried create return the first subscription.
	IdempotencyKey string
}

type Subscription struct {
	Id          string
	Status      string
	CustomerId  string
	Interval    string
	StartDate   string
	CanceledAt  string
	Description string
}

// APIError is the problem document Mollie returns on failures.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mollie: %d %s: %s", e.Status, e.Title, e.Detail)
}

// API is the surface the billing service uses.
type API interface {
	CreateCustomer(ctx context.Context, name, email string) (*Customer, error)
	CreatePayment(ctx context.Context, req CreatePayment) (*Payment, error)
	GetPayment(ctx context.Context, paymentId string) (*Payment, error)
	GetMandate(ctx context.Context, customerId, mandateId string) (*Mandate, error)
	CreateSubscription(ctx context.Context, customerId string, req CreateSubscription) (*Subscription, error)
	CancelSubscription(ctx context.Context, customerId, subscriptionId string) (*Subscription, error)
}

type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	api        *sdk.Client
}

func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("mollie: invalid base url: %w", err)
	}

	c := &Client{
		baseURL:    u,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	c.api, err = c.newSDK(idempotency.NewStdGenerator())
	if err != nil {
		return nil, err
	}
	return c, nil
}

// newSDK builds an SDK client whose POST requests carry keys from gen.
func (c *Client) newSDK(gen idempotency.KeyGenerator) (*sdk.Client, error) {
	api, err := sdk.NewClient(c.httpClient, sdk.NewAPIConfig(true))
	if err != nil {
		return nil, err
	}
	api.BaseURL = c.baseURL
	if c.apiKey != "" {
		if err := api.WithAuthenticationValue(c.apiKey); err != nil {
			return nil, err
		}
	}
	api.SetIdempotencyKeyGenerator(gen)
	return api, nil
}

func (c *Client) CreateCustomer(ctx context.Context, name, email string) (*Customer, error) {
	var req sdk.CreateCustomer
	req.Name = name
	req.Email = email

	_, cst, err := c.api.Customers.Create(ctx, req)
	if err != nil {
		return nil, apiError(err)
	}
	return &Customer{Id: cst.ID, Name: cst.Name, Email: cst.Email}, nil
}

func (c *Client) CreatePayment(ctx context.Context, req CreatePayment) (*Payment, error) {
	var p sdk.CreatePayment
	p.Amount = &sdk.Amount{Currency: req.Amount.Currency, Value: req.Amount.Value}
	p.Description = req.Description
	p.RedirectURL = req.RedirectUrl
	p.WebhookURL = req.WebhookUrl
	p.CustomerID = req.CustomerId
	p.SequenceType = sdk.SequenceType(req.SequenceType)
	if len(req.Metadata) > 0 {
		p.Metadata = req.Metadata
	}

	_, payment, err := c.api.Payments.Create(ctx, p, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return toPayment(payment), nil
}

func (c *Client) GetPayment(ctx context.Context, paymentId string) (*Payment, error) {
	_, payment, err := c.api.Payments.Get(ctx, paymentId, nil)
	if err != nil {
		return nil, apiError(err)
	}
	return toPayment(payment), nil
}

func (c *Client) GetMandate(ctx context.Context, customerId, mandateId string) (*Mandate, error) {
	_, mandate, err := c.api.Mandates.Get(ctx, customerId, mandateId)
	if err != nil {
		return nil, apiError(err)
	}
	return &Mandate{Id: mandate.ID, Status: string(mandate.Status), Method: string(mandate.Method)}, nil
}

func (c *Client) CreateSubscription(ctx context.Context, customerId string, req CreateSubscription) (*Subscription, error) {
	api := c.api
	if req.IdempotencyKey != "" {
		keyed, err := c.newSDK(idempotency.NewNopGenerator(req.IdempotencyKey))
		if err != nil {
			return nil, err
		}
		api = keyed
	}

	var s sdk.CreateSubscription
	s.Amount = &sdk.Amount{Currency: req.Amount.Currency, Value: req.Amount.Value}
	s.Interval = req.Interval
	s.Description = req.Description
	s.WebhookURL = req.WebhookUrl
	s.MandateID = req.MandateId
	if len(req.Metadata) > 0 {
		s.Metadata = req.Metadata
	}
	if req.StartDate != "" {
		start, err := time.Parse(shortDate, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("mollie: invalid start date %q: %w", req.StartDate, err)
		}
		s.StartDate = &sdk.ShortDate{Time: start}
	}

	_, sub, err := api.Subscriptions.Create(ctx, customerId, s)
	if err != nil {
		return nil, apiError(err)
	}
	return toSubscription(sub), nil
}

func (c *Client) CancelSubscription(ctx context.Context, customerId, subscriptionId string) (*Subscription, error) {
	_, sub, err := c.api.Subscriptions.Cancel(ctx, customerId, subscriptionId)
	if err != nil {
		return nil, apiError(err)
	}
	return toSubscription(sub), nil
}

func toPayment(p *sdk.Payment) *Payment {
	out := &Payment{
		Id:             p.ID,
		Status:         string(p.Status),
		Description:    p.Description,
		SequenceType:   string(p.SequenceType),
		CustomerId:     p.CustomerID,
		MandateId:      p.MandateID,
		SubscriptionId: p.SubscriptionID,
		PaidAt:         p.PaidAt,
		Metadata:       stringMetadata(p.Metadata),
	}
	if p.Amount != nil {
		out.Amount = Amount{Currency: p.Amount.Currency, Value: p.Amount.Value}
	}
	if p.Links.Checkout != nil {
		out.Links.Checkout = &Link{Href: p.Links.Checkout.Href}
	}
	return out
}

func toSubscription(s *sdk.Subscription) *Subscription {
	out := &Subscription{
		Id:          s.ID,
		Status:      string(s.Status),
		CustomerId:  s.CustomerID,
		Interval:    s.Interval,
		Description: s.Description,
	}
	if s.StartDate != nil {
		out.StartDate = s.StartDate.Format(shortDate)
	}
	if s.CanceledAt != nil {
		out.CanceledAt = s.CanceledAt.Format(time.RFC3339)
	}
	return out
}

// stringMetadata keeps the string values of decoded metadata.
func stringMetadata(raw interface{}) map[string]string {
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func apiError(err error) error {
	var base *sdk.BaseError
	if errors.As(err, &base) {
		return &APIError{Status: base.Status, Title: base.Title, Detail: base.Detail}
	}
	return fmt.Errorf("mollie: %w", err)
}
