package mollie

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, "test_key")
	require.NoError(t, err)
	return client
}

func TestCreatePaymentSendsKeyAndIdempotency(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, "Bearer test_key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"tr_1","status":"open","sequenceType":"first",
			"amount":{"currency":"EUR","value":"9.95"},
			"metadata":{"gebruikerId":"42"},
			"_links":{"checkout":{"href":"https://mollie.test/checkout/tr_1","type":"text/html"}}}`))
	})

	payment, err := client.CreatePayment(context.Background(), CreatePayment{
		Amount:       Amount{Currency: "EUR", Value: "9.95"},
		Description:  "Abonnement",
		CustomerId:   "cst_1",
		SequenceType: SequenceFirst,
		Metadata:     map[string]string{"gebruikerId": "42"},
	})
	require.NoError(t, err)

	assert.Equal(t, "tr_1", payment.Id)
	assert.Equal(t, "https://mollie.test/checkout/tr_1", payment.CheckoutUrl())
	assert.Equal(t, Amount{Currency: "EUR", Value: "9.95"}, payment.Amount)
	assert.Equal(t, "42", payment.Metadata["gebruikerId"])
	assert.Equal(t, "cst_1", got["customerId"])
	assert.Equal(t, SequenceFirst, got["sequenceType"])
}

func TestGetPaymentMapsFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/payments/tr_9", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"tr_9","status":"paid","mandateId":"mdt_1","customerId":"cst_1",
			"subscriptionId":"sub_1","sequenceType":"recurring","paidAt":"2024-05-10T10:05:00+00:00"}`))
	})

	payment, err := client.GetPayment(context.Background(), "tr_9")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, payment.Status)
	assert.Equal(t, "mdt_1", payment.MandateId)
	assert.Equal(t, "sub_1", payment.SubscriptionId)
	assert.Equal(t, SequenceRecurring, payment.SequenceType)
	require.NotNil(t, payment.PaidAt)
	assert.Equal(t, 2024, payment.PaidAt.Year())
	assert.Empty(t, payment.CheckoutUrl())
}

func TestCreateSubscriptionUsesGivenIdempotencyKey(t *testing.T) {
	var keys []string
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/customers/cst_1/subscriptions", r.URL.Path)
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"sub_1","status":"active","customerId":"cst_1",
			"interval":"1 month","startDate":"2024-06-10"}`))
	})

	req := CreateSubscription{
		Amount:         Amount{Currency: "EUR", Value: "9.95"},
		Interval:       "1 month",
		Description:    "Abonnement",
		MandateId:      "mdt_1",
		StartDate:      "2024-06-10",
		IdempotencyKey: "subscription-tr_1",
	}
	for i := 0; i < 2; i++ {
		sub, err := client.CreateSubscription(context.Background(), "cst_1", req)
		require.NoError(t, err)
		assert.Equal(t, "sub_1", sub.Id)
		assert.Equal(t, "2024-06-10", sub.StartDate)
	}

	assert.Equal(t, []string{"subscription-tr_1", "subscription-tr_1"}, keys)
	assert.Equal(t, "mdt_1", got["mandateId"])
	assert.Equal(t, "2024-06-10", got["startDate"])
}

func TestCreateSubscriptionRejectsBadStartDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.CreateSubscription(context.Background(), "cst_1", CreateSubscription{StartDate: "10-06-2024"})
	assert.Error(t, err)
}

func TestErrorResponseBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/hal+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":422,"title":"Unprocessable Entity","detail":"The amount is too low"}`))
	})

	_, err := client.CreateCustomer(context.Background(), "A", "a@example.nl")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Equal(t, "The amount is too low", apiErr.Detail)
}

func TestCancelSubscriptionPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v2/customers/cst_1/subscriptions/sub_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"sub_1","status":"canceled","canceledAt":"2024-05-11T09:00:00+00:00"}`))
	})

	sub, err := client.CancelSubscription(context.Background(), "cst_1", "sub_1")
	require.NoError(t, err)
	assert.Equal(t, "canceled", sub.Status)
	assert.NotEmpty(t, sub.CanceledAt)
}
