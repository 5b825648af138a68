package dto

import "time"

type CheckoutResponse struct {
	CheckoutUrl  string `json:"checkoutUrl"`
	AbonnementId uint   `json:"abonnementId"`
}

type AbonnementResponse struct {
	Id            uint       `json:"id"`
	Status        string     `json:"status"`
	Bedrag        string     `json:"bedrag"`
	Valuta        string     `json:"valuta"`
	Interval      string     `json:"interval"`
	StartDatum    *time.Time `json:"startDatum,omitempty"`
	GeannuleerdOp *time.Time `json:"geannuleerdOp,omitempty"`
	AangemaaktOp  time.Time  `json:"aangemaaktOp"`
}

type SubscriptionStatusResponse struct {
	HeeftAbonnement bool                `json:"heeftAbonnement"`
	Abonnement      *AbonnementResponse `json:"abonnement"`
}

// MollieWebhookRequest is the form body Mollie posts; it only names the payment.
type MollieWebhookRequest struct {
	Id string `form:"id" json:"id"`
}
