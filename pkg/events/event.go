package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	DossierDeleted        = "DOSSIER_DELETED"
	SubscriptionActivated = "SUBSCRIPTION_ACTIVATED"
	SubscriptionCancelled = "SUBSCRIPTION_CANCELLED"
	PaymentFailed         = "PAYMENT_FAILED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DOSSIER_DELETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// envelope is the wire format shared by every transport.
type envelope struct {
	Id         string                 `json:"id"`
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurredAt"`
	Data       map[string]interface{} `json:"data"`
}

func Marshal(e Event) ([]byte, error) {
	return json.Marshal(envelope{
		Id:         uuid.NewString(),
		Type:       e.EventType(),
		OccurredAt: e.Timestamp(),
		Data:       e.Payload(),
	})
}

func Unmarshal(raw []byte) (BaseEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return BaseEvent{}, err
	}
	return BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}

// Uint reads a numeric payload field. JSON decoding turns numbers into
// float64, in-process payloads keep their Go type.
func Uint(data map[string]interface{}, key string) uint {
	switch v := data[key].(type) {
	case uint:
		return v
	case int:
		return uint(v)
	case int64:
		return uint(v)
	case float64:
		return uint(v)
	default:
		return 0
	}
}

// String reads a string payload field.
func String(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}
