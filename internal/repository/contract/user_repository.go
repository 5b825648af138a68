package contract

import (
	"context"
	"time"

	"ouderschapsplan-api/internal/model"
)

type UserRepository interface {
	Repository[model.Gebruiker]

	// LinkAuth0Id sets the external id only when the row has none yet and
	// reports whether it did.
	LinkAuth0Id(ctx context.Context, id uint, auth0Id string) (bool, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
	SetSubscriptionFlag(ctx context.Context, id uint, active bool) error
	SetMollieCustomerId(ctx context.Context, id uint, customerId string) error
}
