package contract

import (
	"context"

	"ouderschapsplan-api/internal/model"
)

type AbonnementRepository interface {
	Repository[model.Abonnement]

	FindLatestByUser(ctx context.Context, userId uint) (*model.Abonnement, error)
	FindActiveByUser(ctx context.Context, userId uint) (*model.Abonnement, error)
	// TransitionStatus moves the row from one status to another in a single
	// conditional update. It reports false when the row was not in from.
	TransitionStatus(ctx context.Context, id uint, from, to model.AbonnementStatus) (bool, error)
}

type BetalingRepository interface {
	Repository[model.Betaling]

	FindByMolliePaymentId(ctx context.Context, paymentId string) (*model.Betaling, error)
}
