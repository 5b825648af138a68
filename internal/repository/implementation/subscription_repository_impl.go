package implementation

import (
	"context"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/contract"
	"ouderschapsplan-api/internal/repository/specification"

	"gorm.io/gorm"
)

type AbonnementRepositoryImpl struct {
	baseRepository[model.Abonnement]
}

func NewAbonnementRepository(db *gorm.DB) contract.AbonnementRepository {
	return &AbonnementRepositoryImpl{baseRepository[model.Abonnement]{db: db}}
}

func (r *AbonnementRepositoryImpl) FindLatestByUser(ctx context.Context, userId uint) (*model.Abonnement, error) {
	return r.FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "id", Desc: true},
	)
}

func (r *AbonnementRepositoryImpl) FindActiveByUser(ctx context.Context, userId uint) (*model.Abonnement, error) {
	return r.FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("status", model.AbonnementStatusActive),
		specification.OrderBy{Field: "id", Desc: true},
	)
}

func (r *AbonnementRepositoryImpl) TransitionStatus(ctx context.Context, id uint, from, to model.AbonnementStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Abonnement{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type BetalingRepositoryImpl struct {
	baseRepository[model.Betaling]
}

func NewBetalingRepository(db *gorm.DB) contract.BetalingRepository {
	return &BetalingRepositoryImpl{baseRepository[model.Betaling]{db: db}}
}

func (r *BetalingRepositoryImpl) FindByMolliePaymentId(ctx context.Context, paymentId string) (*model.Betaling, error) {
	return r.FindOne(ctx, specification.Filter("mollie_payment_id", paymentId))
}
