package implementation

import (
	"context"
	"time"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/contract"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	baseRepository[model.Gebruiker]
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{baseRepository[model.Gebruiker]{db: db}}
}

func (r *UserRepositoryImpl) LinkAuth0Id(ctx context.Context, id uint, auth0Id string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Gebruiker{}).
		Where("id = ? AND auth0_id IS NULL", id).
		Update("auth0_id", auth0Id)
	return res.RowsAffected > 0, res.Error
}

func (r *UserRepositoryImpl) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Gebruiker{}).
		Where("id = ?", id).
		UpdateColumn("laatste_login", at).Error
}

func (r *UserRepositoryImpl) SetSubscriptionFlag(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&model.Gebruiker{}).
		Where("id = ?", id).
		Update("heeft_abonnement", active).Error
}

func (r *UserRepositoryImpl) SetMollieCustomerId(ctx context.Context, id uint, customerId string) error {
	return r.db.WithContext(ctx).Model(&model.Gebruiker{}).
		Where("id = ?", id).
		Update("mollie_customer_id", customerId).Error
}
