package unitofwork

import (
	"context"
	"fmt"

	"ouderschapsplan-api/internal/repository/contract"
	"ouderschapsplan-api/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback is safe to defer after Commit; it is then a no-op.
func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DossierRepository() contract.DossierRepository {
	return implementation.NewDossierRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PersoonRepository() contract.PersoonRepository {
	return implementation.NewPersoonRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PartijRepository() contract.PartijRepository {
	return implementation.NewPartijRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DossierKindRepository() contract.DossierKindRepository {
	return implementation.NewDossierKindRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KindOuderRepository() contract.KindOuderRepository {
	return implementation.NewKindOuderRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OmgangRepository() contract.OmgangRepository {
	return implementation.NewOmgangRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ZorgRepository() contract.ZorgRepository {
	return implementation.NewZorgRepository(u.getDB())
}

func (u *UnitOfWorkImpl) OuderschapsplanRepository() contract.OuderschapsplanRepository {
	return implementation.NewOuderschapsplanRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AlimentatieRepository() contract.AlimentatieRepository {
	return implementation.NewAlimentatieRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LookupRepository() contract.LookupRepository {
	return implementation.NewLookupRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AbonnementRepository() contract.AbonnementRepository {
	return implementation.NewAbonnementRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BetalingRepository() contract.BetalingRepository {
	return implementation.NewBetalingRepository(u.getDB())
}
