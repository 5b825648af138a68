package unitofwork

import (
	"context"

	"ouderschapsplan-api/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	DossierRepository() contract.DossierRepository
	PersoonRepository() contract.PersoonRepository
	PartijRepository() contract.PartijRepository
	DossierKindRepository() contract.DossierKindRepository
	KindOuderRepository() contract.KindOuderRepository
	OmgangRepository() contract.OmgangRepository
	ZorgRepository() contract.ZorgRepository
	OuderschapsplanRepository() contract.OuderschapsplanRepository
	AlimentatieRepository() contract.AlimentatieRepository
	LookupRepository() contract.LookupRepository
	AbonnementRepository() contract.AbonnementRepository
	BetalingRepository() contract.BetalingRepository
}
