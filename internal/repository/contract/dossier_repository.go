package contract

import (
	"context"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/cascade"
)

type DossierRepository interface {
	Repository[model.Dossier]

	FindAllByUser(ctx context.Context, userId uint) ([]*model.Dossier, error)
	// DeleteCascade removes the dossier with every dependent row. It must run
	// inside a transaction.
	DeleteCascade(ctx context.Context, dossierId uint) (cascade.Report, error)
}

type PersoonRepository interface {
	Repository[model.Persoon]
}

type PartijRepository interface {
	Repository[model.Partij]

	FindAllByDossier(ctx context.Context, dossierId uint) ([]*model.Partij, error)
	FindOneWithRelations(ctx context.Context, id uint) (*model.Partij, error)
}

type DossierKindRepository interface {
	Repository[model.DossierKind]

	FindAllByDossier(ctx context.Context, dossierId uint) ([]*model.DossierKind, error)
	FindOneWithKind(ctx context.Context, id uint) (*model.DossierKind, error)
}

type KindOuderRepository interface {
	Repository[model.KindOuder]

	FindAllByKinderen(ctx context.Context, kindIds []uint) ([]*model.KindOuder, error)
}
