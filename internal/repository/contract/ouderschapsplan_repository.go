package contract

import (
	"context"

	"ouderschapsplan-api/internal/model"
)

type OuderschapsplanRepository interface {
	Repository[model.OuderschapsplanInfo]
}

type AlimentatieRepository interface {
	Repository[model.Alimentatie]

	FindOneWithLines(ctx context.Context, dossierId uint) (*model.Alimentatie, error)
	ReplaceBijdragen(ctx context.Context, alimentatieId uint, rows []*model.BijdrageKostenKinderen) error
	ReplaceFinancieleAfspraken(ctx context.Context, alimentatieId uint, rows []*model.FinancieleAfsprakenKinderen) error
}
