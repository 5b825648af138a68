package contract

import (
	"context"

	"ouderschapsplan-api/internal/model"
)

type ZorgRepository interface {
	Repository[model.Zorg]

	FindAllWithRelations(ctx context.Context, dossierId uint, categorieId *uint) ([]*model.Zorg, error)
}
