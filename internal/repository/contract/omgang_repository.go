package contract

import (
	"context"

	"ouderschapsplan-api/internal/model"
)

type OmgangRepository interface {
	Repository[model.Omgang]

	CreateBulk(ctx context.Context, rows []*model.Omgang) error
	FindAllWithRelations(ctx context.Context, dossierId uint, weekRegelingId *uint) ([]*model.Omgang, error)
	// SlotTaken reports whether the slot of row is held by another row.
	SlotTaken(ctx context.Context, row *model.Omgang) (bool, error)
}
