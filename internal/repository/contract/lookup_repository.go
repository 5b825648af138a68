package contract

import (
	"context"

	"ouderschapsplan-api/internal/model"
)

// RegelingTemplateFilter narrows the template lookup; nil fields match all.
type RegelingTemplateFilter struct {
	Type     string `json:"type,omitempty"`
	Meervoud *bool  `json:"meervoudKinderen,omitempty"`
}

type LookupRepository interface {
	Rollen(ctx context.Context) ([]model.Rol, error)
	Dagen(ctx context.Context) ([]model.Dag, error)
	Dagdelen(ctx context.Context) ([]model.Dagdeel, error)
	WeekRegelingen(ctx context.Context) ([]model.WeekRegeling, error)
	ZorgCategorieen(ctx context.Context) ([]model.ZorgCategorie, error)
	ZorgSituaties(ctx context.Context, categorieId *uint) ([]model.ZorgSituatie, error)
	Schoolvakanties(ctx context.Context) ([]model.Schoolvakantie, error)
	RegelingTemplates(ctx context.Context, filter RegelingTemplateFilter) ([]model.RegelingTemplate, error)
	RelatieTypes(ctx context.Context) ([]model.RelatieType, error)

	// Exists reports whether a row with id exists in the table of row.
	Exists(ctx context.Context, row interface{}, id uint) (bool, error)
	FindZorgSituatie(ctx context.Context, id uint) (*model.ZorgSituatie, error)
}
