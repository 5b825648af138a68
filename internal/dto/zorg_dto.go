package dto

import (
	"time"

	"ouderschapsplan-api/internal/model"
)

type ZorgParams struct {
	DossierId uint `params:"dossierId" validate:"required,gt=0"`
	ZorgId    uint `params:"zorgId" validate:"required,gt=0"`
}

type ZorgQuery struct {
	ZorgCategorieId *uint `query:"zorgCategorieId" validate:"omitempty,gt=0"`
}

type CreateZorgRequest struct {
	ZorgCategorieId uint   `json:"zorgCategorieId" validate:"required,gt=0"`
	ZorgSituatieId  uint   `json:"zorgSituatieId" validate:"required,gt=0"`
	Overeenkomst    string `json:"overeenkomst" validate:"required"`
	SituatieAnders  string `json:"situatieAnders"`
}

type UpdateZorgRequest struct {
	ZorgSituatieId *uint   `json:"zorgSituatieId" validate:"omitempty,gt=0"`
	Overeenkomst   *string `json:"overeenkomst" validate:"omitempty,min=1"`
	SituatieAnders *string `json:"situatieAnders"`
}

type ZorgResponse struct {
	Id              uint                `json:"id"`
	DossierId       uint                `json:"dossierId"`
	ZorgCategorieId uint                `json:"zorgCategorieId"`
	ZorgCategorie   model.ZorgCategorie `json:"zorgCategorie"`
	ZorgSituatieId  uint                `json:"zorgSituatieId"`
	ZorgSituatie    model.ZorgSituatie  `json:"zorgSituatie"`
	Overeenkomst    string              `json:"overeenkomst"`
	SituatieAnders  string              `json:"situatieAnders,omitempty"`
	AangemaaktDoor  uint                `json:"aangemaaktDoor"`
	GewijzigdDoor   *uint               `json:"gewijzigdDoor,omitempty"`
	AangemaaktOp    time.Time           `json:"aangemaaktOp"`
	GewijzigdOp     time.Time           `json:"gewijzigdOp"`
}
