package dto

import "ouderschapsplan-api/internal/model"

type OmgangParams struct {
	DossierId uint `params:"dossierId" validate:"required,gt=0"`
	OmgangId  uint `params:"omgangId" validate:"required,gt=0"`
}

type OmgangQuery struct {
	WeekRegelingId *uint `query:"weekRegelingId" validate:"omitempty,gt=0"`
}

type CreateOmgangRequest struct {
	DagId              uint   `json:"dagId" validate:"required,gt=0"`
	DagdeelId          uint   `json:"dagdeelId" validate:"required,gt=0"`
	WeekRegelingId     uint   `json:"weekRegelingId" validate:"required,gt=0"`
	VerzorgerId        uint   `json:"verzorgerId" validate:"required,gt=0"`
	WisselTijd         string `json:"wisselTijd" validate:"omitempty,max=10"`
	WeekRegelingAnders string `json:"weekRegelingAnders"`
}

type UpdateOmgangRequest struct {
	DagId              *uint   `json:"dagId" validate:"omitempty,gt=0"`
	DagdeelId          *uint   `json:"dagdeelId" validate:"omitempty,gt=0"`
	WeekRegelingId     *uint   `json:"weekRegelingId" validate:"omitempty,gt=0"`
	VerzorgerId        *uint   `json:"verzorgerId" validate:"omitempty,gt=0"`
	WisselTijd         *string `json:"wisselTijd" validate:"omitempty,max=10"`
	WeekRegelingAnders *string `json:"weekRegelingAnders"`
}

type OmgangWeekEntry struct {
	DagId       uint   `json:"dagId" validate:"required,gt=0"`
	DagdeelId   uint   `json:"dagdeelId" validate:"required,gt=0"`
	VerzorgerId uint   `json:"verzorgerId" validate:"required,gt=0"`
	WisselTijd  string `json:"wisselTijd" validate:"omitempty,max=10"`
}

// ReplaceWeekRequest replaces every slot of one week regeling.
type ReplaceWeekRequest struct {
	WeekRegelingId     uint              `json:"weekRegelingId" validate:"required,gt=0"`
	WeekRegelingAnders string            `json:"weekRegelingAnders"`
	Entries            []OmgangWeekEntry `json:"entries" validate:"dive"`
}

type OmgangResponse struct {
	Id                 uint               `json:"id"`
	DossierId          uint               `json:"dossierId"`
	DagId              uint               `json:"dagId"`
	Dag                model.Dag          `json:"dag"`
	DagdeelId          uint               `json:"dagdeelId"`
	Dagdeel            model.Dagdeel      `json:"dagdeel"`
	WeekRegelingId     uint               `json:"weekRegelingId"`
	WeekRegeling       model.WeekRegeling `json:"weekRegeling"`
	VerzorgerId        uint               `json:"verzorgerId"`
	Verzorger          PersoonResponse    `json:"verzorger"`
	WisselTijd         string             `json:"wisselTijd,omitempty"`
	WeekRegelingAnders string             `json:"weekRegelingAnders,omitempty"`
}
