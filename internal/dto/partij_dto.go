package dto

import "ouderschapsplan-api/internal/model"

type PartijParams struct {
	DossierId uint `params:"dossierId" validate:"required,gt=0"`
	PartijId  uint `params:"partijId" validate:"required,gt=0"`
}

// CreatePartijRequest links an existing persoon by id or creates one inline.
type CreatePartijRequest struct {
	RolId     uint            `json:"rolId" validate:"required,gt=0"`
	PersoonId *uint           `json:"persoonId" validate:"required_without=Persoon,omitempty,gt=0"`
	Persoon   *PersoonRequest `json:"persoon" validate:"required_without=PersoonId"`
}

type UpdatePartijRequest struct {
	RolId   *uint           `json:"rolId" validate:"omitempty,gt=0"`
	Persoon *PersoonRequest `json:"persoon"`
}

type PartijResponse struct {
	Id        uint            `json:"id"`
	DossierId uint            `json:"dossierId"`
	RolId     uint            `json:"rolId"`
	Rol       model.Rol       `json:"rol"`
	Persoon   PersoonResponse `json:"persoon"`
}
