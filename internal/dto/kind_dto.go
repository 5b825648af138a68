package dto

import "ouderschapsplan-api/internal/model"

type DossierKindParams struct {
	DossierId     uint `params:"dossierId" validate:"required,gt=0"`
	DossierKindId uint `params:"dossierKindId" validate:"required,gt=0"`
}

type KindParams struct {
	DossierId uint `params:"dossierId" validate:"required,gt=0"`
	KindId    uint `params:"kindId" validate:"required,gt=0"`
}

type KindOuderParams struct {
	DossierId uint `params:"dossierId" validate:"required,gt=0"`
	KindId    uint `params:"kindId" validate:"required,gt=0"`
	OuderId   uint `params:"ouderId" validate:"required,gt=0"`
}

type CreateKindRequest struct {
	KindId *uint           `json:"kindId" validate:"required_without=Kind,omitempty,gt=0"`
	Kind   *PersoonRequest `json:"kind" validate:"required_without=KindId"`
}

type UpdateKindRequest struct {
	Kind PersoonRequest `json:"kind"`
}

// OuderInput references an existing persoon by id or describes a new one.
type OuderInput struct {
	Id            *uint  `json:"id" validate:"omitempty,gt=0"`
	Voornamen     string `json:"voornamen" validate:"max=255"`
	Roepnaam      string `json:"roepnaam" validate:"max=100"`
	Tussenvoegsel string `json:"tussenvoegsel" validate:"max=50"`
	Achternaam    string `json:"achternaam" validate:"required_without=Id,max=255"`
	Geslacht      string `json:"geslacht" validate:"max=20"`
	Geboortedatum string `json:"geboortedatum" validate:"omitempty,datetime=2006-01-02"`
	Email         string `json:"email" validate:"omitempty,email,max=255"`
	Telefoon      string `json:"telefoon" validate:"max=50"`
}

func (o OuderInput) Persoon() PersoonRequest {
	return PersoonRequest{
		Voornamen:     o.Voornamen,
		Roepnaam:      o.Roepnaam,
		Tussenvoegsel: o.Tussenvoegsel,
		Achternaam:    o.Achternaam,
		Geslacht:      o.Geslacht,
		Geboortedatum: o.Geboortedatum,
		Email:         o.Email,
		Telefoon:      o.Telefoon,
	}
}

type AddOuderRequest struct {
	RelatieTypeId uint        `json:"relatieTypeId" validate:"required,gt=0"`
	OuderId       *uint       `json:"ouderId" validate:"required_without=Ouder,omitempty,gt=0"`
	Ouder         *OuderInput `json:"ouder" validate:"required_without=OuderId"`
}

type OuderRelatieResponse struct {
	Id            uint              `json:"id"`
	KindId        uint              `json:"kindId"`
	OuderId       uint              `json:"ouderId"`
	RelatieTypeId uint              `json:"relatieTypeId"`
	RelatieType   model.RelatieType `json:"relatieType"`
	Ouder         PersoonResponse   `json:"ouder"`
}

type KindResponse struct {
	DossierKindId uint                   `json:"dossierKindId"`
	DossierId     uint                   `json:"dossierId"`
	Kind          PersoonResponse        `json:"kind"`
	Ouders        []OuderRelatieResponse `json:"ouders"`
}
