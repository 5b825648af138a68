package dto

import "time"

type AlimentatieRequest struct {
	NettoBesteedbaarGezinsinkomen *float64 `json:"nettoBesteedbaarGezinsinkomen" validate:"omitempty,gte=0"`
	KostenKinderen                *float64 `json:"kostenKinderen" validate:"omitempty,gte=0"`
	BijdrageTemplateId            *uint    `json:"bijdrageTemplateId" validate:"omitempty,gt=0"`
	Notities                      *string  `json:"notities"`
}

type BijdrageInput struct {
	PersoonId    uint     `json:"persoonId" validate:"required,gt=0"`
	EigenAandeel *float64 `json:"eigenAandeel" validate:"omitempty,gte=0"`
}

type BijdragenRequest struct {
	Bijdragen []BijdrageInput `json:"bijdragen" validate:"dive"`
}

type FinancieleAfspraakInput struct {
	KindId                 uint     `json:"kindId" validate:"required,gt=0"`
	AlimentatieBedrag      *float64 `json:"alimentatieBedrag" validate:"omitempty,gte=0"`
	Hoofdverblijf          string   `json:"hoofdverblijf" validate:"max=255"`
	KinderbijslagOntvanger string   `json:"kinderbijslagOntvanger" validate:"max=255"`
	ZorgkortingPercentage  *float64 `json:"zorgkortingPercentage" validate:"omitempty,gte=0,lte=100"`
	AlimentatieGaatNaar    string   `json:"alimentatieGaatNaar" validate:"max=255"`
}

type FinancieleAfsprakenRequest struct {
	Afspraken []FinancieleAfspraakInput `json:"afspraken" validate:"dive"`
}

type BijdrageResponse struct {
	Id           uint     `json:"id"`
	PersoonId    uint     `json:"persoonId"`
	EigenAandeel *float64 `json:"eigenAandeel,omitempty"`
}

type FinancieleAfspraakResponse struct {
	Id                     uint     `json:"id"`
	KindId                 uint     `json:"kindId"`
	AlimentatieBedrag      *float64 `json:"alimentatieBedrag,omitempty"`
	Hoofdverblijf          string   `json:"hoofdverblijf,omitempty"`
	KinderbijslagOntvanger string   `json:"kinderbijslagOntvanger,omitempty"`
	ZorgkortingPercentage  *float64 `json:"zorgkortingPercentage,omitempty"`
	AlimentatieGaatNaar    string   `json:"alimentatieGaatNaar,omitempty"`
}

type AlimentatieResponse struct {
	Id                            uint                         `json:"id"`
	DossierId                     uint                         `json:"dossierId"`
	NettoBesteedbaarGezinsinkomen *float64                     `json:"nettoBesteedbaarGezinsinkomen,omitempty"`
	KostenKinderen                *float64                     `json:"kostenKinderen,omitempty"`
	BijdrageTemplateId            *uint                        `json:"bijdrageTemplateId,omitempty"`
	Notities                      string                       `json:"notities,omitempty"`
	BijdragenKostenKinderen       []BijdrageResponse           `json:"bijdragenKostenKinderen"`
	FinancieleAfspraken           []FinancieleAfspraakResponse `json:"financieleAfspraken"`
	AangemaaktOp                  time.Time                    `json:"aangemaaktOp"`
	GewijzigdOp                   time.Time                    `json:"gewijzigdOp"`
}
