package dto

import "time"

type CreateDossierRequest struct {
	IsAnoniem    bool   `json:"isAnoniem"`
	TemplateType string `json:"templateType" validate:"omitempty,max=50"`
}

type UpdateDossierRequest struct {
	Status       *bool   `json:"status"`
	IsAnoniem    *bool   `json:"isAnoniem"`
	TemplateType *string `json:"templateType" validate:"omitempty,min=1,max=50"`
}

type DossierResponse struct {
	Id            uint      `json:"id"`
	DossierNummer string    `json:"dossierNummer"`
	GebruikerId   uint      `json:"gebruikerId"`
	Status        bool      `json:"status"`
	IsAnoniem     bool      `json:"isAnoniem"`
	TemplateType  string    `json:"templateType"`
	AangemaaktOp  time.Time `json:"aangemaaktOp"`
	GewijzigdOp   time.Time `json:"gewijzigdOp"`
}

type DossierDetailResponse struct {
	DossierResponse
	Partijen []PartijResponse `json:"partijen"`
	Kinderen []KindResponse   `json:"kinderen"`
}
