package mapper

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"
)

type BillingMapper struct{}

func NewBillingMapper() *BillingMapper {
	return &BillingMapper{}
}

func (m *BillingMapper) AbonnementToResponse(a *model.Abonnement) *dto.AbonnementResponse {
	if a == nil {
		return nil
	}
	return &dto.AbonnementResponse{
		Id:            a.Id,
		Status:        string(a.Status),
		Bedrag:        a.Bedrag,
		Valuta:        a.Valuta,
		Interval:      a.Interval,
		StartDatum:    a.StartDatum,
		GeannuleerdOp: a.GeannuleerdOp,
		AangemaaktOp:  a.CreatedAt,
	}
}
