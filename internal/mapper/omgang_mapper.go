package mapper

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"
)

type OmgangMapper struct {
	persoonMapper *PersoonMapper
}

func NewOmgangMapper() *OmgangMapper {
	return &OmgangMapper{
		persoonMapper: NewPersoonMapper(),
	}
}

func (m *OmgangMapper) OmgangToResponse(o *model.Omgang) dto.OmgangResponse {
	return dto.OmgangResponse{
		Id:                 o.Id,
		DossierId:          o.DossierId,
		DagId:              o.DagId,
		Dag:                o.Dag,
		DagdeelId:          o.DagdeelId,
		Dagdeel:            o.Dagdeel,
		WeekRegelingId:     o.WeekRegelingId,
		WeekRegeling:       o.WeekRegeling,
		VerzorgerId:        o.VerzorgerId,
		Verzorger:          m.persoonMapper.ToResponse(&o.Verzorger),
		WisselTijd:         o.WisselTijd,
		WeekRegelingAnders: o.WeekRegelingAnders,
	}
}

func (m *OmgangMapper) OmgangenToResponse(rows []*model.Omgang) []dto.OmgangResponse {
	res := make([]dto.OmgangResponse, 0, len(rows))
	for _, o := range rows {
		res = append(res, m.OmgangToResponse(o))
	}
	return res
}

func (m *OmgangMapper) ZorgToResponse(z *model.Zorg) dto.ZorgResponse {
	return dto.ZorgResponse{
		Id:              z.Id,
		DossierId:       z.DossierId,
		ZorgCategorieId: z.ZorgCategorieId,
		ZorgCategorie:   z.ZorgCategorie,
		ZorgSituatieId:  z.ZorgSituatieId,
		ZorgSituatie:    z.ZorgSituatie,
		Overeenkomst:    z.Overeenkomst,
		SituatieAnders:  z.SituatieAnders,
		AangemaaktDoor:  z.AangemaaktDoor,
		GewijzigdDoor:   z.GewijzigdDoor,
		AangemaaktOp:    z.CreatedAt,
		GewijzigdOp:     z.UpdatedAt,
	}
}

func (m *OmgangMapper) ZorgenToResponse(rows []*model.Zorg) []dto.ZorgResponse {
	res := make([]dto.ZorgResponse, 0, len(rows))
	for _, z := range rows {
		res = append(res, m.ZorgToResponse(z))
	}
	return res
}
