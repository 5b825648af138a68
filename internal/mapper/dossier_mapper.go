package mapper

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"
)

type DossierMapper struct {
	persoonMapper *PersoonMapper
}

func NewDossierMapper() *DossierMapper {
	return &DossierMapper{
		persoonMapper: NewPersoonMapper(),
	}
}

func (m *DossierMapper) ToResponse(d *model.Dossier) *dto.DossierResponse {
	if d == nil {
		return nil
	}
	return &dto.DossierResponse{
		Id:            d.Id,
		DossierNummer: d.DossierNummer,
		GebruikerId:   d.GebruikerId,
		Status:        d.Status,
		IsAnoniem:     d.IsAnoniem,
		TemplateType:  d.TemplateType,
		AangemaaktOp:  d.CreatedAt,
		GewijzigdOp:   d.UpdatedAt,
	}
}

func (m *DossierMapper) ToResponses(dossiers []*model.Dossier) []*dto.DossierResponse {
	res := make([]*dto.DossierResponse, 0, len(dossiers))
	for _, d := range dossiers {
		res = append(res, m.ToResponse(d))
	}
	return res
}

func (m *DossierMapper) PartijToResponse(p *model.Partij) dto.PartijResponse {
	return dto.PartijResponse{
		Id:        p.Id,
		DossierId: p.DossierId,
		RolId:     p.RolId,
		Rol:       p.Rol,
		Persoon:   m.persoonMapper.ToResponse(&p.Persoon),
	}
}

func (m *DossierMapper) PartijenToResponse(partijen []*model.Partij) []dto.PartijResponse {
	res := make([]dto.PartijResponse, 0, len(partijen))
	for _, p := range partijen {
		res = append(res, m.PartijToResponse(p))
	}
	return res
}

func (m *DossierMapper) OuderToResponse(r *model.KindOuder) dto.OuderRelatieResponse {
	return dto.OuderRelatieResponse{
		Id:            r.Id,
		KindId:        r.KindId,
		OuderId:       r.OuderId,
		RelatieTypeId: r.RelatieTypeId,
		RelatieType:   r.RelatieType,
		Ouder:         m.persoonMapper.ToResponse(&r.Ouder),
	}
}

// KinderenToResponse groups the ouder relations under their kind.
func (m *DossierMapper) KinderenToResponse(kinderen []*model.DossierKind, relaties []*model.KindOuder) []dto.KindResponse {
	byKind := make(map[uint][]dto.OuderRelatieResponse)
	for _, r := range relaties {
		byKind[r.KindId] = append(byKind[r.KindId], m.OuderToResponse(r))
	}

	res := make([]dto.KindResponse, 0, len(kinderen))
	for _, k := range kinderen {
		ouders := byKind[k.KindId]
		if ouders == nil {
			ouders = []dto.OuderRelatieResponse{}
		}
		res = append(res, dto.KindResponse{
			DossierKindId: k.Id,
			DossierId:     k.DossierId,
			Kind:          m.persoonMapper.ToResponse(&k.Kind),
			Ouders:        ouders,
		})
	}
	return res
}
