package mapper

import (
	"encoding/json"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"

	"gorm.io/datatypes"
)

type OuderschapsplanMapper struct{}

func NewOuderschapsplanMapper() *OuderschapsplanMapper {
	return &OuderschapsplanMapper{}
}

func (m *OuderschapsplanMapper) InfoToResponse(info *model.OuderschapsplanInfo) *dto.OuderschapsplanResponse {
	if info == nil {
		return nil
	}
	res := &dto.OuderschapsplanResponse{
		Id:                             info.Id,
		DossierId:                      info.DossierId,
		SoortRelatie:                   info.SoortRelatie,
		SoortRelatieVerbreking:         info.SoortRelatieVerbreking,
		BetrokkenheidKind:              info.BetrokkenheidKind,
		Kiesplan:                       info.Kiesplan,
		GezagPartij:                    info.GezagPartij,
		GezagTermijnWeken:              info.GezagTermijnWeken,
		WaOpNaamVanPartij:              info.WaOpNaamVanPartij,
		KeuzeDevices:                   info.KeuzeDevices,
		ZorgverzekeringOpNaamVanPartij: info.ZorgverzekeringOpNaamVanPartij,
		KinderbijslagPartij:            info.KinderbijslagPartij,
		Hoofdverblijf:                  info.Hoofdverblijf,
		Zorgverdeling:                  info.Zorgverdeling,
		OpvangKinderen:                 info.OpvangKinderen,
		ParentingCoordinator:           info.ParentingCoordinator,
		AangemaaktOp:                   info.CreatedAt,
		GewijzigdOp:                    info.UpdatedAt,
	}
	if len(info.BankrekeningKinderen) > 0 {
		res.BankrekeningKinderen = json.RawMessage(info.BankrekeningKinderen)
	}
	return res
}

// ApplyInfo writes the present request fields onto info.
func (m *OuderschapsplanMapper) ApplyInfo(info *model.OuderschapsplanInfo, req *dto.OuderschapsplanRequest) error {
	setString(&info.SoortRelatie, req.SoortRelatie)
	setString(&info.SoortRelatieVerbreking, req.SoortRelatieVerbreking)
	setString(&info.BetrokkenheidKind, req.BetrokkenheidKind)
	setString(&info.Kiesplan, req.Kiesplan)
	setString(&info.KeuzeDevices, req.KeuzeDevices)
	setString(&info.Hoofdverblijf, req.Hoofdverblijf)
	setString(&info.Zorgverdeling, req.Zorgverdeling)
	setString(&info.OpvangKinderen, req.OpvangKinderen)

	if req.GezagPartij != nil {
		info.GezagPartij = req.GezagPartij
	}
	if req.GezagTermijnWeken != nil {
		info.GezagTermijnWeken = req.GezagTermijnWeken
	}
	if req.WaOpNaamVanPartij != nil {
		info.WaOpNaamVanPartij = req.WaOpNaamVanPartij
	}
	if req.ZorgverzekeringOpNaamVanPartij != nil {
		info.ZorgverzekeringOpNaamVanPartij = req.ZorgverzekeringOpNaamVanPartij
	}
	if req.KinderbijslagPartij != nil {
		info.KinderbijslagPartij = req.KinderbijslagPartij
	}
	if req.ParentingCoordinator != nil {
		info.ParentingCoordinator = *req.ParentingCoordinator
	}
	if req.BankrekeningKinderen != nil {
		raw, err := json.Marshal(req.BankrekeningKinderen)
		if err != nil {
			return err
		}
		info.BankrekeningKinderen = datatypes.JSON(raw)
	}
	return nil
}

func (m *OuderschapsplanMapper) AlimentatieToResponse(a *model.Alimentatie) *dto.AlimentatieResponse {
	if a == nil {
		return nil
	}
	res := &dto.AlimentatieResponse{
		Id:                            a.Id,
		DossierId:                     a.DossierId,
		NettoBesteedbaarGezinsinkomen: a.NettoBesteedbaarGezinsinkomen,
		KostenKinderen:                a.KostenKinderen,
		BijdrageTemplateId:            a.BijdrageTemplateId,
		Notities:                      a.Notities,
		BijdragenKostenKinderen:       make([]dto.BijdrageResponse, 0, len(a.BijdragenKostenKinderen)),
		FinancieleAfspraken:           make([]dto.FinancieleAfspraakResponse, 0, len(a.FinancieleAfspraken)),
		AangemaaktOp:                  a.CreatedAt,
		GewijzigdOp:                   a.UpdatedAt,
	}
	for _, b := range a.BijdragenKostenKinderen {
		res.BijdragenKostenKinderen = append(res.BijdragenKostenKinderen, dto.BijdrageResponse{
			Id:           b.Id,
			PersoonId:    b.PersoonId,
			EigenAandeel: b.EigenAandeel,
		})
	}
	for _, f := range a.FinancieleAfspraken {
		res.FinancieleAfspraken = append(res.FinancieleAfspraken, dto.FinancieleAfspraakResponse{
			Id:                     f.Id,
			KindId:                 f.KindId,
			AlimentatieBedrag:      f.AlimentatieBedrag,
			Hoofdverblijf:          f.Hoofdverblijf,
			KinderbijslagOntvanger: f.KinderbijslagOntvanger,
			ZorgkortingPercentage:  f.ZorgkortingPercentage,
			AlimentatieGaatNaar:    f.AlimentatieGaatNaar,
		})
	}
	return res
}

func (m *OuderschapsplanMapper) ApplyAlimentatie(a *model.Alimentatie, req *dto.AlimentatieRequest) {
	if req.NettoBesteedbaarGezinsinkomen != nil {
		a.NettoBesteedbaarGezinsinkomen = req.NettoBesteedbaarGezinsinkomen
	}
	if req.KostenKinderen != nil {
		a.KostenKinderen = req.KostenKinderen
	}
	if req.BijdrageTemplateId != nil {
		a.BijdrageTemplateId = req.BijdrageTemplateId
	}
	setString(&a.Notities, req.Notities)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
