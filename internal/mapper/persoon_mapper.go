package mapper

import (
	"strings"
	"time"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"
)

type PersoonMapper struct{}

func NewPersoonMapper() *PersoonMapper {
	return &PersoonMapper{}
}

func (m *PersoonMapper) ToResponse(p *model.Persoon) dto.PersoonResponse {
	if p == nil {
		return dto.PersoonResponse{}
	}
	res := dto.PersoonResponse{
		Id:             p.Id,
		Voorletters:    p.Voorletters,
		Voornamen:      p.Voornamen,
		Roepnaam:       p.Roepnaam,
		Tussenvoegsel:  p.Tussenvoegsel,
		Achternaam:     p.Achternaam,
		Geslacht:       p.Geslacht,
		Geboorteplaats: p.Geboorteplaats,
		Adres:          p.Adres,
		Postcode:       p.Postcode,
		Plaats:         p.Plaats,
		Email:          p.Email,
		Telefoon:       p.Telefoon,
		Nationaliteit:  p.Nationaliteit,
	}
	if p.Geboortedatum != nil {
		d := p.Geboortedatum.Format(dto.DateLayout)
		res.Geboortedatum = &d
	}
	return res
}

// ToModel builds a new persoon from the request. The date has been validated
// by the request schema, so a parse failure leaves the date empty.
func (m *PersoonMapper) ToModel(req *dto.PersoonRequest) *model.Persoon {
	p := &model.Persoon{}
	m.Apply(p, req)
	return p
}

// Apply copies the request fields onto an existing persoon.
func (m *PersoonMapper) Apply(p *model.Persoon, req *dto.PersoonRequest) {
	if req == nil {
		return
	}
	p.Voorletters = req.Voorletters
	p.Voornamen = req.Voornamen
	p.Roepnaam = req.Roepnaam
	p.Tussenvoegsel = req.Tussenvoegsel
	p.Achternaam = req.Achternaam
	p.Geslacht = req.Geslacht
	p.Geboorteplaats = req.Geboorteplaats
	p.Adres = req.Adres
	p.Postcode = req.Postcode
	p.Plaats = req.Plaats
	p.Email = strings.TrimSpace(req.Email)
	p.Telefoon = req.Telefoon
	p.Nationaliteit = req.Nationaliteit
	p.Geboortedatum = parseDate(req.Geboortedatum)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
