package dto

// PersoonRequest carries the person fields for inline creation or update.
type PersoonRequest struct {
	Voorletters    string `json:"voorletters" validate:"max=20"`
	Voornamen      string `json:"voornamen" validate:"max=255"`
	Roepnaam       string `json:"roepnaam" validate:"max=100"`
	Tussenvoegsel  string `json:"tussenvoegsel" validate:"max=50"`
	Achternaam     string `json:"achternaam" validate:"required,max=255"`
	Geslacht       string `json:"geslacht" validate:"max=20"`
	Geboortedatum  string `json:"geboortedatum" validate:"omitempty,datetime=2006-01-02"`
	Geboorteplaats string `json:"geboorteplaats" validate:"max=100"`
	Adres          string `json:"adres" validate:"max=255"`
	Postcode       string `json:"postcode" validate:"max=20"`
	Plaats         string `json:"plaats" validate:"max=100"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
	Telefoon       string `json:"telefoon" validate:"max=50"`
	Nationaliteit  string `json:"nationaliteit" validate:"max=100"`
}

type PersoonResponse struct {
	Id             uint    `json:"id"`
	Voorletters    string  `json:"voorletters,omitempty"`
	Voornamen      string  `json:"voornamen,omitempty"`
	Roepnaam       string  `json:"roepnaam,omitempty"`
	Tussenvoegsel  string  `json:"tussenvoegsel,omitempty"`
	Achternaam     string  `json:"achternaam"`
	Geslacht       string  `json:"geslacht,omitempty"`
	Geboortedatum  *string `json:"geboortedatum,omitempty"`
	Geboorteplaats string  `json:"geboorteplaats,omitempty"`
	Adres          string  `json:"adres,omitempty"`
	Postcode       string  `json:"postcode,omitempty"`
	Plaats         string  `json:"plaats,omitempty"`
	Email          string  `json:"email,omitempty"`
	Telefoon       string  `json:"telefoon,omitempty"`
	Nationaliteit  string  `json:"nationaliteit,omitempty"`
}
