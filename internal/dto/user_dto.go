package dto

import "time"

type UserProfileResponse struct {
	Id              uint       `json:"id"`
	Email           string     `json:"email"`
	Naam            string     `json:"naam"`
	HeeftAbonnement bool       `json:"heeftAbonnement"`
	Bedrijfsnaam    string     `json:"bedrijfsnaam,omitempty"`
	Telefoon        string     `json:"telefoon,omitempty"`
	Adres           string     `json:"adres,omitempty"`
	Postcode        string     `json:"postcode,omitempty"`
	Plaats          string     `json:"plaats,omitempty"`
	Land            string     `json:"land,omitempty"`
	LaatsteLogin    *time.Time `json:"laatsteLogin,omitempty"`
	AangemaaktOp    time.Time  `json:"aangemaaktOp"`
}

// UpdateProfileRequest changes only the fields that are present.
type UpdateProfileRequest struct {
	Naam         *string `json:"naam" validate:"omitempty,max=255"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Bedrijfsnaam *string `json:"bedrijfsnaam" validate:"omitempty,max=255"`
	Telefoon     *string `json:"telefoon" validate:"omitempty,max=50"`
	Adres        *string `json:"adres" validate:"omitempty,max=255"`
	Postcode     *string `json:"postcode" validate:"omitempty,max=20"`
	Plaats       *string `json:"plaats" validate:"omitempty,max=100"`
	Land         *string `json:"land" validate:"omitempty,max=100"`
}
