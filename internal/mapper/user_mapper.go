package mapper

import (
	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToProfile(u *model.Gebruiker) *dto.UserProfileResponse {
	if u == nil {
		return nil
	}
	return &dto.UserProfileResponse{
		Id:              u.Id,
		Email:           u.Email,
		Naam:            u.Naam,
		HeeftAbonnement: u.HeeftAbonnement,
		Bedrijfsnaam:    u.Bedrijfsnaam,
		Telefoon:        u.Telefoon,
		Adres:           u.Adres,
		Postcode:        u.Postcode,
		Plaats:          u.Plaats,
		Land:            u.Land,
		LaatsteLogin:    u.LaatsteLogin,
		AangemaaktOp:    u.CreatedAt,
	}
}

func (m *UserMapper) ApplyProfile(u *model.Gebruiker, req *dto.UpdateProfileRequest) {
	setString(&u.Naam, req.Naam)
	setString(&u.Email, req.Email)
	setString(&u.Bedrijfsnaam, req.Bedrijfsnaam)
	setString(&u.Telefoon, req.Telefoon)
	setString(&u.Adres, req.Adres)
	setString(&u.Postcode, req.Postcode)
	setString(&u.Plaats, req.Plaats)
	setString(&u.Land, req.Land)
}
