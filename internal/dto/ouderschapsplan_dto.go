package dto

import (
	"encoding/json"
	"time"
)

type Bankrekening struct {
	Iban           string   `json:"iban" validate:"required,max=34"`
	Tenaamstelling string   `json:"tenaamstelling" validate:"max=255"`
	Kinderen       []string `json:"kinderen"`
}

// OuderschapsplanRequest writes the fields that are present. Partij fields
// hold 1 or 2.
type OuderschapsplanRequest struct {
	SoortRelatie                   *string        `json:"soortRelatie" validate:"omitempty,max=50"`
	SoortRelatieVerbreking         *string        `json:"soortRelatieVerbreking" validate:"omitempty,max=50"`
	BetrokkenheidKind              *string        `json:"betrokkenheidKind"`
	Kiesplan                       *string        `json:"kiesplan" validate:"omitempty,max=50"`
	GezagPartij                    *int           `json:"gezagPartij" validate:"omitempty,oneof=1 2"`
	GezagTermijnWeken              *int           `json:"gezagTermijnWeken" validate:"omitempty,gte=0,lte=520"`
	WaOpNaamVanPartij              *int           `json:"waOpNaamVanPartij" validate:"omitempty,oneof=1 2"`
	KeuzeDevices                   *string        `json:"keuzeDevices"`
	ZorgverzekeringOpNaamVanPartij *int           `json:"zorgverzekeringOpNaamVanPartij" validate:"omitempty,oneof=1 2"`
	KinderbijslagPartij            *int           `json:"kinderbijslagPartij" validate:"omitempty,oneof=1 2"`
	Hoofdverblijf                  *string        `json:"hoofdverblijf" validate:"omitempty,max=255"`
	Zorgverdeling                  *string        `json:"zorgverdeling"`
	OpvangKinderen                 *string        `json:"opvangKinderen"`
	BankrekeningKinderen           []Bankrekening `json:"bankrekeningKinderen" validate:"omitempty,dive"`
	ParentingCoordinator           *bool          `json:"parentingCoordinator"`
}

type OuderschapsplanResponse struct {
	Id                             uint            `json:"id"`
	DossierId                      uint            `json:"dossierId"`
	SoortRelatie                   string          `json:"soortRelatie,omitempty"`
	SoortRelatieVerbreking         string          `json:"soortRelatieVerbreking,omitempty"`
	BetrokkenheidKind              string          `json:"betrokkenheidKind,omitempty"`
	Kiesplan                       string          `json:"kiesplan,omitempty"`
	GezagPartij                    *int            `json:"gezagPartij,omitempty"`
	GezagTermijnWeken              *int            `json:"gezagTermijnWeken,omitempty"`
	WaOpNaamVanPartij              *int            `json:"waOpNaamVanPartij,omitempty"`
	KeuzeDevices                   string          `json:"keuzeDevices,omitempty"`
	ZorgverzekeringOpNaamVanPartij *int            `json:"zorgverzekeringOpNaamVanPartij,omitempty"`
	KinderbijslagPartij            *int            `json:"kinderbijslagPartij,omitempty"`
	Hoofdverblijf                  string          `json:"hoofdverblijf,omitempty"`
	Zorgverdeling                  string          `json:"zorgverdeling,omitempty"`
	OpvangKinderen                 string          `json:"opvangKinderen,omitempty"`
	BankrekeningKinderen           json.RawMessage `json:"bankrekeningKinderen,omitempty"`
	ParentingCoordinator           bool            `json:"parentingCoordinator"`
	AangemaaktOp                   time.Time       `json:"aangemaaktOp"`
	GewijzigdOp                    time.Time       `json:"gewijzigdOp"`
}
