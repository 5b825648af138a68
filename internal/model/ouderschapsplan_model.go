package model

import (
	"time"

	"gorm.io/datatypes"
)

// OuderschapsplanInfo holds the plan level choices; one row per dossier.
// Fields referring to a partij store 1 or 2, matching the party order.
type OuderschapsplanInfo struct {
	Id                             uint   `gorm:"primaryKey"`
	DossierId                      uint   `gorm:"not null;uniqueIndex"`
	SoortRelatie                   string `gorm:"type:varchar(50)"`
	SoortRelatieVerbreking         string `gorm:"type:varchar(50)"`
	BetrokkenheidKind              string `gorm:"type:text"`
	Kiesplan                       string `gorm:"type:varchar(50)"`
	GezagPartij                    *int
	GezagTermijnWeken              *int
	WaOpNaamVanPartij              *int
	KeuzeDevices                   string `gorm:"type:text"`
	ZorgverzekeringOpNaamVanPartij *int
	KinderbijslagPartij            *int
	Hoofdverblijf                  string         `gorm:"type:varchar(255)"`
	Zorgverdeling                  string         `gorm:"type:text"`
	OpvangKinderen                 string         `gorm:"type:text"`
	BankrekeningKinderen           datatypes.JSON `gorm:"type:json"`
	ParentingCoordinator           bool           `gorm:"default:false"`
	CreatedAt                      time.Time      `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt                      time.Time      `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (OuderschapsplanInfo) TableName() string {
	return "ouderschapsplan_info"
}

type Alimentatie struct {
	Id                            uint     `gorm:"primaryKey"`
	DossierId                     uint     `gorm:"not null;uniqueIndex"`
	NettoBesteedbaarGezinsinkomen *float64 `gorm:"type:decimal(12,2)"`
	KostenKinderen                *float64 `gorm:"type:decimal(12,2)"`
	BijdrageTemplateId            *uint
	Notities                      string                        `gorm:"type:text"`
	BijdragenKostenKinderen       []BijdrageKostenKinderen      `gorm:"foreignKey:AlimentatieId"`
	FinancieleAfspraken           []FinancieleAfsprakenKinderen `gorm:"foreignKey:AlimentatieId"`
	CreatedAt                     time.Time                     `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt                     time.Time                     `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Alimentatie) TableName() string {
	return "alimentaties"
}

// BijdrageKostenKinderen is the share of a partij in the children's costs.
type BijdrageKostenKinderen struct {
	Id            uint     `gorm:"primaryKey"`
	AlimentatieId uint     `gorm:"not null;index"`
	PersoonId     uint     `gorm:"not null"`
	EigenAandeel  *float64 `gorm:"type:decimal(12,2)"`
}

func (BijdrageKostenKinderen) TableName() string {
	return "bijdragen_kosten_kinderen"
}

type FinancieleAfsprakenKinderen struct {
	Id                     uint     `gorm:"primaryKey"`
	AlimentatieId          uint     `gorm:"not null;index"`
	KindId                 uint     `gorm:"not null"`
	AlimentatieBedrag      *float64 `gorm:"type:decimal(12,2)"`
	Hoofdverblijf          string   `gorm:"type:varchar(255)"`
	KinderbijslagOntvanger string   `gorm:"type:varchar(255)"`
	ZorgkortingPercentage  *float64 `gorm:"type:decimal(5,2)"`
	AlimentatieGaatNaar    string   `gorm:"type:varchar(255)"`
}

func (FinancieleAfsprakenKinderen) TableName() string {
	return "financiele_afspraken_kinderen"
}
