package model

import "time"

type Rol struct {
	Id   uint   `gorm:"primaryKey" json:"id"`
	Naam string `gorm:"type:varchar(100);not null" json:"naam"`
}

func (Rol) TableName() string {
	return "rollen"
}

type Dag struct {
	Id   uint   `gorm:"primaryKey" json:"id"`
	Naam string `gorm:"type:varchar(20);not null" json:"naam"`
	Code string `gorm:"type:varchar(5)" json:"code"`
}

func (Dag) TableName() string {
	return "dagen"
}

type Dagdeel struct {
	Id   uint   `gorm:"primaryKey" json:"id"`
	Naam string `gorm:"type:varchar(50);not null" json:"naam"`
}

func (Dagdeel) TableName() string {
	return "dagdelen"
}

type WeekRegeling struct {
	Id           uint   `gorm:"primaryKey" json:"id"`
	Omschrijving string `gorm:"type:varchar(255);not null" json:"omschrijving"`
}

func (WeekRegeling) TableName() string {
	return "week_regelingen"
}

type ZorgCategorie struct {
	Id   uint   `gorm:"primaryKey" json:"id"`
	Naam string `gorm:"type:varchar(100);not null" json:"naam"`
}

func (ZorgCategorie) TableName() string {
	return "zorg_categorieen"
}

type ZorgSituatie struct {
	Id              uint   `gorm:"primaryKey" json:"id"`
	Naam            string `gorm:"type:varchar(255);not null" json:"naam"`
	ZorgCategorieId *uint  `gorm:"index" json:"zorgCategorieId,omitempty"`
}

func (ZorgSituatie) TableName() string {
	return "zorg_situaties"
}

type RelatieType struct {
	Id   uint   `gorm:"primaryKey" json:"id"`
	Naam string `gorm:"type:varchar(100);not null" json:"naam"`
}

func (RelatieType) TableName() string {
	return "relatie_types"
}

type Schoolvakantie struct {
	Id         uint       `gorm:"primaryKey" json:"id"`
	Naam       string     `gorm:"type:varchar(100);not null" json:"naam"`
	Regio      string     `gorm:"type:varchar(50)" json:"regio,omitempty"`
	StartDatum *time.Time `gorm:"type:date" json:"startDatum,omitempty"`
	EindDatum  *time.Time `gorm:"type:date" json:"eindDatum,omitempty"`
}

func (Schoolvakantie) TableName() string {
	return "schoolvakanties"
}

// RegelingTemplate is a prewritten clause; Type groups templates by screen
// (feestdag, vakantie, algemeen) and Meervoud marks the plural wording.
type RegelingTemplate struct {
	Id            uint   `gorm:"primaryKey" json:"id"`
	TemplateNaam  string `gorm:"type:varchar(100);not null" json:"templateNaam"`
	TemplateTekst string `gorm:"type:text;not null" json:"templateTekst"`
	Type          string `gorm:"type:varchar(50);index" json:"type"`
	Meervoud      bool   `gorm:"default:false" json:"meervoudKinderen"`
	CardTekst     string `gorm:"type:text" json:"cardTekst,omitempty"`
	SortOrder     int    `gorm:"default:0" json:"sortOrder"`
}

func (RegelingTemplate) TableName() string {
	return "regelingen_templates"
}
