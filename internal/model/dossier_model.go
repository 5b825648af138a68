package model

import "time"

type Dossier struct {
	Id            uint      `gorm:"primaryKey"`
	DossierNummer string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	GebruikerId   uint      `gorm:"not null;index"`
	Status        bool      `gorm:"default:false"`
	IsAnoniem     bool      `gorm:"default:false"`
	TemplateType  string    `gorm:"type:varchar(50);default:'ouderschapsplan'"`
	CreatedAt     time.Time `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Dossier) TableName() string {
	return "dossiers"
}

// Persoon is both parent and child; the attached relations decide which.
type Persoon struct {
	Id             uint       `gorm:"primaryKey"`
	GebruikerId    *uint      `gorm:"index"`
	Voorletters    string     `gorm:"type:varchar(20)"`
	Voornamen      string     `gorm:"type:varchar(255)"`
	Roepnaam       string     `gorm:"type:varchar(100)"`
	Tussenvoegsel  string     `gorm:"type:varchar(50)"`
	Achternaam     string     `gorm:"type:varchar(255);not null"`
	Geslacht       string     `gorm:"type:varchar(20)"`
	Geboortedatum  *time.Time `gorm:"type:date"`
	Geboorteplaats string     `gorm:"type:varchar(100)"`
	Adres          string     `gorm:"type:varchar(255)"`
	Postcode       string     `gorm:"type:varchar(20)"`
	Plaats         string     `gorm:"type:varchar(100)"`
	Email          string     `gorm:"type:varchar(255)"`
	Telefoon       string     `gorm:"type:varchar(50)"`
	Nationaliteit  string     `gorm:"type:varchar(100)"`
	CreatedAt      time.Time  `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Persoon) TableName() string {
	return "personen"
}

type Partij struct {
	Id        uint    `gorm:"primaryKey"`
	DossierId uint    `gorm:"not null;uniqueIndex:idx_partij_dossier_persoon_rol"`
	PersoonId uint    `gorm:"not null;uniqueIndex:idx_partij_dossier_persoon_rol"`
	RolId     uint    `gorm:"not null;uniqueIndex:idx_partij_dossier_persoon_rol"`
	Persoon   Persoon `gorm:"foreignKey:PersoonId"`
	Rol       Rol     `gorm:"foreignKey:RolId"`
}

func (Partij) TableName() string {
	return "dossiers_partijen"
}

type DossierKind struct {
	Id        uint    `gorm:"primaryKey"`
	DossierId uint    `gorm:"not null;uniqueIndex:idx_dossier_kind"`
	KindId    uint    `gorm:"not null;uniqueIndex:idx_dossier_kind"`
	Kind      Persoon `gorm:"foreignKey:KindId"`
}

func (DossierKind) TableName() string {
	return "dossiers_kinderen"
}

type KindOuder struct {
	Id            uint        `gorm:"primaryKey"`
	KindId        uint        `gorm:"not null;uniqueIndex:idx_kind_ouder"`
	OuderId       uint        `gorm:"not null;uniqueIndex:idx_kind_ouder"`
	RelatieTypeId uint        `gorm:"not null"`
	Ouder         Persoon     `gorm:"foreignKey:OuderId"`
	RelatieType   RelatieType `gorm:"foreignKey:RelatieTypeId"`
}

func (KindOuder) TableName() string {
	return "kinderen_ouders"
}
