package model

import "time"

// Omgang is one visitation slot. A (dossier, dag, dagdeel, week regeling)
// combination holds at most one verzorger; the service checks this before writes.
type Omgang struct {
	Id                 uint         `gorm:"primaryKey"`
	DossierId          uint         `gorm:"not null;index:idx_omgang_slot"`
	DagId              uint         `gorm:"not null;index:idx_omgang_slot"`
	DagdeelId          uint         `gorm:"not null;index:idx_omgang_slot"`
	WeekRegelingId     uint         `gorm:"not null;index:idx_omgang_slot"`
	VerzorgerId        uint         `gorm:"not null"`
	WisselTijd         string       `gorm:"type:varchar(10)"`
	WeekRegelingAnders string       `gorm:"type:text"`
	Dag                Dag          `gorm:"foreignKey:DagId"`
	Dagdeel            Dagdeel      `gorm:"foreignKey:DagdeelId"`
	WeekRegeling       WeekRegeling `gorm:"foreignKey:WeekRegelingId"`
	Verzorger          Persoon      `gorm:"foreignKey:VerzorgerId"`
	CreatedAt          time.Time    `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt          time.Time    `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Omgang) TableName() string {
	return "omgang"
}

type Zorg struct {
	Id              uint   `gorm:"primaryKey"`
	DossierId       uint   `gorm:"not null;index"`
	ZorgCategorieId uint   `gorm:"not null;index"`
	ZorgSituatieId  uint   `gorm:"not null"`
	Overeenkomst    string `gorm:"type:text;not null"`
	SituatieAnders  string `gorm:"type:text"`
	AangemaaktDoor  uint   `gorm:"not null"`
	GewijzigdDoor   *uint
	ZorgCategorie   ZorgCategorie `gorm:"foreignKey:ZorgCategorieId"`
	ZorgSituatie    ZorgSituatie  `gorm:"foreignKey:ZorgSituatieId"`
	CreatedAt       time.Time     `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt       time.Time     `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Zorg) TableName() string {
	return "zorg"
}
