package model

import "time"

type Gebruiker struct {
	Id               uint    `gorm:"primaryKey"`
	Auth0Id          *string `gorm:"column:auth0_id;type:varchar(255);uniqueIndex"`
	Email            string  `gorm:"type:varchar(255);index"`
	Naam             string  `gorm:"type:varchar(255)"`
	HeeftAbonnement  bool    `gorm:"default:false"`
	MollieCustomerId *string `gorm:"type:varchar(64)"`
	Bedrijfsnaam     string  `gorm:"type:varchar(255)"`
	Telefoon         string  `gorm:"type:varchar(50)"`
	Adres            string  `gorm:"type:varchar(255)"`
	Postcode         string  `gorm:"type:varchar(20)"`
	Plaats           string  `gorm:"type:varchar(100)"`
	Land             string  `gorm:"type:varchar(100)"`
	LaatsteLogin     *time.Time
	CreatedAt        time.Time `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Gebruiker) TableName() string {
	return "gebruikers"
}
