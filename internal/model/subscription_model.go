package model

import (
	"time"

	"gorm.io/datatypes"
)

type AbonnementStatus string
type BetalingStatus string

const (
	AbonnementStatusPending AbonnementStatus = "pending"
	// Activating marks a row claimed by the webhook that creates its subscription.
	AbonnementStatusActivating AbonnementStatus = "activating"
	AbonnementStatusActive     AbonnementStatus = "active"
	AbonnementStatusCancelled  AbonnementStatus = "cancelled"
	AbonnementStatusFailed     AbonnementStatus = "failed"

	BetalingStatusOpen     BetalingStatus = "open"
	BetalingStatusPending  BetalingStatus = "pending"
	BetalingStatusPaid     BetalingStatus = "paid"
	BetalingStatusFailed   BetalingStatus = "failed"
	BetalingStatusCanceled BetalingStatus = "canceled"
	BetalingStatusExpired  BetalingStatus = "expired"
)

type Abonnement struct {
	Id                   uint             `gorm:"primaryKey"`
	GebruikerId          uint             `gorm:"not null;index"`
	MollieCustomerId     string           `gorm:"type:varchar(64);not null"`
	MollieSubscriptionId *string          `gorm:"type:varchar(64);index"`
	MollieMandateId      *string          `gorm:"type:varchar(64)"`
	Status               AbonnementStatus `gorm:"type:varchar(20);not null"`
	Bedrag               string           `gorm:"type:varchar(20);not null"`
	Valuta               string           `gorm:"type:varchar(3);not null"`
	Interval             string           `gorm:"type:varchar(50);not null"`
	StartDatum           *time.Time
	GeannuleerdOp        *time.Time
	CreatedAt            time.Time `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Abonnement) TableName() string {
	return "abonnementen"
}

type Betaling struct {
	Id              uint           `gorm:"primaryKey"`
	AbonnementId    *uint          `gorm:"index"`
	GebruikerId     uint           `gorm:"not null;index"`
	MolliePaymentId string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	Bedrag          string         `gorm:"type:varchar(20);not null"`
	Valuta          string         `gorm:"type:varchar(3);not null"`
	Status          BetalingStatus `gorm:"type:varchar(20);not null"`
	SequenceType    string         `gorm:"type:varchar(20)"`
	BetaaldOp       *time.Time
	Payload         datatypes.JSON `gorm:"type:json"`
	CreatedAt       time.Time      `gorm:"column:aangemaakt_op;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:gewijzigd_op;autoUpdateTime"`
}

func (Betaling) TableName() string {
	return "betalingen"
}
