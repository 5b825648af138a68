package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByEmail matches case-insensitively.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(s.Email)))
}

type ByAuth0Id struct {
	Auth0Id string
}

func (s ByAuth0Id) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("auth0_id = ?", s.Auth0Id)
}

// WithoutAuth0Id matches users not yet linked to an external identity.
type WithoutAuth0Id struct{}

func (s WithoutAuth0Id) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("auth0_id IS NULL")
}

type UserOwnedBy struct {
	UserID uint
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("gebruiker_id = ?", s.UserID)
}
