// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private sqlite database with every table migrated and the
// lookup tables seeded. The pool holds one connection so the in-memory
// database lives as long as the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=off", name)

	db, err := gorm.Open(sqlite.Open(dsn), database.Config(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	require.NoError(t, database.SeedLookups(db))
	return db
}

// SeedUser inserts a user with the given id.
func SeedUser(t *testing.T, db *gorm.DB, id uint, email string) *model.Gebruiker {
	t.Helper()
	user := &model.Gebruiker{Id: id, Email: email, Naam: email}
	require.NoError(t, db.Create(user).Error)
	return user
}
