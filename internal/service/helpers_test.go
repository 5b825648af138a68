package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/apperror"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/internal/testutil"
	"ouderschapsplan-api/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) last() events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return nil
	}
	return p.events[len(p.events)-1]
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func newFactory(t *testing.T) (*gorm.DB, unitofwork.RepositoryFactory) {
	t.Helper()
	db := testutil.NewDB(t)
	return db, unitofwork.NewRepositoryFactory(db)
}

func seedDossier(t *testing.T, db *gorm.DB, id, ownerId uint) *model.Dossier {
	t.Helper()
	dossier := &model.Dossier{
		Id:            id,
		DossierNummer: fmt.Sprintf("DOS-20240101-%04d", id),
		GebruikerId:   ownerId,
		TemplateType:  "ouderschapsplan",
	}
	require.NoError(t, db.Create(dossier).Error)
	return dossier
}

func seedPersoon(t *testing.T, db *gorm.DB, achternaam string) *model.Persoon {
	t.Helper()
	persoon := &model.Persoon{Achternaam: achternaam}
	require.NoError(t, db.Create(persoon).Error)
	return persoon
}

func seedPartij(t *testing.T, db *gorm.DB, dossierId, persoonId, rolId uint) *model.Partij {
	t.Helper()
	partij := &model.Partij{DossierId: dossierId, PersoonId: persoonId, RolId: rolId}
	require.NoError(t, db.Omit(clause.Associations).Create(partij).Error)
	return partij
}

func seedKind(t *testing.T, db *gorm.DB, dossierId uint, achternaam string) (*model.Persoon, *model.DossierKind) {
	t.Helper()
	kind := seedPersoon(t, db, achternaam)
	link := &model.DossierKind{DossierId: dossierId, KindId: kind.Id}
	require.NoError(t, db.Omit(clause.Associations).Create(link).Error)
	return kind, link
}

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected an app error, got %v", err)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
