package service

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func TestAccessServiceRequireDossierAccess(t *testing.T) {
	db, factory := newFactory(t)
	ctx := context.Background()
	seedDossier(t, db, 7, 42)
	access := NewAccessService(factory)

	dossier, err := access.RequireDossierAccess(ctx, 7, 42)
	require.NoError(t, err)
	assert.Equal(t, uint(7), dossier.Id)

	_, err = access.RequireDossierAccess(ctx, 7, 99)
	assertAppError(t, err, http.StatusForbidden, "Access denied")

	_, err = access.RequireDossierAccess(ctx, 8, 42)
	assertAppError(t, err, http.StatusNotFound, "Dossier not found")

	_, err = access.RequireDossierOwner(ctx, 7, 99)
	assertAppError(t, err, http.StatusForbidden, "Only the owner can perform this action")

	ok, err := access.CheckAccess(ctx, 7, 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func newDossierService(t *testing.T) (*dossierService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db, factory := newFactory(t)
	publisher := &recordingPublisher{}
	svc := NewDossierService(factory, NewAccessService(factory), publisher, logger.NewNopLogger()).(*dossierService)
	return svc, db, publisher
}

func TestDossierServiceCreate(t *testing.T) {
	svc, _, _ := newDossierService(t)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	res, err := svc.Create(ctx, 42, &dto.CreateDossierRequest{})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^DOS-20240309-\d{4}$`), res.DossierNummer)
	assert.Equal(t, uint(42), res.GebruikerId)
	assert.Equal(t, "ouderschapsplan", res.TemplateType)
	assert.False(t, res.Status)

	anon, err := svc.Create(ctx, 42, &dto.CreateDossierRequest{IsAnoniem: true, TemplateType: "convenant"})
	require.NoError(t, err)
	assert.True(t, anon.IsAnoniem)
	assert.Equal(t, "convenant", anon.TemplateType)

	list, err := svc.List(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	others, err := svc.List(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestDossierServiceUpdate(t *testing.T) {
	svc, _, _ := newDossierService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 42, &dto.CreateDossierRequest{})
	require.NoError(t, err)

	status := true
	res, err := svc.Update(ctx, 42, created.Id, &dto.UpdateDossierRequest{Status: &status})
	require.NoError(t, err)
	assert.True(t, res.Status)
	assert.Equal(t, created.DossierNummer, res.DossierNummer)

	_, err = svc.Update(ctx, 99, created.Id, &dto.UpdateDossierRequest{Status: &status})
	assertAppError(t, err, http.StatusForbidden, "")
}

func TestDossierServiceShow(t *testing.T) {
	svc, db, _ := newDossierService(t)
	ctx := context.Background()

	seedDossier(t, db, 7, 42)
	moeder := seedPersoon(t, db, "Jansen")
	seedPartij(t, db, 7, moeder.Id, 1)
	kind, _ := seedKind(t, db, 7, "Jansen")
	require.NoError(t, db.Omit(clause.Associations).Create(&model.KindOuder{KindId: kind.Id, OuderId: moeder.Id, RelatieTypeId: 1}).Error)

	res, err := svc.Show(ctx, 42, 7)
	require.NoError(t, err)
	require.Len(t, res.Partijen, 1)
	assert.Equal(t, "Moeder", res.Partijen[0].Rol.Naam)
	require.Len(t, res.Kinderen, 1)
	require.Len(t, res.Kinderen[0].Ouders, 1)
	assert.Equal(t, moeder.Id, res.Kinderen[0].Ouders[0].OuderId)

	_, err = svc.Show(ctx, 99, 7)
	assertAppError(t, err, http.StatusForbidden, "")
}

func TestDossierServiceDeleteCascade(t *testing.T) {
	svc, db, publisher := newDossierService(t)
	ctx := context.Background()

	seedDossier(t, db, 7, 42)
	seedDossier(t, db, 8, 42)
	ouder := seedPersoon(t, db, "Jansen")
	seedPartij(t, db, 7, ouder.Id, 1)
	seedPartij(t, db, 8, ouder.Id, 1)
	kind, _ := seedKind(t, db, 7, "Jansen")
	require.NoError(t, db.Omit(clause.Associations).Create(&model.Omgang{DossierId: 7, DagId: 1, DagdeelId: 1, WeekRegelingId: 1, VerzorgerId: ouder.Id}).Error)
	require.NoError(t, db.Omit(clause.Associations).Create(&model.Zorg{DossierId: 7, ZorgCategorieId: 1, ZorgSituatieId: 1, Overeenkomst: "om en om", AangemaaktDoor: 42}).Error)
	require.NoError(t, db.Create(&model.OuderschapsplanInfo{DossierId: 7}).Error)
	alimentatie := &model.Alimentatie{DossierId: 7}
	require.NoError(t, db.Omit(clause.Associations).Create(alimentatie).Error)
	require.NoError(t, db.Create(&model.BijdrageKostenKinderen{AlimentatieId: alimentatie.Id, PersoonId: ouder.Id}).Error)
	require.NoError(t, db.Create(&model.FinancieleAfsprakenKinderen{AlimentatieId: alimentatie.Id, KindId: kind.Id}).Error)

	err := svc.Delete(ctx, 99, 7)
	assertAppError(t, err, http.StatusForbidden, "Only the owner can perform this action")
	assert.Equal(t, 0, publisher.count())

	require.NoError(t, svc.Delete(ctx, 42, 7))

	count := func(m interface{}, where string, args ...interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(m).Where(where, args...).Count(&n).Error)
		return n
	}
	assert.Zero(t, count(&model.Dossier{}, "id = ?", 7))
	assert.Zero(t, count(&model.Partij{}, "dossier_id = ?", 7))
	assert.Zero(t, count(&model.DossierKind{}, "dossier_id = ?", 7))
	assert.Zero(t, count(&model.Omgang{}, "dossier_id = ?", 7))
	assert.Zero(t, count(&model.Zorg{}, "dossier_id = ?", 7))
	assert.Zero(t, count(&model.OuderschapsplanInfo{}, "dossier_id = ?", 7))
	assert.Zero(t, count(&model.Alimentatie{}, "dossier_id = ?", 7))
	assert.Zero(t, count(&model.BijdrageKostenKinderen{}, "alimentatie_id = ?", alimentatie.Id))
	assert.Zero(t, count(&model.FinancieleAfsprakenKinderen{}, "alimentatie_id = ?", alimentatie.Id))

	assert.Equal(t, int64(1), count(&model.Dossier{}, "id = ?", 8), "other dossiers are untouched")
	assert.Equal(t, int64(1), count(&model.Partij{}, "dossier_id = ?", 8))
	assert.Equal(t, int64(1), count(&model.Persoon{}, "id = ?", ouder.Id), "personen are shared and survive")

	event := publisher.last()
	require.NotNil(t, event)
	assert.Equal(t, events.DossierDeleted, event.EventType())
	assert.Equal(t, uint(7), events.Uint(event.Payload(), "dossierId"))

	err = svc.Delete(ctx, 42, 7)
	assertAppError(t, err, http.StatusNotFound, "Dossier not found")
}
