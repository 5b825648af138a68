package service

import (
	"context"
	"net/http"
	"testing"

	"ouderschapsplan-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOmgangServiceSlotOverlap(t *testing.T) {
	db, factory := newFactory(t)
	ctx := context.Background()
	svc := NewOmgangService(factory, NewAccessService(factory))
	seedDossier(t, db, 7, 42)
	moeder := seedPersoon(t, db, "Jansen")
	vader := seedPersoon(t, db, "de Vries")
	seedPartij(t, db, 7, moeder.Id, 1)
	seedPartij(t, db, 7, vader.Id, 2)

	first, err := svc.Create(ctx, 42, 7, &dto.CreateOmgangRequest{DagId: 2, DagdeelId: 1, WeekRegelingId: 3, VerzorgerId: moeder.Id})
	require.NoError(t, err)
	assert.Equal(t, "Dinsdag", first.Dag.Naam)
	assert.Equal(t, "Jansen", first.Verzorger.Achternaam)

	second := &dto.CreateOmgangRequest{DagId: 2, DagdeelId: 1, WeekRegelingId: 3, VerzorgerId: vader.Id}
	_, err = svc.Create(ctx, 42, 7, second)
	assertAppError(t, err, http.StatusConflict, "This time slot already has a verzorger")

	_, err = svc.Update(ctx, 42, dto.OmgangParams{DossierId: 7, OmgangId: first.Id}, &dto.UpdateOmgangRequest{DagdeelId: uintPtr(2)})
	require.NoError(t, err)

	created, err := svc.Create(ctx, 42, 7, second)
	require.NoError(t, err)
	assert.Equal(t, vader.Id, created.VerzorgerId)

	_, err = svc.Update(ctx, 42, dto.OmgangParams{DossierId: 7, OmgangId: first.Id}, &dto.UpdateOmgangRequest{WisselTijd: strPtr("18:00")})
	require.NoError(t, err, "updating a row without moving it is not an overlap")

	list, err := svc.List(ctx, 42, 7, dto.OmgangQuery{WeekRegelingId: uintPtr(3)})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	none, err := svc.List(ctx, 42, 7, dto.OmgangQuery{WeekRegelingId: uintPtr(1)})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOmgangServiceValidatesReferences(t *testing.T) {
	db, factory := newFactory(t)
	ctx := context.Background()
	svc := NewOmgangService(factory, NewAccessService(factory))
	seedDossier(t, db, 7, 42)
	moeder := seedPersoon(t, db, "Jansen")
	stranger := seedPersoon(t, db, "Vreemd")
	seedPartij(t, db, 7, moeder.Id, 1)

	_, err := svc.Create(ctx, 42, 7, &dto.CreateOmgangRequest{DagId: 9, DagdeelId: 1, WeekRegelingId: 1, VerzorgerId: moeder.Id})
	assertAppError(t, err, http.StatusBadRequest, "dagId: unknown value 9")

	_, err = svc.Create(ctx, 42, 7, &dto.CreateOmgangRequest{DagId: 1, DagdeelId: 1, WeekRegelingId: 1, VerzorgerId: stranger.Id})
	assertAppError(t, err, http.StatusBadRequest, "verzorgerId: verzorger must be a partij of this dossier")

	err = svc.Delete(ctx, 42, dto.OmgangParams{DossierId: 7, OmgangId: 123})
	assertAppError(t, err, http.StatusNotFound, "Omgang not found")
}

func TestOmgangServiceReplaceWeek(t *testing.T) {
	db, factory := newFactory(t)
	ctx := context.Background()
	svc := NewOmgangService(factory, NewAccessService(factory))
	seedDossier(t, db, 7, 42)
	moeder := seedPersoon(t, db, "Jansen")
	vader := seedPersoon(t, db, "de Vries")
	seedPartij(t, db, 7, moeder.Id, 1)
	seedPartij(t, db, 7, vader.Id, 2)

	_, err := svc.Create(ctx, 42, 7, &dto.CreateOmgangRequest{DagId: 1, DagdeelId: 1, WeekRegelingId: 1, VerzorgerId: moeder.Id})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 42, 7, &dto.CreateOmgangRequest{DagId: 1, DagdeelId: 1, WeekRegelingId: 2, VerzorgerId: moeder.Id})
	require.NoError(t, err)

	_, err = svc.ReplaceWeek(ctx, 42, 7, &dto.ReplaceWeekRequest{
		WeekRegelingId: 1,
		Entries: []dto.OmgangWeekEntry{
			{DagId: 3, DagdeelId: 2, VerzorgerId: vader.Id},
			{DagId: 3, DagdeelId: 2, VerzorgerId: moeder.Id},
		},
	})
	assertAppError(t, err, http.StatusConflict, "")

	saved, err := svc.ReplaceWeek(ctx, 42, 7, &dto.ReplaceWeekRequest{
		WeekRegelingId: 1,
		Entries: []dto.OmgangWeekEntry{
			{DagId: 3, DagdeelId: 2, VerzorgerId: vader.Id},
			{DagId: 4, DagdeelId: 2, VerzorgerId: moeder.Id, WisselTijd: "09:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	week1, err := svc.List(ctx, 42, 7, dto.OmgangQuery{WeekRegelingId: uintPtr(1)})
	require.NoError(t, err)
	assert.Len(t, week1, 2)
	for _, row := range week1 {
		assert.NotEqual(t, uint(1), row.DagId, "old slots of the week are replaced")
	}

	week2, err := svc.List(ctx, 42, 7, dto.OmgangQuery{WeekRegelingId: uintPtr(2)})
	require.NoError(t, err)
	assert.Len(t, week2, 1, "other week regelingen are untouched")
}

func TestZorgServiceCategoryRules(t *testing.T) {
	db, factory := newFactory(t)
	ctx := context.Background()
	svc := NewZorgService(factory, NewAccessService(factory))
	seedDossier(t, db, 7, 42)

	created, err := svc.Create(ctx, 42, 7, &dto.CreateZorgRequest{ZorgCategorieId: 1, ZorgSituatieId: 1, Overeenkomst: "Om en om"})
	require.NoError(t, err)
	assert.Equal(t, "Kerstmis", created.ZorgSituatie.Naam)
	assert.Equal(t, uint(42), created.AangemaaktDoor)
	assert.Nil(t, created.GewijzigdDoor)

	_, err = svc.Create(ctx, 42, 7, &dto.CreateZorgRequest{ZorgCategorieId: 2, ZorgSituatieId: 1, Overeenkomst: "x"})
	assertAppError(t, err, http.StatusBadRequest, "zorgSituatieId: situation does not belong to the category")

	_, err = svc.Create(ctx, 42, 7, &dto.CreateZorgRequest{ZorgCategorieId: 3, ZorgSituatieId: 7, Overeenkomst: "Anders"})
	require.NoError(t, err, "a situatie without categorie fits every categorie")

	_, err = svc.Create(ctx, 42, 7, &dto.CreateZorgRequest{ZorgCategorieId: 9, ZorgSituatieId: 1, Overeenkomst: "x"})
	assertAppError(t, err, http.StatusBadRequest, "zorgCategorieId: unknown category")

	updated, err := svc.Update(ctx, 42, dto.ZorgParams{DossierId: 7, ZorgId: created.Id}, &dto.UpdateZorgRequest{Overeenkomst: strPtr("Even jaren bij moeder")})
	require.NoError(t, err)
	assert.Equal(t, "Even jaren bij moeder", updated.Overeenkomst)
	require.NotNil(t, updated.GewijzigdDoor)
	assert.Equal(t, uint(42), *updated.GewijzigdDoor)

	list, err := svc.List(ctx, 42, 7, dto.ZorgQuery{ZorgCategorieId: uintPtr(1)})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, 42, dto.ZorgParams{DossierId: 7, ZorgId: created.Id}))
	err = svc.Delete(ctx, 42, dto.ZorgParams{DossierId: 7, ZorgId: created.Id})
	assertAppError(t, err, http.StatusNotFound, "Zorg not found")
}
