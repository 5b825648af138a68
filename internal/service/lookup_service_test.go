package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ouderschapsplan-api/internal/dto"
	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/repository/contract"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls    map[string]int
	filters  []*uint
	template contract.RegelingTemplateFilter
}

func newCountingSource() *countingSource {
	return &countingSource{calls: map[string]int{}}
}

func (s *countingSource) Rollen(ctx context.Context) ([]model.Rol, error) {
	s.calls[LookupRollen]++
	return []model.Rol{{Id: 1, Naam: "Moeder"}}, nil
}

func (s *countingSource) Dagen(ctx context.Context) ([]model.Dag, error) {
	s.calls[LookupDagen]++
	return []model.Dag{{Id: 1, Naam: "Maandag"}}, nil
}

func (s *countingSource) Dagdelen(ctx context.Context) ([]model.Dagdeel, error) {
	s.calls[LookupDagdelen]++
	return nil, nil
}

func (s *countingSource) WeekRegelingen(ctx context.Context) ([]model.WeekRegeling, error) {
	s.calls[LookupWeekRegelingen]++
	return nil, nil
}

func (s *countingSource) ZorgCategorieen(ctx context.Context) ([]model.ZorgCategorie, error) {
	s.calls[LookupZorgCategorieen]++
	return nil, nil
}

func (s *countingSource) ZorgSituaties(ctx context.Context, categorieId *uint) ([]model.ZorgSituatie, error) {
	s.calls[LookupZorgSituaties]++
	s.filters = append(s.filters, categorieId)
	return []model.ZorgSituatie{{Id: 1, Naam: "Kerstmis", ZorgCategorieId: categorieId}}, nil
}

func (s *countingSource) Schoolvakanties(ctx context.Context) ([]model.Schoolvakantie, error) {
	s.calls[LookupSchoolvakanties]++
	return nil, nil
}

func (s *countingSource) RegelingTemplates(ctx context.Context, filter contract.RegelingTemplateFilter) ([]model.RegelingTemplate, error) {
	s.calls[LookupRegelingTemplates]++
	s.template = filter
	return nil, nil
}

func (s *countingSource) RelatieTypes(ctx context.Context) ([]model.RelatieType, error) {
	s.calls[LookupRelatieTypes]++
	return nil, nil
}

func newTestLookupService(source LookupSource) (*lookupService, *time.Time) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	svc := NewLookupService(source, store.NewMemoryCache(), logger.NewNopLogger()).(*lookupService)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestLookupServiceCachesPerKind(t *testing.T) {
	source := newCountingSource()
	svc, now := newTestLookupService(source)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		raw, err := svc.Get(ctx, LookupDagen, dto.LookupQuery{})
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"naam":"Maandag","code":""}]`, string(raw))
	}
	assert.Equal(t, 1, source.calls[LookupDagen])

	*now = now.Add(4 * time.Minute)
	_, err := svc.Get(ctx, LookupDagen, dto.LookupQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls[LookupDagen], "still fresh")

	*now = now.Add(2 * time.Minute)
	_, err = svc.Get(ctx, LookupDagen, dto.LookupQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls[LookupDagen], "stale after five minutes")
}

func TestLookupServiceRollenLiveLonger(t *testing.T) {
	source := newCountingSource()
	svc, now := newTestLookupService(source)
	ctx := context.Background()

	_, err := svc.Get(ctx, LookupRollen, dto.LookupQuery{})
	require.NoError(t, err)

	*now = now.Add(29 * time.Minute)
	_, err = svc.Get(ctx, LookupRollen, dto.LookupQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls[LookupRollen])

	*now = now.Add(2 * time.Minute)
	_, err = svc.Get(ctx, LookupRollen, dto.LookupQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls[LookupRollen])
}

func TestLookupServiceFilteredKeys(t *testing.T) {
	source := newCountingSource()
	svc, _ := newTestLookupService(source)
	ctx := context.Background()

	_, err := svc.Get(ctx, LookupZorgSituaties, dto.LookupQuery{ZorgCategorieId: uintPtr(1)})
	require.NoError(t, err)
	_, err = svc.Get(ctx, LookupZorgSituaties, dto.LookupQuery{ZorgCategorieId: uintPtr(2)})
	require.NoError(t, err)
	_, err = svc.Get(ctx, LookupZorgSituaties, dto.LookupQuery{ZorgCategorieId: uintPtr(1)})
	require.NoError(t, err)
	_, err = svc.Get(ctx, LookupZorgSituaties, dto.LookupQuery{})
	require.NoError(t, err)

	assert.Equal(t, 3, source.calls[LookupZorgSituaties])
	assert.Nil(t, source.filters[2])

	meervoud := true
	_, err = svc.Get(ctx, LookupRegelingTemplates, dto.LookupQuery{Type: "vakantie", Meervoud: &meervoud})
	require.NoError(t, err)
	assert.Equal(t, "vakantie", source.template.Type)
	require.NotNil(t, source.template.Meervoud)
	assert.True(t, *source.template.Meervoud)
}

func TestLookupServiceClearCache(t *testing.T) {
	source := newCountingSource()
	svc, _ := newTestLookupService(source)
	ctx := context.Background()

	_, err := svc.Get(ctx, LookupDagen, dto.LookupQuery{})
	require.NoError(t, err)
	svc.ClearCache(ctx)
	_, err = svc.Get(ctx, LookupDagen, dto.LookupQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls[LookupDagen])
}

func TestLookupServiceUnknownKind(t *testing.T) {
	svc, _ := newTestLookupService(newCountingSource())
	_, err := svc.Get(context.Background(), "kleuren", dto.LookupQuery{})
	assertAppError(t, err, http.StatusNotFound, "Unknown lookup")
}

func TestLookupSourcesAgainstDatabase(t *testing.T) {
	db, factory := newFactory(t)
	ctx := context.Background()

	sources := map[string]LookupSource{
		"repository": NewLookupSource(true, factory, db),
		"legacy":     NewLookupSource(false, unitofwork.NewRepositoryFactory(db), db),
	}
	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestLookupService(source)

			raw, err := svc.Get(ctx, LookupRollen, dto.LookupQuery{})
			require.NoError(t, err)
			var rollen []model.Rol
			require.NoError(t, json.Unmarshal(raw, &rollen))
			assert.Len(t, rollen, 4)

			raw, err = svc.Get(ctx, LookupZorgSituaties, dto.LookupQuery{ZorgCategorieId: uintPtr(1)})
			require.NoError(t, err)
			var situaties []model.ZorgSituatie
			require.NoError(t, json.Unmarshal(raw, &situaties))
			assert.NotEmpty(t, situaties)
			for _, s := range situaties {
				if s.ZorgCategorieId != nil {
					assert.Equal(t, uint(1), *s.ZorgCategorieId)
				}
			}
		})
	}

	svc, _ := newTestLookupService(sources["legacy"])
	_, err := svc.Get(ctx, LookupRegelingTemplates, dto.LookupQuery{})
	assertAppError(t, err, http.StatusNotImplemented, "This lookup is not available with the legacy data source")
}
