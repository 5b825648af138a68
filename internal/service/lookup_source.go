package service

import (
	"context"
	"errors"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/contract"
	"ouderschapsplan-api/internal/repository/unitofwork"

	"gorm.io/gorm"
)

var ErrLookupNotSupported = errors.New("lookup not supported by this source")

// LookupSource reads the reference tables.
type LookupSource interface {
	Rollen(ctx context.Context) ([]model.Rol, error)
	Dagen(ctx context.Context) ([]model.Dag, error)
	Dagdelen(ctx context.Context) ([]model.Dagdeel, error)
	WeekRegelingen(ctx context.Context) ([]model.WeekRegeling, error)
	ZorgCategorieen(ctx context.Context) ([]model.ZorgCategorie, error)
	ZorgSituaties(ctx context.Context, categorieId *uint) ([]model.ZorgSituatie, error)
	Schoolvakanties(ctx context.Context) ([]model.Schoolvakantie, error)
	RegelingTemplates(ctx context.Context, filter contract.RegelingTemplateFilter) ([]model.RegelingTemplate, error)
	RelatieTypes(ctx context.Context) ([]model.RelatieType, error)
}

// NewLookupSource picks the repository source or the legacy query source.
func NewLookupSource(useRepository bool, uowFactory unitofwork.RepositoryFactory, db *gorm.DB) LookupSource {
	if useRepository {
		return &repositoryLookupSource{uowFactory: uowFactory}
	}
	return &legacyLookupSource{db: db}
}

type repositoryLookupSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func (s *repositoryLookupSource) repo(ctx context.Context) contract.LookupRepository {
	return s.uowFactory.NewUnitOfWork(ctx).LookupRepository()
}

func (s *repositoryLookupSource) Rollen(ctx context.Context) ([]model.Rol, error) {
	return s.repo(ctx).Rollen(ctx)
}

func (s *repositoryLookupSource) Dagen(ctx context.Context) ([]model.Dag, error) {
	return s.repo(ctx).Dagen(ctx)
}

func (s *repositoryLookupSource) Dagdelen(ctx context.Context) ([]model.Dagdeel, error) {
	return s.repo(ctx).Dagdelen(ctx)
}

func (s *repositoryLookupSource) WeekRegelingen(ctx context.Context) ([]model.WeekRegeling, error) {
	return s.repo(ctx).WeekRegelingen(ctx)
}

func (s *repositoryLookupSource) ZorgCategorieen(ctx context.Context) ([]model.ZorgCategorie, error) {
	return s.repo(ctx).ZorgCategorieen(ctx)
}

func (s *repositoryLookupSource) ZorgSituaties(ctx context.Context, categorieId *uint) ([]model.ZorgSituatie, error) {
	return s.repo(ctx).ZorgSituaties(ctx, categorieId)
}

func (s *repositoryLookupSource) Schoolvakanties(ctx context.Context) ([]model.Schoolvakantie, error) {
	return s.repo(ctx).Schoolvakanties(ctx)
}

func (s *repositoryLookupSource) RegelingTemplates(ctx context.Context, filter contract.RegelingTemplateFilter) ([]model.RegelingTemplate, error) {
	return s.repo(ctx).RegelingTemplates(ctx, filter)
}

func (s *repositoryLookupSource) RelatieTypes(ctx context.Context) ([]model.RelatieType, error) {
	return s.repo(ctx).RelatieTypes(ctx)
}

// legacyLookupSource runs hand-written queries. It predates the repositories
// and never served regeling templates.
type legacyLookupSource struct {
	db *gorm.DB
}

func rawQuery[T any](ctx context.Context, db *gorm.DB, sql string, args ...interface{}) ([]T, error) {
	rows := []T{}
	err := db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

func (s *legacyLookupSource) Rollen(ctx context.Context) ([]model.Rol, error) {
	return rawQuery[model.Rol](ctx, s.db, "SELECT id, naam FROM rollen ORDER BY id")
}

func (s *legacyLookupSource) Dagen(ctx context.Context) ([]model.Dag, error) {
	return rawQuery[model.Dag](ctx, s.db, "SELECT id, naam, code FROM dagen ORDER BY id")
}

func (s *legacyLookupSource) Dagdelen(ctx context.Context) ([]model.Dagdeel, error) {
	return rawQuery[model.Dagdeel](ctx, s.db, "SELECT id, naam FROM dagdelen ORDER BY id")
}

func (s *legacyLookupSource) WeekRegelingen(ctx context.Context) ([]model.WeekRegeling, error) {
	return rawQuery[model.WeekRegeling](ctx, s.db, "SELECT id, omschrijving FROM week_regelingen ORDER BY id")
}

func (s *legacyLookupSource) ZorgCategorieen(ctx context.Context) ([]model.ZorgCategorie, error) {
	return rawQuery[model.ZorgCategorie](ctx, s.db, "SELECT id, naam FROM zorg_categorieen ORDER BY id")
}

func (s *legacyLookupSource) ZorgSituaties(ctx context.Context, categorieId *uint) ([]model.ZorgSituatie, error) {
	if categorieId != nil {
		return rawQuery[model.ZorgSituatie](ctx, s.db,
			"SELECT id, naam, zorg_categorie_id FROM zorg_situaties WHERE zorg_categorie_id = ? ORDER BY id", *categorieId)
	}
	return rawQuery[model.ZorgSituatie](ctx, s.db, "SELECT id, naam, zorg_categorie_id FROM zorg_situaties ORDER BY id")
}

func (s *legacyLookupSource) Schoolvakanties(ctx context.Context) ([]model.Schoolvakantie, error) {
	return rawQuery[model.Schoolvakantie](ctx, s.db,
		"SELECT id, naam, regio, start_datum, eind_datum FROM schoolvakanties ORDER BY start_datum, id")
}

func (s *legacyLookupSource) RegelingTemplates(ctx context.Context, filter contract.RegelingTemplateFilter) ([]model.RegelingTemplate, error) {
	return nil, ErrLookupNotSupported
}

func (s *legacyLookupSource) RelatieTypes(ctx context.Context) ([]model.RelatieType, error) {
	return rawQuery[model.RelatieType](ctx, s.db, "SELECT id, naam FROM relatie_types ORDER BY id")
}
