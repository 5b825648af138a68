package implementation

import (
	"context"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/contract"
	"ouderschapsplan-api/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OmgangRepositoryImpl struct {
	baseRepository[model.Omgang]
}

func NewOmgangRepository(db *gorm.DB) contract.OmgangRepository {
	return &OmgangRepositoryImpl{baseRepository[model.Omgang]{db: db}}
}

func (r *OmgangRepositoryImpl) CreateBulk(ctx context.Context, rows []*model.Omgang) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error
}

func (r *OmgangRepositoryImpl) FindAllWithRelations(ctx context.Context, dossierId uint, weekRegelingId *uint) ([]*model.Omgang, error) {
	query := r.db.WithContext(ctx).
		Preload("Dag").
		Preload("Dagdeel").
		Preload("WeekRegeling").
		Preload("Verzorger").
		Where("dossier_id = ?", dossierId)
	if weekRegelingId != nil {
		query = query.Where("week_regeling_id = ?", *weekRegelingId)
	}

	var rows []*model.Omgang
	err := query.Order("week_regeling_id, dag_id, dagdeel_id, id").Find(&rows).Error
	return rows, err
}

func (r *OmgangRepositoryImpl) SlotTaken(ctx context.Context, row *model.Omgang) (bool, error) {
	count, err := r.Count(ctx,
		specification.ByDossierID{DossierID: row.DossierId},
		specification.OmgangSlot{DagID: row.DagId, DagdeelID: row.DagdeelId, WeekRegelingID: row.WeekRegelingId},
		specification.ExcludeID{ID: row.Id},
	)
	return count > 0, err
}
