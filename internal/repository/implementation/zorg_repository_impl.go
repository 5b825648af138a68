package implementation

import (
	"context"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/contract"

	"gorm.io/gorm"
)

type ZorgRepositoryImpl struct {
	baseRepository[model.Zorg]
}

func NewZorgRepository(db *gorm.DB) contract.ZorgRepository {
	return &ZorgRepositoryImpl{baseRepository[model.Zorg]{db: db}}
}

func (r *ZorgRepositoryImpl) FindAllWithRelations(ctx context.Context, dossierId uint, categorieId *uint) ([]*model.Zorg, error) {
	query := r.db.WithContext(ctx).
		Preload("ZorgCategorie").
		Preload("ZorgSituatie").
		Where("dossier_id = ?", dossierId)
	if categorieId != nil {
		query = query.Where("zorg_categorie_id = ?", *categorieId)
	}

	var rows []*model.Zorg
	err := query.Order("zorg_categorie_id, id").Find(&rows).Error
	return rows, err
}
