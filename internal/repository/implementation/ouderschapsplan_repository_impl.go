package implementation

import (
	"context"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OuderschapsplanRepositoryImpl struct {
	baseRepository[model.OuderschapsplanInfo]
}

func NewOuderschapsplanRepository(db *gorm.DB) contract.OuderschapsplanRepository {
	return &OuderschapsplanRepositoryImpl{baseRepository[model.OuderschapsplanInfo]{db: db}}
}

type AlimentatieRepositoryImpl struct {
	baseRepository[model.Alimentatie]
}

func NewAlimentatieRepository(db *gorm.DB) contract.AlimentatieRepository {
	return &AlimentatieRepositoryImpl{baseRepository[model.Alimentatie]{db: db}}
}

func (r *AlimentatieRepositoryImpl) FindOneWithLines(ctx context.Context, dossierId uint) (*model.Alimentatie, error) {
	var rows []*model.Alimentatie
	err := r.db.WithContext(ctx).
		Preload("BijdragenKostenKinderen", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("FinancieleAfspraken", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("dossier_id = ?", dossierId).
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r *AlimentatieRepositoryImpl) ReplaceBijdragen(ctx context.Context, alimentatieId uint, rows []*model.BijdrageKostenKinderen) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("alimentatie_id = ?", alimentatieId).Delete(&model.BijdrageKostenKinderen{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		row.Id = 0
		row.AlimentatieId = alimentatieId
	}
	return db.Omit(clause.Associations).Create(&rows).Error
}

func (r *AlimentatieRepositoryImpl) ReplaceFinancieleAfspraken(ctx context.Context, alimentatieId uint, rows []*model.FinancieleAfsprakenKinderen) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("alimentatie_id = ?", alimentatieId).Delete(&model.FinancieleAfsprakenKinderen{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		row.Id = 0
		row.AlimentatieId = alimentatieId
	}
	return db.Omit(clause.Associations).Create(&rows).Error
}
