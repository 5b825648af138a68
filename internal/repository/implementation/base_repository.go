package implementation

import (
	"context"
	"errors"

	"ouderschapsplan-api/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errUnscopedDelete = errors.New("delete without specification")

// baseRepository implements contract.Repository for one model. Writes never
// touch associations; related rows are written through their own repository.
type baseRepository[T any] struct {
	db *gorm.DB
}

func (r *baseRepository[T]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *baseRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

func (r *baseRepository[T]) Update(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(row).Error
}

func (r *baseRepository[T]) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if len(specs) == 0 {
		return 0, errUnscopedDelete
	}
	res := r.applySpecifications(r.db.WithContext(ctx), specs...).Delete(new(T))
	return res.RowsAffected, res.Error
}

func (r *baseRepository[T]) FindOne(ctx context.Context, specs ...specification.Specification) (*T, error) {
	var row T
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *baseRepository[T]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*T, error) {
	var rows []*T
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *baseRepository[T]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(T)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
