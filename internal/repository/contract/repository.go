package contract

import (
	"context"

	"ouderschapsplan-api/internal/repository/specification"
)

// Repository is the CRUD surface shared by every table repository.
type Repository[T any] interface {
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*T, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*T, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
