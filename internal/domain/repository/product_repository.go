package repository

import (
	"context"

	"github.com/oktarian/shopstock/internal/domain/entity"
)

// ProductRepository is the narrow document-store surface the product domain
// uses: one equality-filtered limit-1 read and one merge-upsert write by
// explicit id. Keeping it this small keeps the store mockable in tests.
type ProductRepository interface {
	// FindByName returns the first product whose name field equals the
	// given (already normalized) name, or ErrNotFound.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// Upsert writes name, quantity and price to the document with the given
	// id, creating it when absent. Fields outside those three are left
	// untouched on existing documents.
	Upsert(ctx context.Context, id string, p *entity.Product) error
}
