package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oktarian/shopstock/internal/domain/entity"
	"github.com/oktarian/shopstock/internal/domain/repository"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database, collection string) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collection)}
}

// FindByName matches the name field by equality; callers pass the name
// already normalized.
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	p := &entity.Product{}
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Upsert writes exactly the three product fields via $set with the upsert
// option. An existing document keeps any other fields it carries; an absent
// one is created with the given id plus these fields. The write is a single
// atomic document operation on the store side.
func (r *ProductRepository) Upsert(ctx context.Context, id string, p *entity.Product) error {
	update := bson.M{"$set": bson.M{
		"name":     p.Name,
		"quantity": p.Quantity,
		"price":    p.Price,
	}}
	_, err := r.coll.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))
	return err
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
