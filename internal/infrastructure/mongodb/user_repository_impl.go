package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oktarian/shopstock/internal/domain/entity"
	"github.com/oktarian/shopstock/internal/domain/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database, collection string) *UserRepository {
	return &UserRepository{coll: db.Collection(collection)}
}

// FindByEmail does an exact, case-sensitive equality match on the email
// field. FindOne gives limit-1 semantics; with duplicate emails in the
// collection the choice among them is whatever the store returns first.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
