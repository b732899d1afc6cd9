package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"food_lovers_back_end/internal/models"
)

type FavoriteRepository struct {
	coll *mongo.Collection
}

func NewFavoriteRepository(coll *mongo.Collection) *FavoriteRepository {
	return &FavoriteRepository{coll: coll}
}

func (r *FavoriteRepository) ListByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return findAll(ctx, r.coll, bson.M{models.FieldUserEmail: email})
}

// Insert ajoute le favori sauf si le couple (userEmail, reviewId) existe déjà.
// exists vaut true dans ce cas, y compris quand l'index unique rejette
// une insertion concurrente.
func (r *FavoriteRepository) Insert(ctx context.Context, doc models.Document) (res *InsertResult, exists bool, err error) {
	if r.coll == nil {
		return nil, false, ErrStoreUnavailable
	}

	key := models.FavoriteKeyOf(doc)
	err = r.coll.FindOne(ctx, key.Filter()).Err()
	switch {
	case err == nil:
		return nil, true, nil
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, false, fmt.Errorf("recherche favori: %w", err)
	}

	inserted, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("insertion favori: %w", err)
	}
	return insertResult(inserted), false, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
