package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food_lovers_back_end/internal/models"
)

// ReviewRepository accède à la collection "reviews".
// Un repository sans collection répond ErrStoreUnavailable.
type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(coll *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{coll: coll}
}

// SearchFilter: sous-chaîne insensible à la casse sur foodName
func SearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{
		models.FieldFoodName: bson.M{
			"$regex":   regexp.QuoteMeta(search),
			"$options": "i",
		},
	}
}

// List retourne les avis filtrés par search, du plus récent au plus ancien
func (r *ReviewRepository) List(ctx context.Context, search string) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: models.FieldDate, Value: -1}})
	return r.find(ctx, SearchFilter(search), opts)
}

// Featured retourne les limit avis les mieux notés
func (r *ReviewRepository) Featured(ctx context.Context, limit int64) ([]models.Document, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: models.FieldRating, Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *ReviewRepository) ListByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return r.find(ctx, bson.M{models.FieldUserEmail: email})
}

// Get retourne nil, nil si l'avis n'existe pas
func (r *ReviewRepository) Get(ctx context.Context, id string) (models.Document, error) {
	if r.coll == nil {
		return nil, ErrStoreUnavailable
	}
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var doc models.Document
	err = r.coll.FindOne(ctx, bson.M{models.FieldID: oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture avis %s: %w", id, err)
	}
	return doc, nil
}

// Insert enregistre le document tel que reçu
func (r *ReviewRepository) Insert(ctx context.Context, doc models.Document) (*InsertResult, error) {
	if r.coll == nil {
		return nil, ErrStoreUnavailable
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insertion avis: %w", err)
	}
	return insertResult(res), nil
}

// Update remplace les champs fournis ($set), _id exclu
func (r *ReviewRepository) Update(ctx context.Context, id string, doc models.Document) (*UpdateResult, error) {
	if r.coll == nil {
		return nil, ErrStoreUnavailable
	}
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{models.FieldID: oid},
		bson.M{"$set": models.WithoutID(doc)},
	)
	if err != nil {
		return nil, fmt.Errorf("mise à jour avis %s: %w", id, err)
	}
	return updateResult(res), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Document, error) {
	return findAll(ctx, r.coll, filter, opts...)
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]models.Document, error) {
	if coll == nil {
		return nil, ErrStoreUnavailable
	}

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("recherche %s: %w", coll.Name(), err)
	}

	docs := make([]models.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("lecture curseur %s: %w", coll.Name(), err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (*DeleteResult, error) {
	if coll == nil {
		return nil, ErrStoreUnavailable
	}
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{models.FieldID: oid})
	if err != nil {
		return nil, fmt.Errorf("suppression %s %s: %w", coll.Name(), id, err)
	}
	return deleteResult(res), nil
}
