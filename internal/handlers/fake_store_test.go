package handlers

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"food_lovers_back_end/internal/database"
	"food_lovers_back_end/internal/models"
)

// memStore reproduit en mémoire le comportement des repositories MongoDB
type memStore struct {
	mu        sync.Mutex
	reviews   []models.Document
	favorites []models.Document
	err       error
}

type memReviews struct{ *memStore }
type memFavorites struct{ *memStore }

func copyDoc(doc models.Document) models.Document {
	out := make(models.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func copyAll(docs []models.Document) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, copyDoc(d))
	}
	return out
}

func indexOf(docs []models.Document, id primitive.ObjectID) int {
	for i, d := range docs {
		if d[models.FieldID] == id {
			return i
		}
	}
	return -1
}

func (s memReviews) List(_ context.Context, search string) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	out := make([]models.Document, 0)
	for _, d := range s.reviews {
		name, _ := d[models.FieldFoodName].(string)
		if search == "" || strings.Contains(strings.ToLower(name), strings.ToLower(search)) {
			out = append(out, copyDoc(d))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i][models.FieldDate].(string)
		b, _ := out[j][models.FieldDate].(string)
		return a > b
	})
	return out, nil
}

func (s memReviews) Featured(_ context.Context, limit int64) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	out := copyAll(s.reviews)
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i][models.FieldRating].(float64)
		b, _ := out[j][models.FieldRating].(float64)
		return a > b
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s memReviews) Get(_ context.Context, id string) (models.Document, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	if i := indexOf(s.reviews, oid); i >= 0 {
		return copyDoc(s.reviews[i]), nil
	}
	return nil, nil
}

func (s memReviews) ListByEmail(_ context.Context, email string) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return byEmail(s.reviews, email), nil
}

func (s memReviews) Insert(_ context.Context, doc models.Document) (*database.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	stored := copyDoc(doc)
	oid := primitive.NewObjectID()
	stored[models.FieldID] = oid
	s.reviews = append(s.reviews, stored)
	return &database.InsertResult{Acknowledged: true, InsertedID: oid}, nil
}

func (s memReviews) Update(_ context.Context, id string, doc models.Document) (*database.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	res := &database.UpdateResult{Acknowledged: true}
	i := indexOf(s.reviews, oid)
	if i < 0 {
		return res, nil
	}
	res.MatchedCount = 1
	for k, v := range models.WithoutID(doc) {
		if !reflect.DeepEqual(s.reviews[i][k], v) {
			res.ModifiedCount = 1
		}
		s.reviews[i][k] = v
	}
	return res, nil
}

func (s memReviews) Delete(_ context.Context, id string) (*database.DeleteResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	res := &database.DeleteResult{Acknowledged: true}
	if i := indexOf(s.reviews, oid); i >= 0 {
		s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
		res.DeletedCount = 1
	}
	return res, nil
}

func (s memFavorites) ListByEmail(_ context.Context, email string) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return byEmail(s.favorites, email), nil
}

func (s memFavorites) Insert(_ context.Context, doc models.Document) (*database.InsertResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, false, s.err
	}

	key := models.FavoriteKeyOf(doc)
	for _, f := range s.favorites {
		if reflect.DeepEqual(models.FavoriteKeyOf(f), key) {
			return nil, true, nil
		}
	}

	stored := copyDoc(doc)
	oid := primitive.NewObjectID()
	stored[models.FieldID] = oid
	s.favorites = append(s.favorites, stored)
	return &database.InsertResult{Acknowledged: true, InsertedID: oid}, false, nil
}

func (s memFavorites) Delete(_ context.Context, id string) (*database.DeleteResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	res := &database.DeleteResult{Acknowledged: true}
	if i := indexOf(s.favorites, oid); i >= 0 {
		s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
		res.DeletedCount = 1
	}
	return res, nil
}

func byEmail(docs []models.Document, email string) []models.Document {
	out := make([]models.Document, 0)
	for _, d := range docs {
		if d[models.FieldUserEmail] == email {
			out = append(out, copyDoc(d))
		}
	}
	return out
}
