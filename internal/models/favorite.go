package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// FavoriteKey identifie un favori: un seul par couple (userEmail, reviewId).
// Les valeurs sont gardées brutes; un champ absent vaut nil et correspond
// aux documents où ce champ est absent ou null.
type FavoriteKey struct {
	UserEmail interface{}
	ReviewID  interface{}
}

func FavoriteKeyOf(doc Document) FavoriteKey {
	return FavoriteKey{
		UserEmail: doc[FieldUserEmail],
		ReviewID:  doc[FieldReviewID],
	}
}

// Filter retourne le filtre MongoDB correspondant à la clé
func (k FavoriteKey) Filter() bson.M {
	return bson.M{
		FieldUserEmail: k.UserEmail,
		FieldReviewID:  k.ReviewID,
	}
}
