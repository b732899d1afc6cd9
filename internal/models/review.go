package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Document est un document brut, sans schéma imposé.
// Les champs inconnus sont conservés tels quels entre le client et MongoDB.
type Document = bson.M

// Champs lus par le serveur
const (
	FieldID        = "_id"
	FieldFoodName  = "foodName"
	FieldRating    = "rating"
	FieldDate      = "date"
	FieldUserEmail = "userEmail"
	FieldReviewID  = "reviewId"
)

// WithoutID retourne une copie du document sans le champ _id
func WithoutID(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if k == FieldID {
			continue
		}
		out[k] = v
	}
	return out
}
