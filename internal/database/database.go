package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"food_lovers_back_end/internal/config"
)

const (
	ReviewsCollection   = "reviews"
	FavoritesCollection = "favorites"
)

var (
	ErrInvalidID        = errors.New("identifiant invalide")
	ErrStoreUnavailable = errors.New("base de données indisponible")
	ErrMissingURI       = errors.New("MONGODB_URI non configuré")
)

// Mongo regroupe le client et la base utilisée par le serveur.
// Il est créé une seule fois au démarrage et partagé par les repositories.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect ouvre la connexion MongoDB (Server API v1, strict) et la vérifie
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg.MongoURI == "" {
		return nil, ErrMissingURI
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetTimeout(cfg.StoreTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connexion MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(cfg.Database),
	}, nil
}

func (m *Mongo) Reviews() *mongo.Collection {
	return m.DB.Collection(ReviewsCollection)
}

func (m *Mongo) Favorites() *mongo.Collection {
	return m.DB.Collection(FavoritesCollection)
}

// Close ferme la connexion
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// LogStats affiche la base utilisée et le nombre d'avis au démarrage
func (m *Mongo) LogStats(ctx context.Context) {
	count, err := m.Reviews().CountDocuments(ctx, bson.M{})
	if err != nil {
		zap.L().Warn("⚠️ Comptage des avis impossible", zap.Error(err))
		return
	}
	zap.L().Info("✅ Connecté à MongoDB",
		zap.String("database", m.DB.Name()),
		zap.Int64("total_reviews", count),
	)
}

// EnsureFavoriteIndex crée l'index unique (userEmail, reviewId).
// Échoue si la collection contient déjà des doublons.
func EnsureFavoriteIndex(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userEmail", Value: 1},
			{Key: "reviewId", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("userEmail_reviewId_unique"),
	})
	if err != nil {
		return fmt.Errorf("création index favoris: %w", err)
	}
	return nil
}
