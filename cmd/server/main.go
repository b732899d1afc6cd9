package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food_lovers_back_end/internal/config"
	"food_lovers_back_end/internal/database"
	"food_lovers_back_end/internal/handlers"
	"food_lovers_back_end/internal/logger"
	"food_lovers_back_end/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	l, err := logger.Init(cfg.Env)
	if err != nil {
		log.Fatalf("❌ Impossible d'initialiser le logger: %v", err)
	}
	defer l.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reviews, favorites, store := connectStore(ctx, cfg)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r,
		handlers.NewReviewHandler(reviews, cfg.StoreTimeout),
		handlers.NewFavoriteHandler(favorites, cfg.StoreTimeout),
	)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		zap.L().Info("🚀 Serveur lancé", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("❌ Erreur serveur HTTP", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("🛑 Arrêt demandé, fermeture du serveur")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Arrêt du serveur HTTP incomplet", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		zap.L().Error("Fermeture MongoDB incomplète", zap.Error(err))
	} else {
		zap.L().Info("🔌 Connexion MongoDB fermée")
	}
}

// connectStore ouvre MongoDB. En cas d'échec le serveur démarre quand même:
// la route / reste disponible et les autres répondent 500.
func connectStore(ctx context.Context, cfg *config.Config) (*database.ReviewRepository, *database.FavoriteRepository, *database.Mongo) {
	store, err := database.Connect(ctx, cfg)
	if err != nil {
		zap.L().Error("❌ Connexion MongoDB impossible", zap.Error(err))
		return database.NewReviewRepository(nil), database.NewFavoriteRepository(nil), nil
	}

	if err := database.EnsureFavoriteIndex(ctx, store.Favorites()); err != nil {
		zap.L().Warn("⚠️ Index unique des favoris absent", zap.Error(err))
	}
	store.LogStats(ctx)

	return database.NewReviewRepository(store.Reviews()), database.NewFavoriteRepository(store.Favorites()), store
}
