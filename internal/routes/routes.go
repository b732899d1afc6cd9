package routes

import (
	"food_lovers_back_end/internal/handlers"
	"food_lovers_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, reviews *handlers.ReviewHandler, favorites *handlers.FavoriteHandler) {
	r.Use(middleware.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS())

	r.GET("/", handlers.Root)

	// Reviews
	r.GET("/reviews", reviews.List)
	r.GET("/reviews/featured", reviews.Featured)
	r.GET("/reviews/:id", reviews.Get)
	r.GET("/my-reviews/:email", reviews.ListByEmail)
	r.POST("/reviews", reviews.Create)
	r.PUT("/reviews/:id", reviews.Update)
	r.DELETE("/reviews/:id", reviews.Delete)

	// Favorites
	r.GET("/favorites/:email", favorites.ListByEmail)
	r.POST("/favorites", favorites.Create)
	r.DELETE("/favorites/:id", favorites.Delete)
}
