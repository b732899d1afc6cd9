package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food_lovers_back_end/internal/database"
	"food_lovers_back_end/internal/models"
)

const AlreadyInFavorites = "Already in favorites"

type FavoriteStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.Document, error)
	Insert(ctx context.Context, doc models.Document) (*database.InsertResult, bool, error)
	Delete(ctx context.Context, id string) (*database.DeleteResult, error)
}

type FavoriteHandler struct {
	store   FavoriteStore
	timeout time.Duration
}

func NewFavoriteHandler(store FavoriteStore, timeout time.Duration) *FavoriteHandler {
	return &FavoriteHandler{store: store, timeout: timeout}
}

// GET /favorites/:email
func (h *FavoriteHandler) ListByEmail(c *gin.Context) {
	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	favorites, err := h.store.ListByEmail(ctx, c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// POST /favorites
func (h *FavoriteHandler) Create(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	res, exists, err := h.store.Insert(ctx, doc)
	if err != nil {
		respondError(c, err)
		return
	}
	if exists {
		zap.L().Debug("⭐ Favori déjà présent",
			zap.Any("userEmail", doc[models.FieldUserEmail]),
			zap.Any("reviewId", doc[models.FieldReviewID]),
		)
		c.JSON(http.StatusOK, gin.H{"message": AlreadyInFavorites})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /favorites/:id
func (h *FavoriteHandler) Delete(c *gin.Context) {
	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	res, err := h.store.Delete(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
