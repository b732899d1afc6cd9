package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"food_lovers_back_end/internal/database"
	"food_lovers_back_end/internal/models"
)

// FeaturedLimit: nombre d'avis mis en avant
const FeaturedLimit = 6

type ReviewStore interface {
	List(ctx context.Context, search string) ([]models.Document, error)
	Featured(ctx context.Context, limit int64) ([]models.Document, error)
	Get(ctx context.Context, id string) (models.Document, error)
	ListByEmail(ctx context.Context, email string) ([]models.Document, error)
	Insert(ctx context.Context, doc models.Document) (*database.InsertResult, error)
	Update(ctx context.Context, id string, doc models.Document) (*database.UpdateResult, error)
	Delete(ctx context.Context, id string) (*database.DeleteResult, error)
}

type ReviewHandler struct {
	store   ReviewStore
	timeout time.Duration
}

func NewReviewHandler(store ReviewStore, timeout time.Duration) *ReviewHandler {
	return &ReviewHandler{store: store, timeout: timeout}
}

// GET /reviews?search=
func (h *ReviewHandler) List(c *gin.Context) {
	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	reviews, err := h.store.List(ctx, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /reviews/featured
func (h *ReviewHandler) Featured(c *gin.Context) {
	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	reviews, err := h.store.Featured(ctx, FeaturedLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /reviews/:id
// Un avis absent donne null.
func (h *ReviewHandler) Get(c *gin.Context) {
	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	review, err := h.store.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if review == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, review)
}

// GET /my-reviews/:email
func (h *ReviewHandler) ListByEmail(c *gin.Context) {
	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	reviews, err := h.store.ListByEmail(ctx, c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	res, err := h.store.Insert(ctx, doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	res, err := h.store.Update(ctx, c.Param("id"), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	ctx, cancel := storeContext(c, h.timeout)
	defer cancel()

	res, err := h.store.Delete(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
