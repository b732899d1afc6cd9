package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"food_lovers_back_end/internal/database"
	"food_lovers_back_end/internal/models"
)

const WelcomeMessage = "Local Food Lovers Network Server Running"

// Root répond au test de vie
func Root(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// storeContext borne l'appel à la base par le contexte de la requête
func storeContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

// bindDocument lit le corps JSON tel quel. Un corps vide donne un document vide,
// que la longueur soit annoncée ou non (chunked).
func bindDocument(c *gin.Context) (models.Document, bool) {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return models.Document{}, true
	}

	var doc models.Document
	err := c.ShouldBindJSON(&doc)
	if errors.Is(err, io.EOF) {
		return models.Document{}, true
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON invalide", "details": err.Error()})
		return nil, false
	}
	if doc == nil {
		doc = models.Document{}
	}
	return doc, true
}

// respondError convertit une erreur de la couche base en réponse HTTP
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, database.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID invalide"})
	case errors.Is(err, database.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Base de données indisponible"})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "La base de données ne répond pas"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur base de données"})
	}
}
