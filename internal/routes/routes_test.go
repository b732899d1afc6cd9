package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"food_lovers_back_end/internal/database"
	"food_lovers_back_end/internal/handlers"
	"food_lovers_back_end/internal/middleware"
)

// Sans base de données: seules les routes sont vérifiées
func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r,
		handlers.NewReviewHandler(database.NewReviewRepository(nil), time.Second),
		handlers.NewFavoriteHandler(database.NewFavoriteRepository(nil), time.Second),
	)
	return r
}

func TestRegisterRoutes(t *testing.T) {
	want := map[string]bool{
		"GET /":                  true,
		"GET /reviews":           true,
		"GET /reviews/featured":  true,
		"GET /reviews/:id":       true,
		"GET /my-reviews/:email": true,
		"POST /reviews":          true,
		"PUT /reviews/:id":       true,
		"DELETE /reviews/:id":    true,
		"GET /favorites/:email":  true,
		"POST /favorites":        true,
		"DELETE /favorites/:id":  true,
	}

	got := map[string]bool{}
	for _, route := range newEngine().Routes() {
		got[route.Method+" "+route.Path] = true
	}
	assert.Equal(t, want, got)
}

func TestRootWithoutStore(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handlers.WelcomeMessage, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestStoreRoutesWithoutStore(t *testing.T) {
	r := newEngine()
	for _, path := range []string{"/reviews", "/reviews/featured", "/favorites/a@b.c"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.JSONEq(t, `{"error":"Base de données indisponible"}`, w.Body.String())
	}
}
