package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macaris64/lumgoo-backend/config"
	"github.com/macaris64/lumgoo-backend/controller"
	"github.com/macaris64/lumgoo-backend/database"
	mw "github.com/macaris64/lumgoo-backend/middlewares"
	"github.com/macaris64/lumgoo-backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the handlers against a per-run database, the same way
// the store suite does. Skipped without MONGO_TEST_URI.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	cfg := &config.Config{
		MongoURI:     uri,
		DatabaseName: fmt.Sprintf("lumgoo_test_%d", time.Now().UnixNano()),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, db.EnsureIndexes(ctx))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, name := range []string{
			database.MoviesCollection,
			database.ActorsCollection,
			database.GenresCollection,
			database.UsersCollection,
		} {
			_ = db.Collection(name).Drop(ctx)
		}
		_ = db.Disconnect(ctx)
	})

	ctl := &controller.Controller{
		DB:     db,
		Tokens: utils.NewTokenService("test-secret", time.Hour),
		Log:    zerolog.Nop(),
	}

	router := gin.New()
	router.Use(mw.ErrorHandler(zerolog.Nop()))
	router.POST("/movies", mw.ValidateCreateMovie, ctl.CreateMovie)
	router.GET("/movies", ctl.GetMovies)
	router.GET("/movies/:id", ctl.GetMovieByID)
	router.DELETE("/movies/:id", ctl.DeleteMovie)
	router.POST("/register", mw.ValidateRegistration, ctl.Register)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestMovieSoftDeleteLifecycle(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, "/movies", `{"title":"Blade Runner"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decode(t, w)["_id"].(string)
	require.NotEmpty(t, id)

	w = do(router, http.MethodDelete, "/movies/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Still retrievable by id, now marked deleted.
	w = do(router, http.MethodGet, "/movies/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode(t, w)
	assert.Equal(t, true, fetched["isDeleted"])
	assert.NotEmpty(t, fetched["deletedAt"])

	// Hidden from listings.
	w = do(router, http.MethodGet, "/movies", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	// Deleting again succeeds again.
	w = do(router, http.MethodDelete, "/movies/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMovieIDValidation(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodGet, "/movies/not-a-hex-id", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(router, http.MethodDelete, "/movies/not-a-hex-id", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegisterLifecycle(t *testing.T) {
	router := newTestServer(t)

	body := `{"username":"neo","email":"neo@matrix.io","password":"redpill1","passwordConfirmation":"redpill1","fullname":"Thomas Anderson"}`

	w := do(router, http.MethodPost, "/register", body)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.NotEmpty(t, resp["token"])

	user, ok := resp["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "neo", user["username"])
	assert.Equal(t, "neo@matrix.io", user["email"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "the password digest must never be serialized")

	// The identical registration is a conflict, not a second account.
	w = do(router, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// So is reusing just the username.
	w = do(router, http.MethodPost, "/register",
		`{"username":"neo","email":"other@matrix.io","password":"redpill1","passwordConfirmation":"redpill1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}
