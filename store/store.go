// Package store implements the create-or-update-by-natural-key
// reconciliation shared by movies, actors, and genres. Reconciliation is
// idempotent: repeated calls with the same title or name update one record
// and never duplicate it, which is what makes re-ingestion from external
// sources safe.
package store

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/macaris64/lumgoo-backend/database"
	"github.com/macaris64/lumgoo-backend/utils"
)

type Store struct {
	db       *database.DB
	log      zerolog.Logger
	validate *validator.Validate
}

func New(db *database.DB, log zerolog.Logger) *Store {
	return &Store{
		db:       db,
		log:      log.With().Str("component", "store").Logger(),
		validate: validator.New(),
	}
}

// classifyStoreError translates driver failures into the API taxonomy:
// duplicate key means a concurrent creator won the natural-key race.
func classifyStoreError(err error) *utils.APIError {
	if mongo.IsDuplicateKeyError(err) {
		return utils.Conflict("Record already exists")
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return utils.NotFound("Record not found")
	}
	return utils.InternalError("Internal Server Error")
}
