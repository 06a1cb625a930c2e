package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/macaris64/lumgoo-backend/config"
)

// Collection names used across the catalog.
const (
	MoviesCollection = "movies"
	ActorsCollection = "actors"
	GenresCollection = "genres"
	UsersCollection  = "users"
)

// DB wraps the mongo client with the configured database name so callers
// never reach for the environment themselves.
type DB struct {
	client *mongo.Client
	name   string
}

func Connect(ctx context.Context, cfg *config.Config) (*DB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &DB{client: client, name: cfg.DatabaseName}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.client.Database(d.name).Collection(name)
}

func (d *DB) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique natural-key indexes. The in-handler
// existence pre-checks are a fast path only; these indexes are what actually
// prevents concurrent creators from inserting duplicates.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}
	uniqueSparse := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		}
	}

	byCollection := map[string][]mongo.IndexModel{
		MoviesCollection: {unique("title"), unique("slug"), uniqueSparse("imdbId")},
		ActorsCollection: {unique("name"), unique("slug")},
		GenresCollection: {unique("name"), unique("slug")},
		UsersCollection:  {unique("username"), unique("email")},
	}

	for name, indexes := range byCollection {
		if _, err := d.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}
