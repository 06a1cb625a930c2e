package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Genre struct {
	ID   bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Slug string        `json:"slug" bson:"slug"`

	// TheMovieDbID is the external genre key used when translating
	// metadata-API genre ids into catalog genres.
	TheMovieDbID int64 `json:"theMovieDbId,omitempty" bson:"theMovieDbId,omitempty"`

	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	ModifiedAt time.Time  `json:"modifiedAt" bson:"modifiedAt"`
	IsDeleted  bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}
