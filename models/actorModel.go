package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SocialMedia holds the handful of profile links the catalog tracks.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Imdb      string `json:"imdb,omitempty" bson:"imdb,omitempty"`
}

type Actor struct {
	ID   bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name" validate:"required,min=1,max=200"`
	Slug string        `json:"slug" bson:"slug"`

	Movies []bson.ObjectID `json:"movies" bson:"movies"`
	Images []string        `json:"images" bson:"images"`

	Birthday *time.Time `json:"birthday,omitempty" bson:"birthday,omitempty"`
	Deathday *time.Time `json:"deathday,omitempty" bson:"deathday,omitempty"`
	Gender   string     `json:"gender,omitempty" bson:"gender,omitempty"`
	Country  string     `json:"country,omitempty" bson:"country,omitempty"`
	Height   float64    `json:"height,omitempty" bson:"height,omitempty"`
	Bio      string     `json:"bio,omitempty" bson:"bio,omitempty"`
	Rating   float64    `json:"rating,omitempty" bson:"rating,omitempty"`

	Awards         []string     `json:"awards,omitempty" bson:"awards,omitempty"`
	PersonalQuotes []string     `json:"personalQuotes,omitempty" bson:"personalQuotes,omitempty"`
	SocialMedia    *SocialMedia `json:"socialMedia,omitempty" bson:"socialMedia,omitempty"`

	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	ModifiedAt time.Time  `json:"modifiedAt" bson:"modifiedAt"`
	IsDeleted  bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}
