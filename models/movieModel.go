package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ActorLink ties a movie to an actor together with the character played.
type ActorLink struct {
	ActorID       bson.ObjectID `json:"actorId" bson:"actorId"`
	CharacterName string        `json:"characterName" bson:"characterName"`
}

type Movie struct {
	ID     bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title  string        `json:"title" bson:"title" validate:"required,min=1,max=400"`
	Slug   string        `json:"slug" bson:"slug"`
	ImdbID string        `json:"imdbId,omitempty" bson:"imdbId,omitempty"`

	Genre  []bson.ObjectID `json:"genre" bson:"genre"`
	Actors []ActorLink     `json:"actors" bson:"actors"`

	// ImdbRating keeps the legacy numeric encoding: 0 means never looked
	// up, negative values are the sentinel codes in rating.go.
	ImdbRating float64 `json:"imdbRating" bson:"imdbRating"`

	Director []string   `json:"director" bson:"director"`
	Plot     string     `json:"plot,omitempty" bson:"plot,omitempty"`
	Images   []string   `json:"images" bson:"images"`
	Release  *time.Time `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	Runtime  string     `json:"runtime,omitempty" bson:"runtime,omitempty"`
	Country  []string   `json:"country" bson:"country"`
	Language string     `json:"language,omitempty" bson:"language,omitempty"`

	Budget    float64 `json:"budget,omitempty" bson:"budget,omitempty"`
	BoxOffice float64 `json:"boxOffice,omitempty" bson:"boxOffice,omitempty"`

	MpaaRating            string         `json:"mpaaRating,omitempty" bson:"mpaaRating,omitempty"`
	UserRating            float64        `json:"userRating,omitempty" bson:"userRating,omitempty"`
	UserReviews           []string       `json:"userReviews,omitempty" bson:"userReviews,omitempty"`
	Awards                []string       `json:"awards,omitempty" bson:"awards,omitempty"`
	ProductionCompanies   []string       `json:"productionCompanies,omitempty" bson:"productionCompanies,omitempty"`
	DistributionCompanies []string       `json:"distributionCompanies,omitempty" bson:"distributionCompanies,omitempty"`
	OfficialWebsite       string         `json:"officialWebsite,omitempty" bson:"officialWebsite,omitempty"`
	TrailerURL            string         `json:"trailerUrl,omitempty" bson:"trailerUrl,omitempty"`
	ScreenplayBy          []string       `json:"screenplayBy,omitempty" bson:"screenplayBy,omitempty"`
	CinematographyBy      []string       `json:"cinematographyBy,omitempty" bson:"cinematographyBy,omitempty"`
	EditedBy              []string       `json:"editedBy,omitempty" bson:"editedBy,omitempty"`
	MusicBy               []string       `json:"musicBy,omitempty" bson:"musicBy,omitempty"`
	VisualEffectsBy       []string       `json:"visualEffectsBy,omitempty" bson:"visualEffectsBy,omitempty"`
	StreamingAvailability map[string]any `json:"streamingAvailability,omitempty" bson:"streamingAvailability,omitempty"`

	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	ModifiedAt time.Time  `json:"modifiedAt" bson:"modifiedAt"`
	IsDeleted  bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}
