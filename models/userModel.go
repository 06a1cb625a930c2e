package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User's password is the argon2id digest, never the plaintext, and is never
// serialized into responses.
type User struct {
	ID       bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Username string        `json:"username" bson:"username" validate:"required,min=1,max=100"`
	Email    string        `json:"email" bson:"email" validate:"required,email"`
	Password string        `json:"-" bson:"password"`
	Fullname string        `json:"fullname,omitempty" bson:"fullname,omitempty"`
	Slug     string        `json:"slug" bson:"slug"`

	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	ModifiedAt time.Time  `json:"modifiedAt" bson:"modifiedAt"`
	IsDeleted  bool       `json:"isDeleted" bson:"isDeleted"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// Registration is the POST /register request body.
type Registration struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
	Fullname             string `json:"fullname"`
}

// Login is the POST /login request body.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
