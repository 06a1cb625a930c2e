package utils

import (
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GetSlug derives the URL identifier from a title or name: lowercase,
// strict ASCII, hyphen separated. Slugs are always recomputed server side.
func GetSlug(text string) string {
	return slug.Make(text)
}

// IsValidID reports whether s has the shape of a store object id.
func IsValidID(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}
