package models

// The legacy catalog encoded rating-lookup failures as magic negative
// numbers in the imdbRating field. The codes survive in stored documents,
// but code passes a RatingResult around instead of comparing floats.
const (
	ratingUnavailableCode  = -1 // upstream knows the movie but has no rating
	ratingNotFoundCode     = -2 // upstream does not know the movie
	ratingNoExternalIDCode = -3 // nothing to look up: movie has no IMDB id
)

type RatingStatus int

const (
	Rated RatingStatus = iota
	RatingUnavailable
	RatingNotFound
	RatingNoExternalID
)

// RatingResult is the outcome of a ratings-API lookup.
type RatingResult struct {
	Status RatingStatus
	Value  float64
}

// Encode flattens the result into the legacy numeric field encoding.
func (r RatingResult) Encode() float64 {
	switch r.Status {
	case RatingUnavailable:
		return ratingUnavailableCode
	case RatingNotFound:
		return ratingNotFoundCode
	case RatingNoExternalID:
		return ratingNoExternalIDCode
	default:
		return r.Value
	}
}

// DecodeRating reverses Encode for values read back from the store.
func DecodeRating(v float64) RatingResult {
	switch v {
	case ratingUnavailableCode:
		return RatingResult{Status: RatingUnavailable}
	case ratingNotFoundCode:
		return RatingResult{Status: RatingNotFound}
	case ratingNoExternalIDCode:
		return RatingResult{Status: RatingNoExternalID}
	default:
		return RatingResult{Status: Rated, Value: v}
	}
}
