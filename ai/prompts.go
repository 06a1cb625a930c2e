package ai

const (
	recommendationTokenBudget = 3000
	moviesDataTokenBudget     = 3600
)

// System preambles for the two chat-completion operations. The response
// format is pinned down hard because the reply is parsed structurally.
const (
	movieRecommendationsSystemMessage = "You are a movie recommendation " +
		"engine. The user sends a filter object mapping facets (name, genre, " +
		"actorName, releaseDate, director, country) to lists of values. " +
		"Respond with up to 20 movie titles matching every facet, as a JSON " +
		"array of strings and nothing else, for example: " +
		"['The Matrix', 'Inception']. Do not add commentary."

	moviesDataSystemMessage = "You are a movie database. The user sends a " +
		"comma-separated list of movie titles. For each title respond with " +
		"an object holding these keys: name, genre (array), imdbId, year, " +
		"imdbRating, director (array), plot, runtime (minutes), country " +
		"(array), musicBy (array), actors (object mapping actor name to " +
		"character name), platformAndLinks (object mapping platform to URL). " +
		"Respond with a JSON array of those objects and nothing else."
)
