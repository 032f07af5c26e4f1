package models

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllowedGenres is the fixed set of genres a movie may carry, in title case.
var AllowedGenres = []string{
	"Action", "Adventure", "Comedy", "Drama", "Horror",
	"Thriller", "Science Fiction", "Fantasy", "Romance",
	"Animation", "Documentary", "Musical", "Western",
	"Crime", "War",
}

var allowedGenreSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedGenres))
	for _, g := range AllowedGenres {
		set[g] = struct{}{}
	}
	return set
}()

// NormalizeGenre title-cases a genre the way it is compared against AllowedGenres.
func NormalizeGenre(genre string) string {
	return cases.Title(language.Und).String(genre)
}

func IsAllowedGenre(genre string) bool {
	_, ok := allowedGenreSet[NormalizeGenre(genre)]
	return ok
}
