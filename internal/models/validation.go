package models

import (
	"strings"
	"time"
)

const (
	MinReleaseYear = 1888
	MinRating      = 0
	MaxRating      = 10
)

// currentYear is the upper bound for release years. Replaced in tests.
var currentYear = func() int {
	return time.Now().Year()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ValidateTitle(title string) error {
	if isBlank(title) {
		return newValidationError("title", "Title must not be empty.")
	}
	return nil
}

func ValidateDescription(description string) error {
	if isBlank(description) {
		return newValidationError("description", "Description must not be empty.")
	}
	return nil
}

func ValidateDirector(director string) error {
	if isBlank(director) {
		return newValidationError("director", "Director name must not be empty.")
	}
	return nil
}

// ValidateReleaseYear accepts years from the first film (1888) up to the current calendar year.
func ValidateReleaseYear(year int) error {
	if year < MinReleaseYear || year > currentYear() {
		return newValidationError("release_year", "Invalid release year.")
	}
	return nil
}

func ValidateGenre(genre string) error {
	if isBlank(genre) {
		return newValidationError("genre", "Genre must not be empty.")
	}
	if !IsAllowedGenre(genre) {
		return newValidationError("genre", "Invalid genre.")
	}
	return nil
}

func ValidateAnalysis(analysis string) error {
	if isBlank(analysis) {
		return newValidationError("analysis", "Analysis must not be empty.")
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return newValidationError("rating", "Rating must be between 0 and 10.")
	}
	return nil
}
