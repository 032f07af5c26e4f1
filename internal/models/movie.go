package models

import (
	"github.com/google/uuid"
)

// Movie is the aggregate root: its fields plus the reviews it owns.
// Fields are only reachable through accessors and validating setters.
type Movie struct {
	id          uuid.UUID
	title       string
	description string
	director    string
	releaseYear int
	genre       string
	reviews     []*Review
}

// NewMovie validates every field and returns a movie with a fresh id and no reviews.
// The first violated rule is reported.
func NewMovie(title, description, director string, releaseYear int, genre string) (*Movie, error) {
	checks := []error{
		ValidateTitle(title),
		ValidateDescription(description),
		ValidateDirector(director),
		ValidateReleaseYear(releaseYear),
		ValidateGenre(genre),
	}
	for _, err := range checks {
		if err != nil {
			return nil, err
		}
	}

	return &Movie{
		id:          uuid.New(),
		title:       title,
		description: description,
		director:    director,
		releaseYear: releaseYear,
		genre:       genre,
		reviews:     []*Review{},
	}, nil
}

func (m *Movie) ID() uuid.UUID       { return m.id }
func (m *Movie) Title() string       { return m.title }
func (m *Movie) Description() string { return m.description }
func (m *Movie) Director() string    { return m.director }
func (m *Movie) ReleaseYear() int    { return m.releaseYear }

// Genre returns the genre exactly as it was submitted.
func (m *Movie) Genre() string { return m.genre }

func (m *Movie) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	m.title = title
	return nil
}

func (m *Movie) SetDescription(description string) error {
	if err := ValidateDescription(description); err != nil {
		return err
	}
	m.description = description
	return nil
}

func (m *Movie) SetDirector(director string) error {
	if err := ValidateDirector(director); err != nil {
		return err
	}
	m.director = director
	return nil
}

func (m *Movie) SetReleaseYear(year int) error {
	if err := ValidateReleaseYear(year); err != nil {
		return err
	}
	m.releaseYear = year
	return nil
}

func (m *Movie) SetGenre(genre string) error {
	if err := ValidateGenre(genre); err != nil {
		return err
	}
	m.genre = genre
	return nil
}

// Reviews returns the reviews in insertion order. The slice is a copy.
func (m *Movie) Reviews() []*Review {
	out := make([]*Review, len(m.reviews))
	copy(out, m.reviews)
	return out
}

func (m *Movie) ReviewCount() int {
	return len(m.reviews)
}

func (m *Movie) AddReview(review *Review) {
	m.reviews = append(m.reviews, review)
}

func (m *Movie) FindReview(id uuid.UUID) (*Review, bool) {
	for _, r := range m.reviews {
		if r.id == id {
			return r, true
		}
	}
	return nil, false
}

// RemoveReview drops the first review with the given id.
func (m *Movie) RemoveReview(id uuid.UUID) bool {
	for i, r := range m.reviews {
		if r.id == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy, reviews included.
func (m *Movie) Clone() *Movie {
	c := *m
	c.reviews = make([]*Review, len(m.reviews))
	for i, r := range m.reviews {
		c.reviews[i] = r.Clone()
	}
	return &c
}
