package models

import (
	"github.com/google/uuid"
)

// Review belongs to exactly one movie, recorded by id at construction.
type Review struct {
	id       uuid.UUID
	movieID  uuid.UUID
	analysis string
	rating   int
}

func NewReview(movie *Movie, analysis string, rating int) (*Review, error) {
	if err := ValidateAnalysis(analysis); err != nil {
		return nil, err
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}

	return &Review{
		id:       uuid.New(),
		movieID:  movie.ID(),
		analysis: analysis,
		rating:   rating,
	}, nil
}

func (r *Review) ID() uuid.UUID      { return r.id }
func (r *Review) MovieID() uuid.UUID { return r.movieID }
func (r *Review) Analysis() string   { return r.analysis }
func (r *Review) Rating() int        { return r.rating }

func (r *Review) SetAnalysis(analysis string) error {
	if err := ValidateAnalysis(analysis); err != nil {
		return err
	}
	r.analysis = analysis
	return nil
}

func (r *Review) SetRating(rating int) error {
	if err := ValidateRating(rating); err != nil {
		return err
	}
	r.rating = rating
	return nil
}

func (r *Review) Clone() *Review {
	c := *r
	return &c
}
