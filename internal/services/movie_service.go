package services

import (
	"context"

	"movie-reviews/internal/models"
	"movie-reviews/internal/repository"

	"github.com/google/uuid"
)

// MovieInput carries every field needed to create a movie.
type MovieInput struct {
	Title       string
	Description string
	Director    string
	ReleaseYear int
	Genre       string
}

// MovieUpdate carries the fields to change; nil fields are left untouched.
type MovieUpdate struct {
	Title       *string
	Description *string
	Director    *string
	ReleaseYear *int
	Genre       *string
}

type MovieService interface {
	CreateMovie(ctx context.Context, input MovieInput) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]*models.Movie, error)
	GetMovieByID(ctx context.Context, id uuid.UUID) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, update MovieUpdate) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

type movieService struct {
	repo repository.MovieRepository
}

func NewMovieService(repo repository.MovieRepository) MovieService {
	return &movieService{
		repo: repo,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, input MovieInput) (*models.Movie, error) {
	movie, err := models.NewMovie(input.Title, input.Description, input.Director, input.ReleaseYear, input.Genre)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]*models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) GetMovieByID(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateMovie applies the present fields one by one through the entity
// setters. A failing field stops the update; fields applied before it stay.
func (s *movieService) UpdateMovie(ctx context.Context, id uuid.UUID, update MovieUpdate) (*models.Movie, error) {
	movie, err := s.repo.Update(ctx, id, func(m *models.Movie) error {
		return applyMovieUpdate(m, update)
	})
	if err != nil {
		return nil, err
	}
	return movie, nil
}

func applyMovieUpdate(m *models.Movie, update MovieUpdate) error {
	if update.Title != nil {
		if err := m.SetTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Description != nil {
		if err := m.SetDescription(*update.Description); err != nil {
			return err
		}
	}
	if update.Director != nil {
		if err := m.SetDirector(*update.Director); err != nil {
			return err
		}
	}
	if update.ReleaseYear != nil {
		if err := m.SetReleaseYear(*update.ReleaseYear); err != nil {
			return err
		}
	}
	if update.Genre != nil {
		if err := m.SetGenre(*update.Genre); err != nil {
			return err
		}
	}
	return nil
}

// DeleteMovie removes the movie together with all of its reviews.
func (s *movieService) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
