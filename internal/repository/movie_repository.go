package repository

import (
	"context"
	"sync"

	"movie-reviews/internal/models"

	"github.com/google/uuid"
)

// MovieRepository holds the canonical movie collection. Reviews live inside
// their movie, so every review mutation goes through Update.
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindAll(ctx context.Context) ([]*models.Movie, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Movie, error)
	// Update runs fn against the stored movie while holding the write lock and
	// returns a snapshot taken after fn, whether or not fn failed.
	Update(ctx context.Context, id uuid.UUID, fn func(movie *models.Movie) error) (*models.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (movies int, reviews int)
}

type movieRepository struct {
	mu     sync.RWMutex
	movies []*models.Movie
}

func NewMovieRepository() MovieRepository {
	return &movieRepository{
		movies: make([]*models.Movie, 0),
	}
}

// indexOf must be called with mu held.
func (r *movieRepository) indexOf(id uuid.UUID) int {
	for i, m := range r.movies {
		if m.ID() == id {
			return i
		}
	}
	return -1
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movies = append(r.movies, movie.Clone())
	return nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*models.Movie, len(r.movies))
	for i, m := range r.movies {
		movies[i] = m.Clone()
	}
	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, models.NewNotFoundError(models.ResourceMovie, id)
	}
	return r.movies[idx].Clone(), nil
}

func (r *movieRepository) Update(ctx context.Context, id uuid.UUID, fn func(movie *models.Movie) error) (*models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, models.NewNotFoundError(models.ResourceMovie, id)
	}

	movie := r.movies[idx]
	err := fn(movie)
	return movie.Clone(), err
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.NewNotFoundError(models.ResourceMovie, id)
	}
	r.movies = append(r.movies[:idx], r.movies[idx+1:]...)
	return nil
}

func (r *movieRepository) Count(ctx context.Context) (int, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := 0
	for _, m := range r.movies {
		reviews += m.ReviewCount()
	}
	return len(r.movies), reviews
}
