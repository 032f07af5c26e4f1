package services

import (
	"context"

	"movie-reviews/internal/models"
	"movie-reviews/internal/repository"

	"github.com/google/uuid"
)

type ReviewInput struct {
	Analysis string
	Rating   int
}

// ReviewUpdate carries the fields to change; nil fields are left untouched.
type ReviewUpdate struct {
	Analysis *string
	Rating   *int
}

// ReviewService scopes every review operation to an existing movie.
type ReviewService interface {
	CreateReview(ctx context.Context, movieID uuid.UUID, input ReviewInput) (*models.Review, error)
	ListReviews(ctx context.Context, movieID uuid.UUID) ([]*models.Review, error)
	GetReviewByID(ctx context.Context, movieID, reviewID uuid.UUID) (*models.Review, error)
	UpdateReview(ctx context.Context, movieID, reviewID uuid.UUID, update ReviewUpdate) (*models.Review, error)
	DeleteReview(ctx context.Context, movieID, reviewID uuid.UUID) error
}

type reviewService struct {
	repo repository.MovieRepository
}

func NewReviewService(repo repository.MovieRepository) ReviewService {
	return &reviewService{
		repo: repo,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, movieID uuid.UUID, input ReviewInput) (*models.Review, error) {
	var created *models.Review
	_, err := s.repo.Update(ctx, movieID, func(m *models.Movie) error {
		review, err := models.NewReview(m, input.Analysis, input.Rating)
		if err != nil {
			return err
		}
		m.AddReview(review)
		created = review.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *reviewService) ListReviews(ctx context.Context, movieID uuid.UUID) ([]*models.Review, error) {
	movie, err := s.repo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return movie.Reviews(), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, movieID, reviewID uuid.UUID) (*models.Review, error) {
	movie, err := s.repo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	review, ok := movie.FindReview(reviewID)
	if !ok {
		return nil, models.NewNotFoundError(models.ResourceReview, reviewID)
	}
	return review, nil
}

// UpdateReview applies analysis then rating. Like UpdateMovie it does not
// roll back an applied field when a later one fails.
func (s *reviewService) UpdateReview(ctx context.Context, movieID, reviewID uuid.UUID, update ReviewUpdate) (*models.Review, error) {
	var updated *models.Review
	_, err := s.repo.Update(ctx, movieID, func(m *models.Movie) error {
		review, ok := m.FindReview(reviewID)
		if !ok {
			return models.NewNotFoundError(models.ResourceReview, reviewID)
		}

		if update.Analysis != nil {
			if err := review.SetAnalysis(*update.Analysis); err != nil {
				return err
			}
		}
		if update.Rating != nil {
			if err := review.SetRating(*update.Rating); err != nil {
				return err
			}
		}
		updated = review.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, movieID, reviewID uuid.UUID) error {
	_, err := s.repo.Update(ctx, movieID, func(m *models.Movie) error {
		if !m.RemoveReview(reviewID) {
			return models.NewNotFoundError(models.ResourceReview, reviewID)
		}
		return nil
	})
	return err
}
