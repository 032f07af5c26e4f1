package handlers

import (
	"movie-reviews/internal/models"
	"movie-reviews/internal/services"

	"github.com/google/uuid"
)

// ReviewRequest is the body for creating or fully replacing a review.
type ReviewRequest struct {
	Analysis *string `json:"analysis" validate:"required" example:"Visually stunning"`
	Rating   *int    `json:"rating" validate:"required" example:"9"`
}

type ReviewUpdateRequest struct {
	Analysis *string `json:"analysis,omitempty" example:"Slow second half"`
	Rating   *int    `json:"rating,omitempty" example:"7"`
}

type ReviewResponse struct {
	ID       uuid.UUID `json:"id" example:"4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"`
	MovieID  uuid.UUID `json:"movie_id" example:"9b2f8f5e-3c1a-4f0e-9d1e-2a7c6b5d4e3f"`
	Analysis string    `json:"analysis" example:"Visually stunning"`
	Rating   int       `json:"rating" example:"9"`
}

func (r *ReviewRequest) toInput() services.ReviewInput {
	return services.ReviewInput{
		Analysis: *r.Analysis,
		Rating:   *r.Rating,
	}
}

func (r *ReviewRequest) toUpdate() services.ReviewUpdate {
	return services.ReviewUpdate{
		Analysis: r.Analysis,
		Rating:   r.Rating,
	}
}

func (r *ReviewUpdateRequest) toUpdate() services.ReviewUpdate {
	return services.ReviewUpdate{
		Analysis: r.Analysis,
		Rating:   r.Rating,
	}
}

func newReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:       r.ID(),
		MovieID:  r.MovieID(),
		Analysis: r.Analysis(),
		Rating:   r.Rating(),
	}
}

func newReviewListResponse(reviews []*models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewResponse(r))
	}
	return out
}
