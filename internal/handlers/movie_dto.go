package handlers

import (
	"movie-reviews/internal/models"
	"movie-reviews/internal/services"

	"github.com/google/uuid"
)

// MovieRequest is the body for creating or fully replacing a movie.
// Pointers let a missing field be told apart from an empty one.
type MovieRequest struct {
	Title       *string `json:"title" validate:"required" example:"Dune"`
	Description *string `json:"description" validate:"required" example:"A noble family becomes embroiled in a war for control over the galaxy's most valuable asset."`
	Director    *string `json:"director" validate:"required" example:"Denis Villeneuve"`
	ReleaseYear *int    `json:"release_year" validate:"required" example:"2021"`
	Genre       *string `json:"genre" validate:"required" example:"Science Fiction"`
}

// MovieUpdateRequest is the body for a partial update; only sent fields change.
type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" example:"Dune: Part One"`
	Description *string `json:"description,omitempty"`
	Director    *string `json:"director,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty" example:"2021"`
	Genre       *string `json:"genre,omitempty" example:"science fiction"`
}

type MovieResponse struct {
	ID          uuid.UUID        `json:"id" example:"9b2f8f5e-3c1a-4f0e-9d1e-2a7c6b5d4e3f"`
	Title       string           `json:"title" example:"Dune"`
	Description string           `json:"description"`
	Director    string           `json:"director" example:"Denis Villeneuve"`
	ReleaseYear int              `json:"release_year" example:"2021"`
	Genre       string           `json:"genre" example:"Science Fiction"`
	Reviews     []ReviewResponse `json:"reviews"`
}

func (r *MovieRequest) toInput() services.MovieInput {
	return services.MovieInput{
		Title:       *r.Title,
		Description: *r.Description,
		Director:    *r.Director,
		ReleaseYear: *r.ReleaseYear,
		Genre:       *r.Genre,
	}
}

func (r *MovieRequest) toUpdate() services.MovieUpdate {
	return services.MovieUpdate{
		Title:       r.Title,
		Description: r.Description,
		Director:    r.Director,
		ReleaseYear: r.ReleaseYear,
		Genre:       r.Genre,
	}
}

func (r *MovieUpdateRequest) toUpdate() services.MovieUpdate {
	return services.MovieUpdate{
		Title:       r.Title,
		Description: r.Description,
		Director:    r.Director,
		ReleaseYear: r.ReleaseYear,
		Genre:       r.Genre,
	}
}

func newMovieResponse(m *models.Movie) MovieResponse {
	reviews := m.Reviews()
	resp := MovieResponse{
		ID:          m.ID(),
		Title:       m.Title(),
		Description: m.Description(),
		Director:    m.Director(),
		ReleaseYear: m.ReleaseYear(),
		Genre:       m.Genre(),
		Reviews:     make([]ReviewResponse, 0, len(reviews)),
	}
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, newReviewResponse(r))
	}
	return resp
}

func newMovieListResponse(movies []*models.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, newMovieResponse(m))
	}
	return out
}
