package routes

import (
	"movie-reviews/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, reviewHandler *handlers.ReviewHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - CRUD operations
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Patch("/:id", movieHandler.PatchMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
	}

	// Review routes - always scoped to a movie
	reviews := movies.Group("/:id/reviews")
	{
		reviews.Get("/", reviewHandler.GetReviews)
		reviews.Post("/", reviewHandler.CreateReview)
		reviews.Get("/:reviewId", reviewHandler.GetReviewByID)
		reviews.Put("/:reviewId", reviewHandler.UpdateReview)
		reviews.Patch("/:reviewId", reviewHandler.PatchReview)
		reviews.Delete("/:reviewId", reviewHandler.DeleteReview)
	}
}
