package handlers

import (
	"movie-reviews/internal/services"
	"movie-reviews/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service  services.MovieService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewMovieHandler(service services.MovieService, validate *validator.Validate, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get every movie with its reviews, in creation order
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]MovieResponse} "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.UserContext())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", newMovieListResponse(movies))
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie by its ID
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Success 200 {object} utils.StandardResponse{data=MovieResponse} "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to get movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", newMovieResponse(movie))
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Create a new movie entry; every field is required
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse{data=MovieResponse} "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 422 {object} utils.StandardResponse "Validation failed"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	movie, err := h.service.CreateMovie(c.UserContext(), req.toInput())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to create movie")
	}

	h.logger.WithFields(logrus.Fields{
		"id":    movie.ID().String(),
		"title": movie.Title(),
	}).Info("Movie created")

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", newMovieResponse(movie))
}

// UpdateMovie godoc
// @Summary Replace a movie
// @Description Fully update an existing movie; every field is required
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Param movie body MovieRequest true "Movie request object"
// @Success 200 {object} utils.StandardResponse{data=MovieResponse} "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 422 {object} utils.StandardResponse "Validation failed"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	movie, err := h.service.UpdateMovie(c.UserContext(), id, req.toUpdate())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", newMovieResponse(movie))
}

// PatchMovie godoc
// @Summary Partially update a movie
// @Description Update only the fields present in the body
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Param movie body MovieUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse{data=MovieResponse} "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 422 {object} utils.StandardResponse "Validation failed"
// @Router /movies/{id} [patch]
func (h *MovieHandler) PatchMovie(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieUpdateRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	movie, err := h.service.UpdateMovie(c.UserContext(), id, req.toUpdate())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", newMovieResponse(movie))
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie and all of its reviews
// @Tags movies
// @Param id path string true "Movie ID" format(uuid)
// @Success 204 "Movie deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(c.UserContext(), id); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete movie")
	}

	h.logger.WithField("id", id.String()).Info("Movie deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
