package handlers

import (
	"movie-reviews/internal/services"
	"movie-reviews/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service  services.ReviewService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, validate *validator.Validate, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validate,
		logger:   logger,
	}
}

// reviewPath parses both ids; on failure the error response is already written.
func (h *ReviewHandler) reviewPath(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool, error) {
	movieID, ok := parseUUIDParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	reviewID, ok := parseUUIDParam(c, "reviewId")
	if !ok {
		return uuid.Nil, uuid.Nil, false, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}
	return movieID, reviewID, true, nil
}

// CreateReview godoc
// @Summary Create a review
// @Description Add a review to an existing movie
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Param review body ReviewRequest true "Review request object"
// @Success 201 {object} utils.StandardResponse{data=ReviewResponse} "Review created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 422 {object} utils.StandardResponse "Validation failed"
// @Router /movies/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	movieID, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req ReviewRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	review, err := h.service.CreateReview(c.UserContext(), movieID, req.toInput())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to create review")
	}

	h.logger.WithFields(logrus.Fields{
		"id":       review.ID().String(),
		"movie_id": movieID.String(),
	}).Info("Review created")

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", newReviewResponse(review))
}

// GetReviews godoc
// @Summary List reviews of a movie
// @Description Get every review of a movie, in creation order
// @Tags reviews
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Success 200 {object} utils.StandardResponse{data=[]ReviewResponse} "List of reviews"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) GetReviews(c *fiber.Ctx) error {
	movieID, ok := parseUUIDParam(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	reviews, err := h.service.ListReviews(c.UserContext(), movieID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to list reviews")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", newReviewListResponse(reviews))
}

// GetReviewByID godoc
// @Summary Get a review
// @Description Get a single review of a movie
// @Tags reviews
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Param reviewId path string true "Review ID" format(uuid)
// @Success 200 {object} utils.StandardResponse{data=ReviewResponse} "Review details"
// @Failure 400 {object} utils.StandardResponse "Invalid ID"
// @Failure 404 {object} utils.StandardResponse "Movie or review not found"
// @Router /movies/{id}/reviews/{reviewId} [get]
func (h *ReviewHandler) GetReviewByID(c *fiber.Ctx) error {
	movieID, reviewID, ok, err := h.reviewPath(c)
	if !ok {
		return err
	}

	review, err := h.service.GetReviewByID(c.UserContext(), movieID, reviewID)
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to get review")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review retrieved successfully", newReviewResponse(review))
}

// UpdateReview godoc
// @Summary Replace a review
// @Description Fully update a review; every field is required
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Param reviewId path string true "Review ID" format(uuid)
// @Param review body ReviewRequest true "Review request object"
// @Success 200 {object} utils.StandardResponse{data=ReviewResponse} "Review updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie or review not found"
// @Failure 422 {object} utils.StandardResponse "Validation failed"
// @Router /movies/{id}/reviews/{reviewId} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	movieID, reviewID, ok, err := h.reviewPath(c)
	if !ok {
		return err
	}

	var req ReviewRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	review, err := h.service.UpdateReview(c.UserContext(), movieID, reviewID, req.toUpdate())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update review")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", newReviewResponse(review))
}

// PatchReview godoc
// @Summary Partially update a review
// @Description Update only the fields present in the body
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Movie ID" format(uuid)
// @Param reviewId path string true "Review ID" format(uuid)
// @Param review body ReviewUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse{data=ReviewResponse} "Review updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie or review not found"
// @Failure 422 {object} utils.StandardResponse "Validation failed"
// @Router /movies/{id}/reviews/{reviewId} [patch]
func (h *ReviewHandler) PatchReview(c *fiber.Ctx) error {
	movieID, reviewID, ok, err := h.reviewPath(c)
	if !ok {
		return err
	}

	var req ReviewUpdateRequest
	if ok, err := bindBody(c, h.validate, &req); !ok {
		return err
	}

	review, err := h.service.UpdateReview(c.UserContext(), movieID, reviewID, req.toUpdate())
	if err != nil {
		return respondServiceError(c, h.logger, err, "Failed to update review")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", newReviewResponse(review))
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Remove a review from its movie
// @Tags reviews
// @Param id path string true "Movie ID" format(uuid)
// @Param reviewId path string true "Review ID" format(uuid)
// @Success 204 "Review deleted"
// @Failure 400 {object} utils.StandardResponse "Invalid ID"
// @Failure 404 {object} utils.StandardResponse "Movie or review not found"
// @Router /movies/{id}/reviews/{reviewId} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	movieID, reviewID, ok, err := h.reviewPath(c)
	if !ok {
		return err
	}

	if err := h.service.DeleteReview(c.UserContext(), movieID, reviewID); err != nil {
		return respondServiceError(c, h.logger, err, "Failed to delete review")
	}

	h.logger.WithFields(logrus.Fields{
		"id":       reviewID.String(),
		"movie_id": movieID.String(),
	}).Info("Review deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
