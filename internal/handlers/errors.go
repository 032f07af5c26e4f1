package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"movie-reviews/internal/models"
	"movie-reviews/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var notFoundMessages = map[string]string{
	models.ResourceMovie:  "Movie not found.",
	models.ResourceReview: "Review not found.",
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindBody parses the JSON body into req and runs struct validation.
// It writes the error response itself and reports whether the caller may go on.
func bindBody(c *fiber.Ctx, v *validator.Validate, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := v.StructCtx(c.UserContext(), req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}
		fields := make([]utils.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, utils.FieldError{
				Field:   fe.Field(),
				Message: fieldErrorMessage(fe),
			})
		}
		return false, utils.ValidationErrorResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", fields)
	}
	return true, nil
}

func fieldErrorMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required.", fe.Field())
	}
	return fmt.Sprintf("%s failed on the '%s' rule.", fe.Field(), fe.Tag())
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError translates a service failure into a response.
func respondServiceError(c *fiber.Ctx, logger *logrus.Logger, err error, msg string) error {
	var notFound *models.NotFoundError
	var invalid *models.ValidationError

	switch {
	case errors.As(err, &notFound):
		logger.WithFields(logrus.Fields{
			"resource": notFound.Resource,
			"id":       notFound.ID.String(),
			"path":     c.Path(),
		}).Debug(msg)
		message, ok := notFoundMessages[notFound.Resource]
		if !ok {
			message = "Resource not found."
		}
		return utils.ErrorResponse(c, fiber.StatusNotFound, message)
	case errors.As(err, &invalid):
		logger.WithFields(logrus.Fields{
			"field": invalid.Field,
			"path":  c.Path(),
		}).Debug(msg)
		return utils.ValidationErrorResponse(c, fiber.StatusUnprocessableEntity, invalid.Message, []utils.FieldError{
			{Field: invalid.Field, Message: invalid.Message},
		})
	default:
		logger.WithError(err).WithField("path", c.Path()).Error(msg)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, msg)
	}
}
