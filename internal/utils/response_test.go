package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, handler fiber.Handler) (int, StandardResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body StandardResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessResponse(t *testing.T) {
	status, body := render(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.StatusCreated, "Created", fiber.Map{"id": "x"})
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, fiber.StatusCreated, body.Code)
	assert.Equal(t, "Created", body.Message)
	assert.Equal(t, map[string]interface{}{"id": "x"}, body.Data)
	assert.Empty(t, body.Errors)
}

func TestErrorResponse_Status(t *testing.T) {
	tests := []struct {
		code   int
		status string
	}{
		{code: fiber.StatusBadRequest, status: "error"},
		{code: fiber.StatusNotFound, status: "error"},
		{code: fiber.StatusInternalServerError, status: "fail"},
	}

	for _, tt := range tests {
		code, body := render(t, func(c *fiber.Ctx) error {
			return ErrorResponse(c, tt.code, "boom")
		})
		assert.Equal(t, tt.code, code)
		assert.Equal(t, tt.status, body.Status)
		assert.Equal(t, "boom", body.Message)
		assert.Nil(t, body.Data)
	}
}

func TestValidationErrorResponse(t *testing.T) {
	fields := []FieldError{{Field: "rating", Message: "Rating must be between 0 and 10."}}

	code, body := render(t, func(c *fiber.Ctx) error {
		return ValidationErrorResponse(c, fiber.StatusUnprocessableEntity, "Validation failed", fields)
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, fields, body.Errors)
}
