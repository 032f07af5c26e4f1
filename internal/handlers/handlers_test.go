package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-reviews/internal/handlers"
	"movie-reviews/internal/repository"
	"movie-reviews/internal/routes"
	"movie-reviews/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const duneBody = `{"title":"Dune","description":"A noble family becomes embroiled in a war.","director":"Denis Villeneuve","release_year":2021,"genre":"Science Fiction"}`

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

type movieData struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Director    string       `json:"director"`
	ReleaseYear int          `json:"release_year"`
	Genre       string       `json:"genre"`
	Reviews     []reviewData `json:"reviews"`
}

type reviewData struct {
	ID       string `json:"id"`
	MovieID  string `json:"movie_id"`
	Analysis string `json:"analysis"`
	Rating   int    `json:"rating"`
}

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := repository.NewMovieRepository()
	validate := handlers.NewValidator()
	movieHandler := handlers.NewMovieHandler(services.NewMovieService(repo), validate, logger)
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(repo), validate, logger)

	app := fiber.New()
	routes.Setup(app, movieHandler, reviewHandler)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func createDune(t *testing.T, app *fiber.App) movieData {
	t.Helper()
	status, env := do(t, app, http.MethodPost, "/api/v1/movies", duneBody)
	require.Equal(t, http.StatusCreated, status, env.Message)

	var m movieData
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m
}

func createReview(t *testing.T, app *fiber.App, movieID, body string) reviewData {
	t.Helper()
	status, env := do(t, app, http.MethodPost, "/api/v1/movies/"+movieID+"/reviews", body)
	require.Equal(t, http.StatusCreated, status, env.Message)

	var r reviewData
	require.NoError(t, json.Unmarshal(env.Data, &r))
	return r
}
