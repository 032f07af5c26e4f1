package services

import (
	"context"
	"testing"

	"movie-reviews/internal/models"
	"movie-reviews/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func duneInput() MovieInput {
	return MovieInput{
		Title:       "Dune",
		Description: "A noble family becomes embroiled in a war.",
		Director:    "Denis Villeneuve",
		ReleaseYear: 2021,
		Genre:       "Science Fiction",
	}
}

func newServices() (MovieService, ReviewService) {
	repo := repository.NewMovieRepository()
	return NewMovieService(repo), NewReviewService(repo)
}

func TestMovieService_CreateMovie(t *testing.T) {
	ctx := context.Background()
	movies, _ := newServices()

	movie, err := movies.CreateMovie(ctx, duneInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, movie.ID())
	assert.Equal(t, "Dune", movie.Title())
	assert.Equal(t, "Denis Villeneuve", movie.Director())
	assert.Equal(t, 2021, movie.ReleaseYear())
	assert.Equal(t, "Science Fiction", movie.Genre())

	list, err := movies.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, movie.ID(), list[0].ID())
}

func TestMovieService_CreateMovieInvalid(t *testing.T) {
	ctx := context.Background()
	movies, _ := newServices()

	input := duneInput()
	input.Genre = "Sci-Fi"
	movie, err := movies.CreateMovie(ctx, input)
	assert.Nil(t, movie)
	assert.True(t, models.IsValidation(err))

	list, err := movies.ListMovies(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMovieService_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	movies, _ := newServices()

	var ids []uuid.UUID
	for _, title := range []string{"Alien", "Heat", "Up"} {
		input := duneInput()
		input.Title = title
		m, err := movies.CreateMovie(ctx, input)
		require.NoError(t, err)
		ids = append(ids, m.ID())
	}

	list, err := movies.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, m := range list {
		assert.Equal(t, ids[i], m.ID())
	}
}

func TestMovieService_GetMovieByIDNotFound(t *testing.T) {
	movies, _ := newServices()

	_, err := movies.GetMovieByID(context.Background(), uuid.New())
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, models.ResourceMovie, nf.Resource)
}

func TestMovieService_UpdateMovie(t *testing.T) {
	tests := []struct {
		name   string
		update MovieUpdate
		check  func(t *testing.T, m *models.Movie)
	}{
		{
			name:   "title only",
			update: MovieUpdate{Title: strPtr("Dune: Part One")},
			check: func(t *testing.T, m *models.Movie) {
				assert.Equal(t, "Dune: Part One", m.Title())
				assert.Equal(t, "A noble family becomes embroiled in a war.", m.Description())
				assert.Equal(t, "Denis Villeneuve", m.Director())
				assert.Equal(t, 2021, m.ReleaseYear())
				assert.Equal(t, "Science Fiction", m.Genre())
			},
		},
		{
			name:   "genre keeps submitted casing",
			update: MovieUpdate{Genre: strPtr("adventure")},
			check: func(t *testing.T, m *models.Movie) {
				assert.Equal(t, "adventure", m.Genre())
				assert.Equal(t, "Dune", m.Title())
			},
		},
		{
			name: "every field",
			update: MovieUpdate{
				Title:       strPtr("Arrival"),
				Description: strPtr("Linguists meet aliens."),
				Director:    strPtr("Villeneuve"),
				ReleaseYear: intPtr(2016),
				Genre:       strPtr("Drama"),
			},
			check: func(t *testing.T, m *models.Movie) {
				assert.Equal(t, "Arrival", m.Title())
				assert.Equal(t, "Linguists meet aliens.", m.Description())
				assert.Equal(t, "Villeneuve", m.Director())
				assert.Equal(t, 2016, m.ReleaseYear())
				assert.Equal(t, "Drama", m.Genre())
			},
		},
		{
			name:   "empty update changes nothing",
			update: MovieUpdate{},
			check: func(t *testing.T, m *models.Movie) {
				assert.Equal(t, "Dune", m.Title())
				assert.Equal(t, 2021, m.ReleaseYear())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			movies, _ := newServices()
			created, err := movies.CreateMovie(ctx, duneInput())
			require.NoError(t, err)

			updated, err := movies.UpdateMovie(ctx, created.ID(), tt.update)
			require.NoError(t, err)
			assert.Equal(t, created.ID(), updated.ID())
			tt.check(t, updated)

			stored, err := movies.GetMovieByID(ctx, created.ID())
			require.NoError(t, err)
			tt.check(t, stored)

			// reapplying the same update is idempotent
			again, err := movies.UpdateMovie(ctx, created.ID(), tt.update)
			require.NoError(t, err)
			tt.check(t, again)
		})
	}
}

func TestMovieService_UpdateMovieRejectsInvalidYear(t *testing.T) {
	ctx := context.Background()
	movies, _ := newServices()
	created, err := movies.CreateMovie(ctx, duneInput())
	require.NoError(t, err)

	_, err = movies.UpdateMovie(ctx, created.ID(), MovieUpdate{ReleaseYear: intPtr(1800)})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "release_year", ve.Field)

	stored, err := movies.GetMovieByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, 2021, stored.ReleaseYear())
}

func TestMovieService_UpdateMovieIsNotTransactional(t *testing.T) {
	ctx := context.Background()
	movies, _ := newServices()
	created, err := movies.CreateMovie(ctx, duneInput())
	require.NoError(t, err)

	_, err = movies.UpdateMovie(ctx, created.ID(), MovieUpdate{
		Title:       strPtr("Dune (2021)"),
		ReleaseYear: intPtr(3000),
		Genre:       strPtr("Drama"),
	})
	require.True(t, models.IsValidation(err))

	stored, err := movies.GetMovieByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Dune (2021)", stored.Title(), "fields before the failing one stay applied")
	assert.Equal(t, 2021, stored.ReleaseYear())
	assert.Equal(t, "Science Fiction", stored.Genre(), "fields after the failing one are not applied")
}

func TestMovieService_UpdateMovieNotFound(t *testing.T) {
	movies, _ := newServices()

	_, err := movies.UpdateMovie(context.Background(), uuid.New(), MovieUpdate{Title: strPtr("x")})
	assert.True(t, models.IsNotFound(err))
}

func TestMovieService_DeleteMovie(t *testing.T) {
	ctx := context.Background()
	movies, _ := newServices()
	created, err := movies.CreateMovie(ctx, duneInput())
	require.NoError(t, err)

	require.NoError(t, movies.DeleteMovie(ctx, created.ID()))

	list, err := movies.ListMovies(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = movies.DeleteMovie(ctx, created.ID())
	assert.True(t, models.IsNotFound(err))
}
