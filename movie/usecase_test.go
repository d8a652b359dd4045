package movie_test

import (
	"context"
	"errors"
	"testing"

	"catalog/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) SearchMovies(ctx context.Context, query string) ([]movie.Movie, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) CreateMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) UpdateMovie(ctx context.Context, id string, p movie.Patch) (movie.Movie, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) DeleteMovie(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestListMovies(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should return all movies", func(t *testing.T) {
		movies := []movie.Movie{
			{ID: "1", Title: "The Matrix", Genre: "Sci-Fi", Rating: 9, StreamingLink: "http://example.com/matrix"},
			{ID: "2", Title: "Heat", Genre: "Crime", Rating: 8.3, StreamingLink: "http://example.com/heat"},
		}
		r.On("AllMovies", mock.Anything).Return(movies, nil).Once()

		result, err := uc.ListMovies(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, movies, result)
		r.AssertExpectations(t)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		r.On("AllMovies", mock.Anything).Return([]movie.Movie{}, errors.New("connection refused")).Once()

		_, err := uc.ListMovies(context.Background())

		assert.Error(t, err)
		r.AssertExpectations(t)
	})
}

func TestSearchMovies(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should pass trimmed query to repository", func(t *testing.T) {
		movies := []movie.Movie{
			{ID: "1", Title: "The Matrix", Genre: "Sci-Fi", Rating: 9, StreamingLink: "http://example.com/matrix"},
		}
		r.On("SearchMovies", mock.Anything, "sci").Return(movies, nil).Once()

		result, err := uc.SearchMovies(context.Background(), "  sci ")

		assert.NoError(t, err)
		assert.Equal(t, movies, result)
		r.AssertExpectations(t)
	})

	t.Run("blank query returns empty result without a store call", func(t *testing.T) {
		for _, query := range []string{"", "   "} {
			result, err := uc.SearchMovies(context.Background(), query)

			assert.NoError(t, err)
			assert.Empty(t, result)
			assert.NotNil(t, result)
		}
		r.AssertNotCalled(t, "SearchMovies")
	})
}

func TestAddMovie(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should persist a valid movie", func(t *testing.T) {
		m := validMovie()
		stored := m
		stored.ID = "42"
		r.On("CreateMovie", mock.Anything, m).Return(stored, nil).Once()

		result, err := uc.AddMovie(context.Background(), m)

		assert.NoError(t, err)
		assert.Equal(t, stored, result)
		r.AssertExpectations(t)
	})

	t.Run("should reject invalid input without a store call", func(t *testing.T) {
		m := validMovie()
		m.Rating = 12

		_, err := uc.AddMovie(context.Background(), m)

		assert.Equal(t, movie.ErrInvalidRating, err)
		r.AssertNotCalled(t, "CreateMovie")
	})
}

func TestUpdateMovie(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)
	rating := 8.5

	t.Run("should apply a partial patch", func(t *testing.T) {
		p := movie.Patch{Rating: &rating}
		updated := validMovie()
		updated.ID = "42"
		updated.Rating = rating
		r.On("UpdateMovie", mock.Anything, "42", p).Return(updated, nil).Once()

		result, err := uc.UpdateMovie(context.Background(), "42", p)

		assert.NoError(t, err)
		assert.Equal(t, updated, result)
		r.AssertExpectations(t)
	})

	t.Run("should reject an invalid patch without a store call", func(t *testing.T) {
		bad := -1.0
		_, err := uc.UpdateMovie(context.Background(), "42", movie.Patch{Rating: &bad})

		assert.Equal(t, movie.ErrInvalidRating, err)
		r.AssertNotCalled(t, "UpdateMovie")
	})

	t.Run("should surface not found", func(t *testing.T) {
		p := movie.Patch{Rating: &rating}
		r.On("UpdateMovie", mock.Anything, "missing", p).Return(movie.Movie{}, movie.ErrNotFound).Once()

		_, err := uc.UpdateMovie(context.Background(), "missing", p)

		assert.Equal(t, movie.ErrNotFound, err)
		r.AssertExpectations(t)
	})
}

func TestDeleteMovie(t *testing.T) {
	r := new(MockMovieRepository)
	uc := movie.NewUsecase(r)

	t.Run("should delete an existing movie", func(t *testing.T) {
		r.On("DeleteMovie", mock.Anything, "42").Return(nil).Once()

		assert.NoError(t, uc.DeleteMovie(context.Background(), "42"))
		r.AssertExpectations(t)
	})

	t.Run("should surface not found", func(t *testing.T) {
		r.On("DeleteMovie", mock.Anything, "missing").Return(movie.ErrNotFound).Once()

		assert.Equal(t, movie.ErrNotFound, uc.DeleteMovie(context.Background(), "missing"))
		r.AssertExpectations(t)
	})
}
