package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/movies", s.handleListMovies)
	g.GET("/search", s.handleSearchMovies)
	g.POST("/movies", s.handleAddMovie, s.requireAdmin)
	g.PUT("/movies/:id", s.handleUpdateMovie, s.requireAdmin)
	g.DELETE("/movies/:id", s.handleDeleteMovie, s.requireAdmin)
}

// handleListMovies godoc
// @Summary List Movies
// @Description List every movie in the catalog
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Failure 500 {object} map[string]string
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Case-insensitive substring search over title and genre
// @Tags movies
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} movie.Movie
// @Failure 500 {object} map[string]string
// @Router /api/search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	movies, err := s.MovieService.SearchMovies(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}

// handleAddMovie godoc
// @Summary Add Movie
// @Description Add a movie to the catalog (admin only)
// @Tags movies
// @Accept json
// @Produce json
// @Param payload body AddMovieRequest true "Movie payload"
// @Success 201 {object} movie.Movie
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	var req AddMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	stored, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, stored)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Apply a partial patch to a movie (admin only)
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param payload body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := s.MovieService.UpdateMovie(c.Request().Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Remove a movie from the catalog (admin only)
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if err := s.MovieService.DeleteMovie(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Movie deleted"})
}
