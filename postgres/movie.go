package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"catalog/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for catalog movies
type MovieModel struct {
	ID            uint    `gorm:"primaryKey"`
	Title         string  `gorm:"not null"`
	Genre         string  `gorm:"not null"`
	Rating        float64 `gorm:"not null"`
	StreamingLink string  `gorm:"column:streaming_link;not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository over Postgres.
type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	return toMovies(models), nil
}

// SearchMovies matches query as a case-insensitive substring of title or
// genre. LIKE metacharacters in the query are treated literally.
func (r *MovieRepository) SearchMovies(ctx context.Context, query string) ([]movie.Movie, error) {
	pattern := "%" + escapeLike(query) + "%"

	var models []MovieModel
	err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR genre ILIKE ?", pattern, pattern).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toMovies(models), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	model := MovieModel{
		Title:         m.Title,
		Genre:         m.Genre,
		Rating:        m.Rating,
		StreamingLink: m.StreamingLink,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return movie.Movie{}, err
	}
	return toMovie(model), nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id string, p movie.Patch) (movie.Movie, error) {
	rowID, err := parseID(id)
	if err != nil {
		return movie.Movie{}, movie.ErrNotFound
	}

	var model MovieModel
	if err := r.db.WithContext(ctx).First(&model, rowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}

	updates := patchColumns(p)
	if len(updates) == 0 {
		return toMovie(model), nil
	}

	if err := r.db.WithContext(ctx).Model(&model).Updates(updates).Error; err != nil {
		return movie.Movie{}, err
	}

	// re-read so the returned record reflects exactly what was persisted
	if err := r.db.WithContext(ctx).First(&model, rowID).Error; err != nil {
		return movie.Movie{}, err
	}
	return toMovie(model), nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) error {
	rowID, err := parseID(id)
	if err != nil {
		return movie.ErrNotFound
	}

	result := r.db.WithContext(ctx).Delete(&MovieModel{}, rowID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return movie.ErrNotFound
	}
	return nil
}

// parseID maps malformed identifiers to a parse error; callers translate that
// into not-found rather than surfacing a 500.
func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

func patchColumns(p movie.Patch) map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Genre != nil {
		updates["genre"] = *p.Genre
	}
	if p.Rating != nil {
		updates["rating"] = *p.Rating
	}
	if p.StreamingLink != nil {
		updates["streaming_link"] = *p.StreamingLink
	}
	return updates
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func toMovie(model MovieModel) movie.Movie {
	return movie.Movie{
		ID:            strconv.FormatUint(uint64(model.ID), 10),
		Title:         model.Title,
		Genre:         model.Genre,
		Rating:        model.Rating,
		StreamingLink: model.StreamingLink,
	}
}

func toMovies(models []MovieModel) []movie.Movie {
	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toMovie(model)
	}
	return movies
}
