package movie

import (
	"context"
	"strings"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	SearchMovies(ctx context.Context, query string) ([]Movie, error)
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, id string, p Patch) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	SearchMovies(ctx context.Context, query string) ([]Movie, error)
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, id string, p Patch) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

// SearchMovies matches query as a case-insensitive substring of title or
// genre. A blank query yields an empty result without touching the store.
func (uc *Usecase) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Movie{}, nil
	}
	return uc.r.SearchMovies(ctx, query)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.CreateMovie(ctx, m)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id string, p Patch) (Movie, error) {
	if err := p.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateMovie(ctx, id, p)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	return uc.r.DeleteMovie(ctx, id)
}
