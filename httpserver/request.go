package httpserver

import (
	"catalog/movie"
)

type AddMovieRequest struct {
	Title         string   `json:"title" validate:"required"`
	Genre         string   `json:"genre" validate:"required"`
	Rating        *float64 `json:"rating" validate:"required,gte=0,lte=10"`
	StreamingLink string   `json:"streamingLink" validate:"required,url"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:         r.Title,
		Genre:         r.Genre,
		Rating:        *r.Rating,
		StreamingLink: r.StreamingLink,
	}
}

// UpdateMovieRequest is a partial patch; absent fields stay untouched.
type UpdateMovieRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1"`
	Genre         *string  `json:"genre" validate:"omitempty,min=1"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	StreamingLink *string  `json:"streamingLink" validate:"omitempty,url"`
}

func (r UpdateMovieRequest) ToPatch() movie.Patch {
	return movie.Patch{
		Title:         r.Title,
		Genre:         r.Genre,
		Rating:        r.Rating,
		StreamingLink: r.StreamingLink,
	}
}
