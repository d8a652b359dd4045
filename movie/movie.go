package movie

import "catalog/errs"

var (
	ErrInvalidTitle         = errs.Errorf(errs.EINVALID, "movie: title is required")
	ErrInvalidGenre         = errs.Errorf(errs.EINVALID, "movie: genre is required")
	ErrInvalidRating        = errs.Errorf(errs.EINVALID, "movie: rating must be between 0 and 10")
	ErrInvalidStreamingLink = errs.Errorf(errs.EINVALID, "movie: streaming link is required")
	ErrNotFound             = errs.Errorf(errs.ENOTFOUND, "movie not found")
)

// Movie is a catalog record. ID is assigned by the store on creation and is
// opaque to everything above the repository.
type Movie struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	Rating        float64 `json:"rating"`
	StreamingLink string  `json:"streamingLink"`
}

func (m Movie) Validate() error {
	if m.Title == "" {
		return ErrInvalidTitle
	}

	if m.Genre == "" {
		return ErrInvalidGenre
	}

	if m.Rating < 0 || m.Rating > 10 {
		return ErrInvalidRating
	}

	if m.StreamingLink == "" {
		return ErrInvalidStreamingLink
	}

	return nil
}

// Patch is a partial update. Nil fields are left untouched by the store.
type Patch struct {
	Title         *string  `json:"title"`
	Genre         *string  `json:"genre"`
	Rating        *float64 `json:"rating"`
	StreamingLink *string  `json:"streamingLink"`
}

// Validate checks only the supplied fields against the same constraints as
// Movie.Validate. An empty patch is valid and results in a no-op update.
func (p Patch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrInvalidTitle
	}

	if p.Genre != nil && *p.Genre == "" {
		return ErrInvalidGenre
	}

	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 10) {
		return ErrInvalidRating
	}

	if p.StreamingLink != nil && *p.StreamingLink == "" {
		return ErrInvalidStreamingLink
	}

	return nil
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Genre == nil && p.Rating == nil && p.StreamingLink == nil
}
