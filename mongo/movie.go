package mongo

import (
	"context"
	"errors"
	"regexp"

	"catalog/movie"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type movieDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Genre         string             `bson:"genre"`
	Rating        float64            `bson:"rating"`
	StreamingLink string             `bson:"streamingLink"`
}

// MovieRepository implements movie.Repository over one Mongo collection.
type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(col *mongo.Collection) *MovieRepository {
	return &MovieRepository{col: col}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	return r.find(ctx, bson.M{})
}

// SearchMovies matches query as a case-insensitive substring of title or
// genre. The query is quoted so regex metacharacters are literal.
func (r *MovieRepository) SearchMovies(ctx context.Context, query string) ([]movie.Movie, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"genre": pattern},
	}}
	return r.find(ctx, filter)
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	doc := movieDoc{
		Title:         m.Title,
		Genre:         m.Genre,
		Rating:        m.Rating,
		StreamingLink: m.StreamingLink,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return movie.Movie{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return movie.Movie{}, errors.New("mongo: unexpected inserted id type")
	}
	doc.ID = oid
	return toMovie(doc), nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id string, p movie.Patch) (movie.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return movie.Movie{}, movie.ErrNotFound
	}

	set := patchFields(p)
	if len(set) > 0 {
		res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return movie.Movie{}, err
		}
		if res.MatchedCount == 0 {
			return movie.Movie{}, movie.ErrNotFound
		}
	}

	var doc movieDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return movie.Movie{}, movie.ErrNotFound
		}
		return movie.Movie{}, err
	}
	return toMovie(doc), nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return movie.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return movie.ErrNotFound
	}
	return nil
}

func (r *MovieRepository) find(ctx context.Context, filter bson.M) ([]movie.Movie, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	movies := []movie.Movie{}
	for cur.Next(ctx) {
		var doc movieDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		movies = append(movies, toMovie(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

func patchFields(p movie.Patch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Genre != nil {
		set["genre"] = *p.Genre
	}
	if p.Rating != nil {
		set["rating"] = *p.Rating
	}
	if p.StreamingLink != nil {
		set["streamingLink"] = *p.StreamingLink
	}
	return set
}

func toMovie(doc movieDoc) movie.Movie {
	return movie.Movie{
		ID:            doc.ID.Hex(),
		Title:         doc.Title,
		Genre:         doc.Genre,
		Rating:        doc.Rating,
		StreamingLink: doc.StreamingLink,
	}
}
