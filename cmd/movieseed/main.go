package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"catalog/mongo"
	"catalog/movie"
	"catalog/pkg/config"
	"catalog/postgres"

	_ "github.com/lib/pq"
)

// movieseed bulk-imports catalog rows from a CSV with the header
// title,genre,rating,streaming_link. Rows go through the usecase so seed
// data passes the same validation as API writes.
func main() {
	var (
		csvPath string
		csvURL  string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to the seed CSV (skip download)")
	flag.StringVar(&csvURL, "url", "", "URL of the seed CSV")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	repo, err := openRepository(cfg)
	if err != nil {
		slog.Error("cannot open store connection", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}

	cleanup := func() {}
	if csvPath == "" {
		path, c, err := download(csvURL)
		if err != nil {
			slog.Error("failed to download seed file", "error", err)
			os.Exit(1)
		}
		csvPath = path
		cleanup = c
	}
	defer cleanup()

	count, err := importMovies(context.Background(), movie.NewUsecase(repo), csvPath, limit)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count)
}

func openRepository(cfg *config.Config) (movie.Repository, error) {
	switch cfg.DB.Driver {
	case config.DriverMongo:
		client, err := mongo.Connect(context.Background(), cfg.Mongo.URI, 10*time.Second)
		if err != nil {
			return nil, err
		}
		col := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return mongo.NewMovieRepository(col), nil
	case config.DriverPostgres:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     fmt.Sprintf("%d", cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, err
		}
		return postgres.NewMovieRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DB.Driver)
	}
}

func download(url string) (string, func(), error) {
	if url == "" {
		return "", func() {}, errors.New("either -csv or -url is required")
	}

	tmpDir, err := os.MkdirTemp("", "movieseed-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	dest := filepath.Join(tmpDir, "movies.csv")
	if err := downloadFile(url, dest); err != nil {
		cleanup()
		return "", func() {}, err
	}

	return dest, cleanup, nil
}

func downloadFile(url, dest string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) // nolint: noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func importMovies(ctx context.Context, svc movie.Service, csvPath string, limit int) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	idxTitle, idxGenre, idxRating, idxLink, err := parseHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}

		rating, err := strconv.ParseFloat(record[idxRating], 64)
		if err != nil {
			return count, fmt.Errorf("row %d: bad rating %q: %w", count+1, record[idxRating], err)
		}

		_, err = svc.AddMovie(ctx, movie.Movie{
			Title:         record[idxTitle],
			Genre:         record[idxGenre],
			Rating:        rating,
			StreamingLink: record[idxLink],
		})
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+1, err)
		}
		count++
	}

	return count, nil
}

func parseHeader(reader *csv.Reader) (idxTitle, idxGenre, idxRating, idxLink int, err error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("read header: %w", err)
	}

	idxTitle, idxGenre, idxRating, idxLink = -1, -1, -1, -1
	for i, name := range header {
		switch name {
		case "title":
			idxTitle = i
		case "genre":
			idxGenre = i
		case "rating":
			idxRating = i
		case "streaming_link":
			idxLink = i
		}
	}

	if idxTitle < 0 || idxGenre < 0 || idxRating < 0 || idxLink < 0 {
		return 0, 0, 0, 0, errors.New("header must contain title, genre, rating, streaming_link")
	}
	return idxTitle, idxGenre, idxRating, idxLink, nil
}
