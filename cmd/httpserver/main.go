package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"catalog/httpserver"
	"catalog/mongo"
	"catalog/movie"
	"catalog/pkg/config"
	"catalog/pkg/sentry"
	"catalog/postgres"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	// the store connection is opened once and shared by every request;
	// the process does not serve without it
	repo, err := openRepository(cfg)
	if err != nil {
		slog.Error("Cannot open store connection", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}

	server := httpserver.Default(cfg)
	server.MovieService = movie.NewUsecase(repo)
	if cfg.Port != 0 {
		server.Addr = fmt.Sprintf(":%d", cfg.Port)
	}

	slog.Info("server started!", "addr", server.Addr, "driver", cfg.DB.Driver)
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
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
