// Command server runs the design-review API: project and asset management,
// positioned feedback, and client messaging behind a JWT-authenticated HTTP
// interface.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alozievictor/feedbackapp/internal/api"
	"github.com/alozievictor/feedbackapp/internal/infrastructure/config"
	mongodb "github.com/alozievictor/feedbackapp/internal/infrastructure/db/mongo"
	redisdb "github.com/alozievictor/feedbackapp/internal/infrastructure/db/redis"
	"github.com/alozievictor/feedbackapp/internal/infrastructure/storage"
	"github.com/alozievictor/feedbackapp/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger not ready yet, so fail the plain way.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	blobs, err := storage.New(ctx, storage.Config{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
		PublicURL: cfg.Minio.PublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object storage initialisation failed")
	}

	e := api.NewRouter(db, rdb, blobs, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates every collection index the repositories rely on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ensure := range []func(context.Context) error{
		mongodb.NewUserRepository(db).EnsureIndexes,
		mongodb.NewProjectRepository(db).EnsureIndexes,
		mongodb.NewActivityRepository(db).EnsureIndexes,
		mongodb.NewFileRepository(db).EnsureIndexes,
		mongodb.NewFeedbackRepository(db).EnsureIndexes,
		mongodb.NewMessageRepository(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}
	return nil
}
