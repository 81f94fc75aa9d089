package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fedhealth/dashboard-api/internal/api"
	mongodb "github.com/fedhealth/dashboard-api/internal/infrastructure/db/mongo"
	"github.com/fedhealth/dashboard-api/internal/pkg/config"
	"github.com/fedhealth/dashboard-api/pkg/logger"
)

func main() {
	// Local development keeps the Mongo URI in a .env file; in deployment the
	// variables come from the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	e := api.NewRouter(db, logger.Component("api"))

	go func() {
		log.Info().Str("port", cfg.Port).Str("database", cfg.Mongo.Database).Msg("dashboard api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}

// ensureIndexes creates all collection indexes up front, most importantly the
// unique email index that guards concurrent user upserts.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewHospitalRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewMetricRepository(db).EnsureIndexes(ctx)
}
