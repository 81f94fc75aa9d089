package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
	mongodb "github.com/fedhealth/dashboard-api/internal/infrastructure/db/mongo"
	"github.com/fedhealth/dashboard-api/internal/pkg/config"
	"github.com/fedhealth/dashboard-api/pkg/logger"
)

// Seeds the database with illustrative fixture data: 15 hospitals and the
// six completed training rounds the dashboard charts were designed around.
// Existing hospital and metric data is dropped first; users are left alone.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})
	log := logger.Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	log.Info().Msg("clearing existing data")
	if err := db.Collection("hospitals").Drop(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to drop hospitals")
	}
	if err := db.Collection("performance_metrics").Drop(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to drop performance metrics")
	}

	hospitals := mongodb.NewHospitalRepository(db)
	now := time.Now().UTC()
	for _, h := range fixtureHospitals {
		h.JoinedAt = now
		if _, err := hospitals.Insert(ctx, &h); err != nil {
			log.Fatal().Err(err).Str("name", h.Name).Msg("failed to insert hospital")
		}
	}
	log.Info().Int("count", len(fixtureHospitals)).Msg("hospitals created")

	metrics := mongodb.NewMetricRepository(db)
	for _, m := range fixtureMetrics {
		m.CreatedAt = now
		if _, err := metrics.Insert(ctx, &m); err != nil {
			log.Fatal().Err(err).Int("round", m.RoundNumber).Msg("failed to insert metric")
		}
	}
	log.Info().Int("count", len(fixtureMetrics)).Msg("performance metrics created")

	log.Info().Msg("database seeded successfully")
}

var fixtureHospitals = []domain.Hospital{
	{Name: "General Hospital", Location: "New York", IsActive: true, DataPoints: 15000},
	{Name: "City Medical Center", Location: "Los Angeles", IsActive: true, DataPoints: 12000},
	{Name: "Regional Health", Location: "Chicago", IsActive: true, DataPoints: 18000},
	{Name: "Metro Hospital", Location: "Houston", IsActive: false, DataPoints: 8000},
	{Name: "University Medical", Location: "Boston", IsActive: true, DataPoints: 22000},
	{Name: "Central Hospital", Location: "Phoenix", IsActive: true, DataPoints: 14000},
	{Name: "Valley Health", Location: "San Francisco", IsActive: true, DataPoints: 16000},
	{Name: "Community Medical", Location: "Seattle", IsActive: true, DataPoints: 11000},
	{Name: "Memorial Hospital", Location: "Denver", IsActive: true, DataPoints: 13000},
	{Name: "St. Mary's Hospital", Location: "Miami", IsActive: true, DataPoints: 17000},
	{Name: "Children's Hospital", Location: "Atlanta", IsActive: true, DataPoints: 9000},
	{Name: "Veterans Medical", Location: "Dallas", IsActive: true, DataPoints: 20000},
	{Name: "Riverside Hospital", Location: "Portland", IsActive: false, DataPoints: 7000},
	{Name: "Mountain View Medical", Location: "Salt Lake City", IsActive: false, DataPoints: 6000},
	{Name: "Coastal Health", Location: "San Diego", IsActive: true, DataPoints: 15500},
}

var fixtureMetrics = []domain.PerformanceMetric{
	{RoundNumber: 1, Accuracy: 0.72, F1Score: 0.68, ParticipatingHospitals: 8, TotalDataPoints: 95000},
	{RoundNumber: 2, Accuracy: 0.75, F1Score: 0.71, ParticipatingHospitals: 10, TotalDataPoints: 110000},
	{RoundNumber: 3, Accuracy: 0.78, F1Score: 0.74, ParticipatingHospitals: 11, TotalDataPoints: 125000},
	{RoundNumber: 4, Accuracy: 0.81, F1Score: 0.77, ParticipatingHospitals: 12, TotalDataPoints: 140000},
	{RoundNumber: 5, Accuracy: 0.83, F1Score: 0.80, ParticipatingHospitals: 12, TotalDataPoints: 155000},
	{RoundNumber: 6, Accuracy: 0.847, F1Score: 0.823, ParticipatingHospitals: 12, TotalDataPoints: 170000},
}
