package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
)

const collectionMetrics = "performance_metrics"

type MetricRepository struct {
	col *mongo.Collection
}

func NewMetricRepository(db *mongo.Database) *MetricRepository {
	return &MetricRepository{col: db.Collection(collectionMetrics)}
}

type metricDoc struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	RoundNumber            int                `bson:"round_number"`
	Accuracy               float64            `bson:"accuracy"`
	F1Score                float64            `bson:"f1_score"`
	ParticipatingHospitals int                `bson:"participating_hospitals"`
	TotalDataPoints        int64              `bson:"total_data_points"`
	CreatedAt              time.Time          `bson:"created_at"`
}

// FindLatest returns the metric with the highest round number.
func (r *MetricRepository) FindLatest(ctx context.Context) (*domain.PerformanceMetric, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "round_number", Value: -1}})

	var doc metricDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoMetrics
		}
		return nil, fmt.Errorf("find latest metric: %w", err)
	}
	return doc.toDomain(), nil
}

// ListAscending returns all metrics ordered by round number ascending.
func (r *MetricRepository) ListAscending(ctx context.Context) ([]*domain.PerformanceMetric, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "round_number", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer cursor.Close(ctx)

	var metrics []*domain.PerformanceMetric
	for cursor.Next(ctx) {
		var doc metricDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode metric: %w", err)
		}
		metrics = append(metrics, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	return metrics, nil
}

// Insert persists a new metric document and returns the generated id.
// Used by the seeder; the API itself never writes metrics.
func (r *MetricRepository) Insert(ctx context.Context, m *domain.PerformanceMetric) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := metricDoc{
		RoundNumber:            m.RoundNumber,
		Accuracy:               m.Accuracy,
		F1Score:                m.F1Score,
		ParticipatingHospitals: m.ParticipatingHospitals,
		TotalDataPoints:        m.TotalDataPoints,
		CreatedAt:              m.CreatedAt.UTC(),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert metric: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert metric: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// EnsureIndexes creates the indexes backing latest-round and history queries.
func (r *MetricRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "round_number", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (d metricDoc) toDomain() *domain.PerformanceMetric {
	return &domain.PerformanceMetric{
		ID:                     d.ID.Hex(),
		RoundNumber:            d.RoundNumber,
		Accuracy:               d.Accuracy,
		F1Score:                d.F1Score,
		ParticipatingHospitals: d.ParticipatingHospitals,
		TotalDataPoints:        d.TotalDataPoints,
		CreatedAt:              d.CreatedAt,
	}
}
