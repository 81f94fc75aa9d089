package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
)

const collectionHospitals = "hospitals"

type HospitalRepository struct {
	col *mongo.Collection
}

func NewHospitalRepository(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{col: db.Collection(collectionHospitals)}
}

type hospitalDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Location   string             `bson:"location"`
	IsActive   bool               `bson:"is_active"`
	JoinedAt   time.Time          `bson:"joined_at"`
	DataPoints int64              `bson:"data_points"`
}

// List returns every hospital document in store order.
func (r *HospitalRepository) List(ctx context.Context) ([]*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var hospitals []*domain.Hospital
	for cursor.Next(ctx) {
		var doc hospitalDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode hospital: %w", err)
		}
		hospitals = append(hospitals, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return hospitals, nil
}

// Count returns the total number of hospital documents.
func (r *HospitalRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count hospitals: %w", err)
	}
	return n, nil
}

// CountByActive counts hospitals matching the given is_active flag.
func (r *HospitalRepository) CountByActive(ctx context.Context, active bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"is_active": active})
	if err != nil {
		return 0, fmt.Errorf("count hospitals by active: %w", err)
	}
	return n, nil
}

// Insert persists a new hospital document and returns the generated id.
func (r *HospitalRepository) Insert(ctx context.Context, h *domain.Hospital) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := hospitalDoc{
		Name:       h.Name,
		Location:   h.Location,
		IsActive:   h.IsActive,
		JoinedAt:   h.JoinedAt.UTC(),
		DataPoints: h.DataPoints,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert hospital: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert hospital: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// EnsureIndexes creates the secondary indexes the dashboard queries rely on.
func (r *HospitalRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (d hospitalDoc) toDomain() *domain.Hospital {
	return &domain.Hospital{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Location:   d.Location,
		IsActive:   d.IsActive,
		JoinedAt:   d.JoinedAt,
		DataPoints: d.DataPoints,
	}
}
