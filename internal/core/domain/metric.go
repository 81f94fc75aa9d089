package domain

import (
	"errors"
	"time"
)

var ErrNoMetrics = errors.New("no performance metrics recorded")

// PerformanceMetric is one round of aggregate model-quality measurement,
// written by the external training process. Records are append-only; this
// service never mutates or deletes them. Round numbers are expected to grow
// monotonically but are not enforced unique.
type PerformanceMetric struct {
	ID                     string    `json:"id" bson:"_id,omitempty"`
	RoundNumber            int       `json:"round_number" bson:"round_number"`
	Accuracy               float64   `json:"accuracy" bson:"accuracy"`
	F1Score                float64   `json:"f1_score" bson:"f1_score"`
	ParticipatingHospitals int       `json:"participating_hospitals" bson:"participating_hospitals"`
	TotalDataPoints        int64     `json:"total_data_points" bson:"total_data_points"`
	CreatedAt              time.Time `json:"created_at" bson:"created_at"`
}
