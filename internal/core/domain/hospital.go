package domain

import "time"

// Hospital is an organization contributing data to the federation.
// DataPoints tracks the volume of data the hospital has contributed and is
// never negative.
type Hospital struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Location   string    `json:"location" bson:"location"`
	IsActive   bool      `json:"is_active" bson:"is_active"`
	JoinedAt   time.Time `json:"joined_at" bson:"joined_at"`
	DataPoints int64     `json:"data_points" bson:"data_points"`
}
