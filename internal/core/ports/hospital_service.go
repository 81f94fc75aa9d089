package ports

import (
	"context"
	"time"
)

// RegisterHospitalInput carries the data needed to register a hospital.
// Location and DataPoints are optional and default to "" and 0.
type RegisterHospitalInput struct {
	Name       string
	Location   string
	DataPoints int64
}

// HospitalView is the external projection of a hospital record.
type HospitalView struct {
	ID         string
	Name       string
	Location   string
	IsActive   bool
	DataPoints int64
	JoinedAt   time.Time
}

// HospitalService defines use-case operations for hospitals.
type HospitalService interface {
	List(ctx context.Context) ([]HospitalView, error)
	Register(ctx context.Context, input RegisterHospitalInput) (*HospitalView, error)
}
