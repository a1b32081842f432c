package repository

//go:generate mockgen -source=flight_record_repository.go -destination=../../../mocks/repository/flight_record_repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"flight-audit-service/internal/domain/entity"
)

var (
	// ErrReadOnly is returned by sources that cannot store records.
	ErrReadOnly = errors.New("flight record source is read-only")
	// ErrDecode wraps failures to turn source data into flight records.
	ErrDecode = errors.New("failed to decode flight records")
)

// FlightRecordRepository defines the interface for flight record sources
type FlightRecordRepository interface {
	// FindAll returns every stored flight record in source order.
	FindAll(ctx context.Context) ([]entity.FlightRecord, error)
	// SaveAll inserts or replaces the given records.
	SaveAll(ctx context.Context, records []entity.FlightRecord) error
}
